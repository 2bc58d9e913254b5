package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Users</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; }
main { max-width: 32rem; margin: 0 auto; padding: 1rem; }
.screen { min-height: 20rem; position: relative; }
.overlay { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; }
.spinner { width: 2rem; height: 2rem; border: 3px solid #ddd; border-top-color: #333; border-radius: 50%; animation: spin 0.8s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }
.user-list { list-style: none; margin: 0; padding: 0; max-height: 20rem; overflow-y: auto; }
.user-row { display: flex; align-items: center; gap: 0.75rem; padding: 0.5rem 0; border-bottom: 1px solid #eee; }
.avatar { width: 2.5rem; height: 2.5rem; border-radius: 50%; background: #eee; }
.error { display: flex; align-items: center; justify-content: center; min-height: 20rem; margin: 0; color: #b00020; text-align: center; }
</style>
</head>
<body>
<main data-on-load="@get('/updates')">
<header>
<h1>Users</h1>
<button type="button" data-on-click="@post('/fetch')">Refresh</button>
</header>
`

const pageFoot = `</main>
</body>
</html>
`

// Page renders the full document for the user list screen. DataStar
// opens the update stream on load, and the refresh button re-triggers
// the fetch; every state change arrives as a patch of the screen
// element.
func Page(state ScreenState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if err := Screen(state).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}

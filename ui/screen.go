package ui

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/screenkit/pkg/screenstate"
	"github.com/dmitrymomot/screenkit/pkg/userapi"
)

// ScreenState is the concrete state rendered by the user list screen.
type ScreenState = screenstate.State[[]userapi.User]

// ScreenSelector targets the screen container for DOM patches.
const ScreenSelector = "#screen"

// Screen maps the current state to its visual representation:
// start renders blank, loading a progress overlay, success the user list,
// failure the error text.
func Screen(state ScreenState) templ.Component {
	return screenstate.Match(state, screenstate.Matchers[[]userapi.User, templ.Component]{
		Start:   Blank,
		Loading: Spinner,
		Success: UserList,
		Failure: ErrorMessage,
	})
}

// Blank renders the empty initial screen.
func Blank() templ.Component {
	return container(screenstate.PhaseStart, "")
}

// Spinner renders the fetch-in-flight progress indicator overlay.
func Spinner() templ.Component {
	return container(screenstate.PhaseLoading,
		`<div class="overlay"><span class="spinner" role="progressbar" aria-label="Loading"></span></div>`)
}

// UserList renders one row per user: avatar plus display name.
func UserList(users []userapi.User) templ.Component {
	var b strings.Builder
	b.WriteString(`<ul class="user-list">`)
	for _, u := range users {
		b.WriteString(`<li class="user-row">`)
		if u.HasAvatar() {
			fmt.Fprintf(&b, `<img class="avatar" src="%s" alt="">`, html.EscapeString(u.AvatarURL))
		} else {
			b.WriteString(`<span class="avatar avatar-placeholder"></span>`)
		}
		fmt.Fprintf(&b, `<span class="name">%s</span>`, html.EscapeString(u.DisplayName()))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return container(screenstate.PhaseSuccess, b.String())
}

// ErrorMessage renders the centered failure description.
func ErrorMessage(message string) templ.Component {
	return container(screenstate.PhaseFailure,
		fmt.Sprintf(`<p class="error" role="alert">%s</p>`, html.EscapeString(message)))
}

// container wraps variant content in the stable screen element so DOM
// patches can morph it in place.
func container(phase screenstate.Phase, inner string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="screen" class="screen" data-phase="%s">%s</div>`, phase, inner)
		return err
	})
}

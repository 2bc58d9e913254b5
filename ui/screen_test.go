package ui_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/screenkit/pkg/screenstate"
	"github.com/dmitrymomot/screenkit/pkg/userapi"
	"github.com/dmitrymomot/screenkit/ui"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestScreenStart(t *testing.T) {
	t.Parallel()

	out := render(t, ui.Screen(screenstate.Start[[]userapi.User]()))

	assert.Contains(t, out, `id="screen"`)
	assert.Contains(t, out, `data-phase="start"`)
	assert.NotContains(t, out, "user-list")
	assert.NotContains(t, out, "progressbar")
	assert.NotContains(t, out, "error")
}

func TestScreenLoading(t *testing.T) {
	t.Parallel()

	out := render(t, ui.Screen(screenstate.Loading[[]userapi.User]()))

	assert.Contains(t, out, `data-phase="loading"`)
	assert.Contains(t, out, `role="progressbar"`)
}

func TestScreenSuccess(t *testing.T) {
	t.Parallel()

	users := []userapi.User{
		{ID: 1, Login: "alice", AvatarURL: "http://x/a.png"},
		{ID: 2},
	}
	out := render(t, ui.Screen(screenstate.Success(users)))

	assert.Contains(t, out, `data-phase="success"`)
	assert.Contains(t, out, `<span class="name">alice</span>`)
	assert.Contains(t, out, `src="http://x/a.png"`)
	assert.Contains(t, out, "user #2", "missing login falls back to id")
	assert.Contains(t, out, "avatar-placeholder", "missing avatar gets a placeholder")

	// Rows keep response order.
	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "user #2"))
}

func TestScreenSuccessEmptyList(t *testing.T) {
	t.Parallel()

	out := render(t, ui.Screen(screenstate.Success([]userapi.User{})))

	assert.Contains(t, out, `data-phase="success"`)
	assert.Contains(t, out, `<ul class="user-list"></ul>`)
}

func TestScreenFailure(t *testing.T) {
	t.Parallel()

	out := render(t, ui.Screen(screenstate.Failure[[]userapi.User]("connection timed out")))

	assert.Contains(t, out, `data-phase="failure"`)
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "connection timed out")
}

func TestScreenEscapesUntrustedText(t *testing.T) {
	t.Parallel()

	users := []userapi.User{{
		ID:        1,
		Login:     `<script>alert(1)</script>`,
		AvatarURL: `http://x/a.png" onerror="alert(1)`,
	}}
	out := render(t, ui.Screen(screenstate.Success(users)))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, `onerror="alert`)

	out = render(t, ui.Screen(screenstate.Failure[[]userapi.User](`<b>boom</b>`)))
	assert.NotContains(t, out, "<b>")
}

func TestScreenRenderIsPure(t *testing.T) {
	t.Parallel()

	state := screenstate.Success([]userapi.User{{ID: 1, Login: "alice"}})

	first := render(t, ui.Screen(state))
	second := render(t, ui.Screen(state))
	assert.Equal(t, first, second)
}

func TestPage(t *testing.T) {
	t.Parallel()

	out := render(t, ui.Page(screenstate.Start[[]userapi.User]()))

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `data-on-load="@get('/updates')"`)
	assert.Contains(t, out, `data-on-click="@post('/fetch')"`)
	assert.Contains(t, out, `data-phase="start"`)
}

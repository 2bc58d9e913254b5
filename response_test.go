package screenkit_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/screenkit"
)

func textComponent(s string) screenkit.Component {
	return screenkit.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestTemplRendersPlainHTML(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")

	resp := screenkit.Templ(textComponent(`<div id="screen">hello</div>`))
	require.NoError(t, resp.Render(rec, req))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<div id="screen">hello</div>`, rec.Body.String())
}

func TestTemplPatchesOverSSE(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/event-stream")

	resp := screenkit.Templ(textComponent(`<div id="screen">hello</div>`),
		screenkit.WithTarget("#screen"),
	)
	require.NoError(t, resp.Render(rec, req))

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "#screen")
	assert.Contains(t, body, "hello")
}

func TestTemplNilComponent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	err := screenkit.Templ(nil).Render(rec, req)
	assert.ErrorIs(t, err, screenkit.ErrNilComponent)
}

func TestTemplPropagatesRenderError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	broken := screenkit.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("render failed")
	})
	err := screenkit.Templ(broken).Render(rec, req)
	assert.EqualError(t, err, "render failed")
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/fetch", nil)

	require.NoError(t, screenkit.Empty(http.StatusNoContent).Render(rec, req))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

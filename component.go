package screenkit

import (
	"context"
	"io"
)

// Component renders an HTML fragment. It matches
// github.com/a-h/templ.Component so templ-generated templates and
// hand-built components can be used interchangeably without forcing the
// templ import on consumers.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// ComponentFunc adapts a plain function to the Component interface.
type ComponentFunc func(ctx context.Context, w io.Writer) error

// Render calls f.
func (f ComponentFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

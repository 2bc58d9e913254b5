package screenkit

import (
	"net/http"
)

// HandlerFunc produces a Response for a request.
type HandlerFunc func(r *http.Request) Response

// ErrorHandler handles errors from rendering.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures the Wrap function.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	errorHandler ErrorHandler
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// defaultErrorHandler writes a plain 500 response.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// Wrap converts a HandlerFunc to http.HandlerFunc.
//
// Example:
//
//	mux.Handle("/", screenkit.Wrap(func(r *http.Request) screenkit.Response {
//		return screenkit.Templ(ui.Page(vm.Current()))
//	}))
func Wrap(h HandlerFunc, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		response := h(r)
		if response == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

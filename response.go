package screenkit

import (
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write the body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// templResponse wraps a component to implement Response.
type templResponse struct {
	component Component
	options   []PatchOption
}

// Render outputs the component via SSE for DataStar requests or as plain
// HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if t.component == nil {
		return ErrNilComponent
	}

	if IsDataStar(r) {
		return Stream(w, r).PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a component with optional patch configuration.
// For DataStar requests the component is sent as an SSE element patch, so a
// state change re-renders in place; for regular requests it renders directly.
//
// Example:
//
//	return screenkit.Templ(ui.Screen(vm.Current()),
//		screenkit.WithTarget("#screen"),
//	)
func Templ(component Component, opts ...PatchOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

// emptyResponse writes a status code and no body.
type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates a body-less response with the given status code. Useful for
// trigger endpoints whose effects arrive through the SSE update stream.
func Empty(status int) Response {
	return emptyResponse{status: status}
}

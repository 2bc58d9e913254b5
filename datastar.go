package screenkit

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// PatchOption configures how a component is patched into the DOM.
type PatchOption = datastar.PatchElementOption

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
)

// WithTarget sets the target selector for where the component should be rendered.
func WithTarget(selector string) PatchOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) PatchOption {
	return datastar.WithMode(mode)
}

// IsDataStar checks if the request is a DataStar request.
// DataStar requests accept Server-Sent Events (SSE) and may include
// signals in the query parameter or request body.
func IsDataStar(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, DataStarAcceptHeader) {
		return true
	}

	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}

	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "application/x-datastar")
}

// Stream creates a Server-Sent Event generator for pushing DOM patches
// to an established DataStar connection.
func Stream(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

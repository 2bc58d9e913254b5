// Package screenkit provides a small toolkit for building server-driven
// screens in Go: a screen's presentation state lives in an observable
// view model on the server, and every state change is pushed to the
// browser as a re-rendered fragment over Server-Sent Events.
//
// The toolkit is split into focused packages:
//
//   - pkg/screenstate: the view-state machine and view model (START,
//     LOADING, SUCCESS, FAILURE) with deterministic handling of
//     overlapping fetches
//   - pkg/statestore: a generic observable value holder that hands
//     immutable snapshots to subscribers
//   - pkg/userapi: a client for the user collection endpoint backing
//     the demo screen
//   - pkg/async: future helpers for awaiting fetch completion
//   - pkg/logger, pkg/config, pkg/httpserver: ambient infrastructure
//
// The root package contains the view/transport glue: a Component
// contract compatible with templ, Response types that render plain HTML
// or patch DOM elements through DataStar, and request detection helpers.
//
// Basic usage:
//
//	vm := screenstate.NewViewModel(client.FetchUsers)
//	defer vm.Close()
//
//	mux.Handle("/", screenkit.Wrap(func(r *http.Request) screenkit.Response {
//		return screenkit.Templ(ui.Page(vm.Current()))
//	}))
//
// See cmd/userlist for a complete screen wired end to end.
package screenkit

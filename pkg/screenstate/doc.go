// Package screenstate implements the view-state machine behind a
// single-screen UI: a closed set of phases (start, loading, success,
// failure) with an attached payload, owned by a ViewModel that
// orchestrates one asynchronous fetch per trigger and publishes every
// change to observers.
//
// # State
//
// State[T] is an immutable tagged union. The zero value is the start
// state; the other variants are built with Loading, Success and Failure.
// Match dispatches exhaustively over the variants, which keeps the render
// boundary honest:
//
//	view := screenstate.Match(state, screenstate.Matchers[[]User, templ.Component]{
//	    Start:   ui.Blank,
//	    Loading: ui.Spinner,
//	    Success: ui.UserList,
//	    Failure: ui.ErrorMessage,
//	})
//
// # ViewModel
//
// The ViewModel owns the state and is its only writer. TriggerFetch
// publishes the loading state synchronously, runs the fetch in the
// background, and publishes success or failure on completion. Observers
// registered through Subscribe receive an immutable snapshot on every
// change, starting with the current one.
//
// Overlapping triggers are deterministic: each trigger cancels the
// previous in-flight fetch, and a completion that has been superseded is
// discarded instead of clobbering the newer state. Close tears the
// screen down and cancels anything still in flight, so no dangling
// completion can mutate state afterwards.
package screenstate

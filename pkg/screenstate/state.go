package screenstate

// State is an immutable snapshot of what the screen currently shows.
// Exactly one variant is current at any instant; observers always receive
// a whole snapshot, never a partial one. The zero value is the start
// state.
type State[T any] struct {
	phase   Phase
	data    T
	message string
}

// Start returns the initial state: no data, no error.
func Start[T any]() State[T] {
	return State[T]{phase: PhaseStart}
}

// Loading returns the fetch-in-flight state.
func Loading[T any]() State[T] {
	return State[T]{phase: PhaseLoading}
}

// Success returns a terminal state carrying the fetched payload.
func Success[T any](data T) State[T] {
	return State[T]{phase: PhaseSuccess, data: data}
}

// Failure returns a terminal state carrying a human-readable error
// description.
func Failure[T any](message string) State[T] {
	return State[T]{phase: PhaseFailure, message: message}
}

// Phase returns the current variant tag.
func (s State[T]) Phase() Phase {
	if s.phase == "" {
		return PhaseStart
	}
	return s.phase
}

// Data returns the success payload. It is the zero value of T for every
// other variant.
func (s State[T]) Data() T {
	return s.data
}

// Message returns the failure description. It is empty for every other
// variant.
func (s State[T]) Message() string {
	return s.message
}

// Matchers holds one branch per state variant for exhaustive matching.
// A nil branch yields the zero value of R.
type Matchers[T, R any] struct {
	Start   func() R
	Loading func() R
	Success func(data T) R
	Failure func(message string) R
}

// Match dispatches on the state's variant and returns the branch result.
// It is the intended way to consume a State at the render boundary: the
// compiler cannot enforce exhaustiveness over a closed enum, but a struct
// literal with all four fields makes a missing branch obvious at the call
// site.
func Match[T, R any](s State[T], m Matchers[T, R]) R {
	var zero R
	switch s.Phase() {
	case PhaseLoading:
		if m.Loading != nil {
			return m.Loading()
		}
	case PhaseSuccess:
		if m.Success != nil {
			return m.Success(s.data)
		}
	case PhaseFailure:
		if m.Failure != nil {
			return m.Failure(s.message)
		}
	default:
		if m.Start != nil {
			return m.Start()
		}
	}
	return zero
}

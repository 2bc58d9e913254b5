package screenstate

// Phase identifies which variant of the screen state is current.
type Phase string

const (
	// PhaseStart is the initial phase: no data, no error.
	PhaseStart Phase = "start"
	// PhaseLoading means a fetch is in flight.
	PhaseLoading Phase = "loading"
	// PhaseSuccess means the fetch completed with a payload attached.
	PhaseSuccess Phase = "success"
	// PhaseFailure means the fetch completed with an error description attached.
	PhaseFailure Phase = "failure"
)

func (p Phase) String() string {
	return string(p)
}

// Terminal reports whether the phase ends a fetch cycle.
// A new trigger re-enters loading from either terminal phase.
func (p Phase) Terminal() bool {
	return p == PhaseSuccess || p == PhaseFailure
}

// transitions maps each phase to the set of phases reachable from it.
// Loading is reachable from everywhere because a trigger restarts the
// cycle unconditionally; the terminal phases are only reachable from
// loading.
var transitions = map[Phase]map[Phase]struct{}{
	PhaseStart: {
		PhaseLoading: {},
	},
	PhaseLoading: {
		PhaseLoading: {},
		PhaseSuccess: {},
		PhaseFailure: {},
	},
	PhaseSuccess: {
		PhaseLoading: {},
	},
	PhaseFailure: {
		PhaseLoading: {},
	},
}

// CanTransition reports whether the machine may move from one phase to
// another.
func CanTransition(from, to Phase) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

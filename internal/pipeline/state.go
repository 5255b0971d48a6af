package pipeline

// State identifies where a pipeline run currently is.
type State string

const (
	StateIdle         State = "idle"
	StateChunking     State = "chunking"
	StateTranscribing State = "transcribing"
	StateMerging      State = "merging"
	StateSummarizing  State = "summarizing"
	StateCompiling    State = "compiling"
	StateStopped      State = "stopped"
	StateErrored      State = "errored"
)

// isActive reports whether a state represents an in-progress run.
func isActive(s State) bool {
	switch s {
	case StateChunking, StateTranscribing, StateMerging, StateSummarizing, StateCompiling:
		return true
	default:
		return false
	}
}

// isValidTransition enforces the allowed state machine edges. Stopped and
// Errored are reachable from any active state; a finished or aborted run
// returns to Idle when the next one begins.
func isValidTransition(from, to State) bool {
	if to == StateStopped || to == StateErrored {
		return isActive(from)
	}
	switch from {
	case StateIdle:
		return to == StateChunking || to == StateSummarizing
	case StateChunking:
		return to == StateTranscribing
	case StateTranscribing:
		return to == StateMerging
	case StateMerging:
		return to == StateSummarizing || to == StateIdle
	case StateSummarizing:
		return to == StateCompiling
	case StateCompiling:
		return to == StateIdle
	case StateStopped, StateErrored:
		return to == StateIdle
	default:
		return false
	}
}

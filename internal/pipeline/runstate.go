package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a point-in-time copy of the run state for observers. Fields
// are consistent with each other within one snapshot; two snapshots taken
// around a stage boundary may disagree.
type Snapshot struct {
	RunID                 string    `json:"run_id"`
	State                 State     `json:"state"`
	StatusMessage         string    `json:"status_message"`
	TranscriptionProgress float64   `json:"transcription_progress"`
	SummarizationProgress float64   `json:"summarization_progress"`
	Running               bool      `json:"is_running"`
	StartedAt             time.Time `json:"started_at,omitzero"`
}

// runState holds the mutable state of the single allowed pipeline run.
// Mutated only from the run goroutine; observers read copies via snapshot.
type runState struct {
	mu sync.Mutex

	state                 State
	statusMessage         string
	transcriptionProgress float64
	summarizationProgress float64
	running               bool
	runID                 string
	startedAt             time.Time

	// stop is the cooperative cancellation token, checked at unit
	// boundaries. It never interrupts an in-flight collaborator call.
	stop atomic.Bool
}

func newRunState() *runState {
	return &runState{
		state:         StateIdle,
		statusMessage: statusIdle,
	}
}

// begin claims the single run slot and resets per-run state. It fails with
// ErrAlreadyRunning when a run is active.
func (s *runState) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	s.running = true
	s.state = StateIdle
	s.runID = uuid.NewString()
	s.startedAt = time.Now()
	s.transcriptionProgress = 0
	s.summarizationProgress = 0
	s.stop.Store(false)
	return nil
}

// finish resolves the run: clears the running flag, forces the terminal
// state and, when message is non-empty, replaces the status message. The
// last in-progress message persists otherwise.
func (s *runState) finish(state State, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.state = state
	if message != "" {
		s.statusMessage = message
	}
}

// transition applies a forward state machine edge, rejecting invalid ones.
func (s *runState) transition(to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if to == s.state {
		return nil
	}
	if !isValidTransition(s.state, to) {
		return fmt.Errorf("invalid state transition: %s -> %s", s.state, to)
	}
	s.state = to
	return nil
}

// requestStop arms the cooperative stop token for the active run.
func (s *runState) requestStop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrNotRunning
	}
	s.stop.Store(true)
	return nil
}

// stopping reports whether a stop has been requested.
func (s *runState) stopping() bool {
	return s.stop.Load()
}

func (s *runState) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *runState) setStatus(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusMessage = message
}

func (s *runState) setTranscriptionProgress(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcriptionProgress = p
}

func (s *runState) setSummarizationProgress(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summarizationProgress = p
}

func (s *runState) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		RunID:                 s.runID,
		State:                 s.state,
		StatusMessage:         s.statusMessage,
		TranscriptionProgress: s.transcriptionProgress,
		SummarizationProgress: s.summarizationProgress,
		Running:               s.running,
		StartedAt:             s.startedAt,
	}
}

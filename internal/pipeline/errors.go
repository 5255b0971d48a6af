package pipeline

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned when a run is requested while one is active.
var ErrAlreadyRunning = errors.New("pipeline already running")

// ErrNotRunning is returned when a stop is requested with no active run.
var ErrNotRunning = errors.New("pipeline not running")

// StageError is a stage failure that carries the observer-facing status
// message alongside the underlying cause.
type StageError struct {
	Stage  State
	Status string
	Err    error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Status)
}

func (e *StageError) Unwrap() error { return e.Err }

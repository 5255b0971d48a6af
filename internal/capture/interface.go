package capture

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyRecording is returned when a capture process is still active.
var ErrAlreadyRecording = errors.New("recorder already running")

// ErrNotRecording is returned for stop or wait with no active capture.
var ErrNotRecording = errors.New("recorder not running")

// ErrStopTimeout is returned when the capture process ignores the stop
// request past the wait deadline and has to be killed.
var ErrStopTimeout = errors.New("recorder did not exit before timeout")

// Recorder manages the audio capture collaborator as an isolated child
// process. Communication is process lifecycle and the filesystem only: the
// child receives a device identifier and an output path, and flushes
// buffered samples to a PCM WAV file when asked to stop.
type Recorder interface {
	// Start spawns the capture process, removing any stale output file
	// first.
	Start(ctx context.Context, device, outputPath string) error

	// RequestStop sends the graceful termination signal. A process that
	// already exited is reported as a warning, not an error.
	RequestStop(ctx context.Context) error

	// WaitForExit blocks until the capture process exits or the timeout
	// elapses, distinguishing a clean flush-and-exit from a hang.
	WaitForExit(ctx context.Context, timeout time.Duration) error

	// Running reports whether a capture process is currently alive.
	Running() bool

	// ListDevices runs the configured device lister and returns its raw
	// output plus best-effort parsed entries.
	ListDevices(ctx context.Context) (string, []Device, error)
}

// Device is one parsed input device entry.
type Device struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

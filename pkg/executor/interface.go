package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs a command and returns its stdout. On failure the
	// returned error includes trimmed stderr.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// ExecuteWithInput runs a command with the given string fed to its
	// stdin. Captured stdout is returned even when the command fails, so
	// callers can salvage partial output.
	ExecuteWithInput(ctx context.Context, input, name string, args ...string) (string, error)

	// Capture runs a command and returns stdout, stderr and the exit code.
	// The error is non-nil only when the command could not be started or
	// the context was cancelled.
	Capture(ctx context.Context, name string, args ...string) (Result, error)
}

// Result holds the full outcome of a captured command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

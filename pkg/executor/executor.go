package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// run is the single process boundary: it executes the command with buffered
// stdout/stderr and an optional stdin.
func run(ctx context.Context, stdin io.Reader, name string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// commandError wraps a failed command, embedding trimmed stderr when present.
func commandError(name string, err error, stderr string) error {
	if s := strings.TrimSpace(stderr); s != "" {
		return fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, s)
	}
	return fmt.Errorf("command '%s' failed: %w", name, err)
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	stdout, stderr, err := run(ctx, nil, name, args)
	if err != nil {
		return "", commandError(name, err, stderr)
	}
	return stdout, nil
}

// ExecuteWithInput runs an external command feeding input to its stdin.
// Stdout is returned as captured even when the command exits non-zero.
func (e *implExecutor) ExecuteWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	stdout, stderr, err := run(ctx, strings.NewReader(input), name, args)
	if err != nil {
		return stdout, commandError(name, err, stderr)
	}
	return stdout, nil
}

// Capture runs an external command and reports stdout, stderr and the exit
// code separately. A non-zero exit is not an error here; callers decide.
func (e *implExecutor) Capture(ctx context.Context, name string, args ...string) (Result, error) {
	stdout, stderr, err := run(ctx, nil, name, args)
	res := Result{Stdout: stdout, Stderr: stderr}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, commandError(name, err, stderr)
	}
	return res, nil
}

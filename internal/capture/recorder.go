package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// procState tracks one capture process from spawn to reap. Each session
// gets its own instance so a late exit from an old process can never race
// a new one.
type procState struct {
	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

func (p *procState) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (r *implRecorder) Start(ctx context.Context, device, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.proc != nil && !r.proc.exited() {
		return ErrAlreadyRecording
	}
	if r.cfg.Recorder.BinaryPath == "" {
		return fmt.Errorf("recorder.binary_path not configured")
	}

	// A stale file would make the observer believe a recording exists
	// before the new capture wrote anything.
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		r.logger.Warn(ctx, "Failed to remove stale recording %s: %v", outputPath, err)
	}

	args := append(append([]string{}, r.cfg.Recorder.Args...), device, outputPath)
	cmd := exec.Command(r.cfg.Recorder.BinaryPath, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start recorder: %w", err)
	}

	proc := &procState{cmd: cmd, done: make(chan struct{})}
	go func() {
		proc.err = cmd.Wait()
		close(proc.done)
	}()
	r.proc = proc

	r.logger.Info(ctx, "Recorder started (pid %d), device %s, writing to %s", cmd.Process.Pid, device, outputPath)
	return nil
}

func (r *implRecorder) RequestStop(ctx context.Context) error {
	r.mu.Lock()
	proc := r.proc
	r.mu.Unlock()

	if proc == nil {
		return ErrNotRecording
	}

	if err := proc.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			r.logger.Warn(ctx, "Recorder process was already gone")
			return nil
		}
		return fmt.Errorf("signal recorder: %w", err)
	}

	r.logger.Info(ctx, "Sent stop signal to recorder (pid %d)", proc.cmd.Process.Pid)
	return nil
}

func (r *implRecorder) WaitForExit(ctx context.Context, timeout time.Duration) error {
	r.mu.Lock()
	proc := r.proc
	r.mu.Unlock()

	if proc == nil {
		return ErrNotRecording
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-proc.done:
	case <-ctx.Done():
		// The caller gave up waiting; the process stays tracked so a
		// later call can still reap it.
		return ctx.Err()
	case <-timer.C:
		r.logger.Error(ctx, "Recorder did not exit within %s, killing it", timeout)
		if err := proc.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			r.logger.Warn(ctx, "Failed to kill recorder: %v", err)
		}
		<-proc.done
		r.clear()
		return ErrStopTimeout
	}

	err := proc.err
	r.clear()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == -1 {
			// Terminated by the stop signal; the flush already happened
			// in the child's signal handler.
			return nil
		}
		return fmt.Errorf("recorder exited abnormally: %w", err)
	}
	return nil
}

func (r *implRecorder) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.proc != nil && !r.proc.exited()
}

func (r *implRecorder) clear() {
	r.mu.Lock()
	r.proc = nil
	r.mu.Unlock()
}

package transcriber

import (
	"context"
	"fmt"
	"strings"
)

// Transcribe runs the configured transcription worker on one audio file.
// The worker contract: the audio path is the last positional argument and
// recognized text goes to stdout. Anything on stderr or a non-zero exit
// means the worker failed.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := make([]string, 0, len(t.cfg.Transcriber.Args)+1)
	args = append(args, t.cfg.Transcriber.Args...)
	args = append(args, audioPath)

	t.logger.Debug(ctx, "Transcribing %s", audioPath)

	res, err := t.executor.Capture(ctx, t.cfg.Transcriber.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("run transcription worker: %w", err)
	}

	stderr := strings.TrimSpace(res.Stderr)
	if res.ExitCode != 0 {
		return "", fmt.Errorf("transcription worker exited with code %d: %s", res.ExitCode, stderr)
	}
	if stderr != "" {
		return "", fmt.Errorf("transcription worker wrote to stderr: %s", stderr)
	}

	return strings.TrimSpace(res.Stdout), nil
}

package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

type implOllama struct {
	binary   string
	model    string
	executor executor.Executor
	logger   logger.Logger
}

// Summarize pipes the prompt to `ollama run <model>` and returns its stdout.
// Stdout is used even when the process exits non-zero; a missing binary
// yields the sentinel instead of an error.
func (s *implOllama) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, text)

	out, err := s.executor.ExecuteWithInput(ctx, prompt, s.binary, "run", s.model)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			s.logger.Warn(ctx, "Ollama binary %q not found", s.binary)
			return SentinelOllamaNotFound, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn(ctx, "Ollama run failed, keeping captured output: %v", err)
	}

	return strings.TrimSpace(out), nil
}

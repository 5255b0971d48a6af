package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

// New creates the Summarizer for the configured backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Backend {
	case "ollama":
		return &implOllama{
			binary:   cfg.Summarizer.Ollama.BinaryPath,
			model:    cfg.Summarizer.Ollama.Model,
			executor: exec,
			logger:   log,
		}, nil
	case "gemini":
		return &implGemini{
			apiKeys: cfg.Summarizer.Gemini.APIKeys,
			model:   cfg.Summarizer.Gemini.Model,
			logger:  log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend %q", cfg.Summarizer.Backend)
	}
}

package transcriber

import (
	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Transcriber instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

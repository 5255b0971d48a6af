package capture

import (
	"sync"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

type implRecorder struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	mu   sync.Mutex
	proc *procState
}

// New creates a new Recorder instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Recorder {
	return &implRecorder{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

package notes

import (
	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
)

type implCompiler struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Compiler instance
func New(cfg *config.Config, log logger.Logger) Compiler {
	return &implCompiler{
		cfg:    cfg,
		logger: log,
	}
}

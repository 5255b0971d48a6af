package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/audio"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/notes"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	audio       audio.Processor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	notes       notes.Compiler
	logger      logger.Logger

	layout Layout
	run    *runState
}

// New creates a new Pipeline instance
func New(cfg *config.Config, proc audio.Processor, trans transcriber.Transcriber, sum summarizer.Summarizer, comp notes.Compiler, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		audio:       proc,
		transcriber: trans,
		summarizer:  sum,
		notes:       comp,
		logger:      log,
		layout:      NewLayout(cfg.Paths.WorkDir),
		run:         newRunState(),
	}
}

func (p *implPipeline) chunkLength() time.Duration {
	return time.Duration(p.cfg.Pipeline.ChunkSeconds) * time.Second
}

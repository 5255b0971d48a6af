package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/metrics"
)

// Observer-facing status messages. These are rendered verbatim by UIs
// polling the status endpoint, so the wording is part of the contract.
const (
	statusIdle            = "Idle"
	statusCleaning        = "Cleaning previous artifacts..."
	statusNormalizing     = "Normalizing audio..."
	statusChunking        = "Chunking audio..."
	statusTranscribingFmt = "Transcribing batch %d/%d..."
	statusMerging         = "Merging transcripts..."
	statusPreparing       = "Preparing text for summary..."
	statusSummarizingFmt  = "Summarizing part %d/%d..."
	statusCompiling       = "Compiling final notes..."

	statusChunkingFailed = "Audio chunking failed."
	statusNoTranscript   = "No transcript found."
	statusTextEmpty      = "Text is empty."
)

func (p *implPipeline) Run(ctx context.Context, audioPath string) error {
	if err := p.run.begin(); err != nil {
		return err
	}
	p.logger.Info(ctx, "Starting full pipeline run for %s", audioPath)

	return p.execute(ctx, func(ctx context.Context) error {
		if err := p.layout.Ensure(); err != nil {
			return err
		}
		if err := p.transcriptionPhase(ctx, audioPath); err != nil {
			return err
		}
		if p.run.stopping() {
			return nil
		}
		return p.summaryPhase(ctx)
	})
}

func (p *implPipeline) RunTranscription(ctx context.Context, audioPath string) error {
	if err := p.run.begin(); err != nil {
		return err
	}
	p.logger.Info(ctx, "Starting transcription run for %s", audioPath)

	return p.execute(ctx, func(ctx context.Context) error {
		if err := p.layout.Ensure(); err != nil {
			return err
		}
		return p.transcriptionPhase(ctx, audioPath)
	})
}

func (p *implPipeline) RunSummarization(ctx context.Context) error {
	if err := p.run.begin(); err != nil {
		return err
	}
	p.logger.Info(ctx, "Starting summarization run")

	return p.execute(ctx, func(ctx context.Context) error {
		if err := p.layout.Ensure(); err != nil {
			return err
		}
		return p.summaryPhase(ctx)
	})
}

func (p *implPipeline) Stop() error {
	return p.run.requestStop()
}

func (p *implPipeline) Status() Snapshot {
	return p.run.snapshot()
}

// execute runs the given phases and resolves the run in every exit path:
// success, cooperative stop, error or panic. Nothing propagates past the
// returned error value; faults are also captured into the status message.
func (p *implPipeline) execute(ctx context.Context, phases func(context.Context) error) (err error) {
	start := time.Now()
	metrics.SetPipelineRunning(true)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline panic: %v", r)
		}
		p.resolve(ctx, err, time.Since(start))
		metrics.SetPipelineRunning(false)
	}()

	return phases(ctx)
}

func (p *implPipeline) resolve(ctx context.Context, err error, elapsed time.Duration) {
	switch {
	case err != nil:
		message := fmt.Sprintf("Error: %v", err)
		var stageErr *StageError
		if errors.As(err, &stageErr) && stageErr.Status != "" {
			message = stageErr.Status
		}
		p.run.finish(StateErrored, message)
		metrics.RecordRun("error")
		p.logger.Error(ctx, "Pipeline run failed after %s: %v", elapsed, err)
	case p.run.stopping():
		p.run.finish(StateStopped, "")
		metrics.RecordRun("stopped")
		p.logger.Info(ctx, "Pipeline run stopped after %s", elapsed)
	default:
		p.run.finish(StateIdle, "")
		metrics.RecordRun("success")
		p.logger.Info(ctx, "Pipeline run completed in %s", elapsed)
	}
}

// setState applies a forward state transition, logging rejected edges
// instead of failing the run over bookkeeping.
func (p *implPipeline) setState(ctx context.Context, to State) {
	if err := p.run.transition(to); err != nil {
		p.logger.Warn(ctx, "%v", err)
	}
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/metrics"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/textchunk"
)

// summaryPhase segments the cleaned transcript, summarizes each segment
// into its own unit and compiles the final notes. Progress is done/total
// with no offset.
func (p *implPipeline) summaryPhase(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.ObserveStageDuration(metrics.StageSummarization, time.Since(start))
	}()

	p.setState(ctx, StateSummarizing)
	p.run.setStatus(statusPreparing)
	p.run.setSummarizationProgress(0)

	data, err := os.ReadFile(p.layout.CleanTranscriptPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &StageError{Stage: StateSummarizing, Status: statusNoTranscript, Err: err}
		}
		return fmt.Errorf("read cleaned transcript: %w", err)
	}

	segments := textchunk.Collect(string(data), p.cfg.Pipeline.WordsPerSegment)
	total := len(segments)
	if total == 0 {
		return &StageError{Stage: StateSummarizing, Status: statusTextEmpty}
	}

	for _, seg := range segments {
		if p.run.stopping() {
			p.logger.Info(ctx, "Stop requested, halting summarization before segment %d", seg.Index)
			break
		}

		p.run.setStatus(fmt.Sprintf(statusSummarizingFmt, seg.Index+1, total))

		if err := p.summarizeSegment(ctx, seg); err != nil {
			return err
		}

		p.run.setSummarizationProgress(float64(seg.Index+1) / float64(total))
	}

	p.run.setStatus(statusCompiling)
	p.setState(ctx, StateCompiling)
	if err := p.notes.Compile(ctx, p.layout.SummariesDir(), p.layout.NotesPath()); err != nil {
		return fmt.Errorf("compile notes: %w", err)
	}

	p.run.setSummarizationProgress(1.0)
	return nil
}

// summarizeSegment produces the summary unit for one text segment,
// honoring the same never-overwrite completion marker as transcription.
// Backend unavailability arrives as sentinel text and is stored like any
// other result; an error here is a hard failure (context cancellation).
func (p *implPipeline) summarizeSegment(ctx context.Context, seg textchunk.Segment) error {
	target := p.layout.SummaryPath(seg.Index)
	if unitDone(target) {
		p.logger.Debug(ctx, "Skipping existing summary unit %d", seg.Index)
		metrics.RecordUnit(metrics.StageSummarization, metrics.UnitSkipped)
		return nil
	}

	summary, err := p.summarizer.Summarize(ctx, seg.Text)
	if err != nil {
		return fmt.Errorf("summarize segment %d: %w", seg.Index, err)
	}
	metrics.RecordUnit(metrics.StageSummarization, metrics.UnitOK)

	if err := os.WriteFile(target, []byte(summary), 0644); err != nil {
		return fmt.Errorf("write summary unit %d: %w", seg.Index, err)
	}
	return nil
}

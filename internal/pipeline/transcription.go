package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/metrics"
)

// transcriptionPhase turns one audio file into per-chunk transcript units
// and merges them into the cleaned transcript. Progress runs 0.1 during
// normalization, 0.2 once the chunk list is ready, then 0.2 + 0.8 per
// completed chunk.
func (p *implPipeline) transcriptionPhase(ctx context.Context, audioPath string) error {
	start := time.Now()
	defer func() {
		metrics.ObserveStageDuration(metrics.StageTranscription, time.Since(start))
	}()

	p.setState(ctx, StateChunking)
	p.run.setStatus(statusNormalizing)
	p.run.setTranscriptionProgress(0.1)

	source := audioPath
	if normalized, err := p.audio.Normalize(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Normalization failed, using original audio: %v", err)
	} else {
		source = normalized
	}

	p.run.setStatus(statusChunking)
	chunks, err := p.audio.Split(ctx, source, p.layout.ChunksDir(), p.chunkLength())
	if err != nil {
		return &StageError{Stage: StateChunking, Status: statusChunkingFailed, Err: err}
	}
	if len(chunks) == 0 {
		return &StageError{Stage: StateChunking, Status: statusChunkingFailed}
	}

	p.run.setTranscriptionProgress(0.2)
	p.setState(ctx, StateTranscribing)

	total := len(chunks)
	for i, chunk := range chunks {
		if p.run.stopping() {
			p.logger.Info(ctx, "Stop requested, halting transcription before chunk %d", chunk.Index)
			break
		}

		p.run.setStatus(fmt.Sprintf(statusTranscribingFmt, i+1, total))

		if err := p.transcribeChunk(ctx, chunk.Index, chunk.Path); err != nil {
			return err
		}

		p.run.setTranscriptionProgress(0.2 + 0.8*float64(i+1)/float64(total))
	}

	p.run.setStatus(statusMerging)
	p.setState(ctx, StateMerging)
	if err := p.mergeTranscripts(ctx); err != nil {
		return fmt.Errorf("merge transcripts: %w", err)
	}

	p.run.setTranscriptionProgress(1.0)
	return nil
}

// transcribeChunk produces the transcript unit for one chunk. An existing
// non-empty unit is proof of completion and is never overwritten. A failed
// collaborator call yields an empty unit, not a stage failure.
func (p *implPipeline) transcribeChunk(ctx context.Context, index int, chunkPath string) error {
	target := p.layout.TranscriptPath(index)
	if unitDone(target) {
		p.logger.Debug(ctx, "Skipping existing transcript unit %d", index)
		metrics.RecordUnit(metrics.StageTranscription, metrics.UnitSkipped)
		return nil
	}

	text, err := p.transcriber.Transcribe(ctx, chunkPath)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("transcribe chunk %d: %w", index, err)
		}
		p.logger.Warn(ctx, "Transcription failed for %s: %v", chunkPath, err)
		text = ""
		metrics.RecordUnit(metrics.StageTranscription, metrics.UnitFailed)
	} else {
		metrics.RecordUnit(metrics.StageTranscription, metrics.UnitOK)
	}

	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return fmt.Errorf("write transcript unit %d: %w", index, err)
	}
	return nil
}

// mergeTranscripts concatenates all transcript units in index order into
// the cleaned transcript, one trailing space per unit, trimmed. Re-running
// over the same units is byte-identical.
func (p *implPipeline) mergeTranscripts(ctx context.Context) error {
	units, err := scanTranscripts(p.layout.TranscriptsDir())
	if err != nil {
		return fmt.Errorf("scan transcripts: %w", err)
	}

	var b strings.Builder
	for _, u := range units {
		content, err := os.ReadFile(u.Path)
		if err != nil {
			return fmt.Errorf("read transcript unit %d: %w", u.Index, err)
		}
		b.Write(content)
		b.WriteString(" ")
	}

	text := strings.TrimSpace(b.String())
	if err := os.WriteFile(p.layout.CleanTranscriptPath(), []byte(text), 0644); err != nil {
		return fmt.Errorf("write cleaned transcript: %w", err)
	}

	p.logger.Info(ctx, "Merged %d transcript units into %s", len(units), p.layout.CleanTranscriptPath())
	return nil
}

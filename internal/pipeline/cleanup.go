package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// CleanArtifacts removes every artifact file from previous runs: chunks,
// transcript units, summary units, compiled notes and the cleaned
// transcript. The recording itself is kept. Refused while a run is active.
func (p *implPipeline) CleanArtifacts(ctx context.Context) error {
	if p.run.isRunning() {
		return ErrAlreadyRunning
	}
	p.run.setStatus(statusCleaning)

	dirs := []string{
		p.layout.ChunksDir(),
		p.layout.TranscriptsDir(),
		p.layout.SummariesDir(),
		p.layout.NotesDir(),
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("list %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil {
				p.logger.Warn(ctx, "Failed to delete %s: %v", path, err)
			}
		}
	}

	clean := p.layout.CleanTranscriptPath()
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to delete %s: %v", clean, err)
	}

	p.logger.Info(ctx, "Cleaned pipeline artifacts under %s", p.layout.WorkDir())
	return nil
}

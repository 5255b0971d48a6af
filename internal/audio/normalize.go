package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Normalize runs loudness normalization and writes the result next to the
// source as <name>_norm.wav.
func (p *implProcessor) Normalize(ctx context.Context, path string) (string, error) {
	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_norm.wav"

	p.logger.Info(ctx, "Normalizing audio: %s", path)

	args := []string{
		"-i", path,
		"-af", "loudnorm",
		"-y",
		outPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg normalize: %w", err)
	}

	p.logger.Debug(ctx, "Normalized audio written: %s", outPath)
	return outPath, nil
}

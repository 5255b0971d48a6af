package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const chunkFilePattern = "chunk_%03d.wav"

// Split cuts the audio into chunkLength slices, exported as mono 16kHz
// 16-bit PCM WAV files. Chunk i covers [i*chunkLength, min((i+1)*chunkLength, total)).
func (p *implProcessor) Split(ctx context.Context, path, destDir string, chunkLength time.Duration) ([]Chunk, error) {
	if chunkLength <= 0 {
		return nil, fmt.Errorf("chunk length must be positive, got %s", chunkLength)
	}

	total, err := p.Duration(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load audio: %w", err)
	}
	if total <= 0 {
		return nil, fmt.Errorf("audio file %s has no duration", path)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create chunk directory: %w", err)
	}

	numChunks := int((total + chunkLength - 1) / chunkLength)
	p.logger.Info(ctx, "Splitting %s (%s) into %d chunks...", path, total, numChunks)

	chunks := make([]Chunk, 0, numChunks)
	for i := 0; i < numChunks; i++ {
		start := time.Duration(i) * chunkLength
		end := min(start+chunkLength, total)
		chunkPath := filepath.Join(destDir, fmt.Sprintf(chunkFilePattern, i))

		// -ss before -i seeks on the input; -t bounds the output length.
		// Mono 16kHz PCM is the format the transcription worker expects.
		args := []string{
			"-ss", formatSeconds(start),
			"-t", formatSeconds(end - start),
			"-i", path,
			"-vn",
			"-ac", "1",
			"-ar", "16000",
			"-c:a", "pcm_s16le",
			"-y",
			chunkPath,
		}

		if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
			return nil, fmt.Errorf("extract chunk %d: %w", i, err)
		}

		chunks = append(chunks, Chunk{
			Index: i,
			Start: start,
			End:   end,
			Path:  chunkPath,
		})
	}

	return chunks, nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

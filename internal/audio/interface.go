package audio

import (
	"context"
	"time"
)

// Processor defines the interface for audio preparation operations
type Processor interface {
	// Duration reports the total length of the audio file.
	Duration(ctx context.Context, path string) (time.Duration, error)

	// Normalize writes a loudness-normalized copy next to the source and
	// returns its path. Callers fall back to the source on error.
	Normalize(ctx context.Context, path string) (string, error)

	// Split cuts the file into fixed-length mono 16kHz WAV chunks under
	// destDir and returns them in index order.
	Split(ctx context.Context, path, destDir string, chunkLength time.Duration) ([]Chunk, error)
}

// Chunk is one extracted slice of the source audio.
type Chunk struct {
	Index int
	Start time.Duration
	End   time.Duration
	Path  string
}

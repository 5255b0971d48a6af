package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-audio/wav"
)

// Duration reports the total length of the audio file. WAV files are read
// directly from the RIFF header; everything else goes through ffprobe.
func (p *implProcessor) Duration(ctx context.Context, path string) (time.Duration, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		if d, err := wavDuration(path); err == nil {
			return d, nil
		} else {
			p.logger.Debug(ctx, "WAV header probe failed for %s, falling back to ffprobe: %v", path, err)
		}
	}
	return p.probeDuration(ctx, path)
}

func wavDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("not a valid WAV file: %s", path)
	}
	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("read WAV duration: %w", err)
	}
	return d, nil
}

func (p *implProcessor) probeDuration(ctx context.Context, path string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := p.executor.Execute(ctx, p.cfg.FFmpeg.ProbePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

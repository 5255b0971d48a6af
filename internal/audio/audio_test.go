package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

type fakeExecutor struct {
	mu    sync.Mutex
	calls [][]string
	run   func(name string, args []string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()
	return f.run(name, args)
}

func (f *fakeExecutor) ExecuteWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) Capture(ctx context.Context, name string, args ...string) (executor.Result, error) {
	out, err := f.Execute(ctx, name, args...)
	if err != nil {
		return executor.Result{Stderr: err.Error(), ExitCode: 1}, nil
	}
	return executor.Result{Stdout: out}, nil
}

func (f *fakeExecutor) callsFor(binary string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, c := range f.calls {
		if c[0] == binary {
			out = append(out, c)
		}
	}
	return out
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Paths:       config.PathsConfig{WorkDir: t.TempDir()},
		Transcriber: config.TranscriberConfig{BinaryPath: "./transcribe-worker"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}
	return cfg
}

func TestSplitChunkBoundaries(t *testing.T) {
	ctx := context.Background()
	fake := &fakeExecutor{
		run: func(name string, args []string) (string, error) {
			if name == "ffprobe" {
				return "65.000000\n", nil
			}
			return "", nil
		},
	}
	proc := New(testConfig(t), fake, logger.New("error"))

	destDir := filepath.Join(t.TempDir(), "audio_chunks")
	chunks, err := proc.Split(ctx, "lecture.mp3", destDir, 30*time.Second)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	wantBounds := []struct{ start, end time.Duration }{
		{0, 30 * time.Second},
		{30 * time.Second, 60 * time.Second},
		{60 * time.Second, 65 * time.Second},
	}
	var covered time.Duration
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has index %d", i, c.Index)
		}
		if c.Start != wantBounds[i].start || c.End != wantBounds[i].end {
			t.Errorf("chunk %d bounds = [%s, %s), want [%s, %s)", i, c.Start, c.End, wantBounds[i].start, wantBounds[i].end)
		}
		if c.End-c.Start > 30*time.Second {
			t.Errorf("chunk %d longer than chunk length", i)
		}
		wantPath := filepath.Join(destDir, fmt.Sprintf("chunk_%03d.wav", i))
		if c.Path != wantPath {
			t.Errorf("chunk %d path = %s, want %s", i, c.Path, wantPath)
		}
		covered += c.End - c.Start
	}
	if covered != 65*time.Second {
		t.Errorf("chunk durations sum to %s, want 65s", covered)
	}

	ffmpegCalls := fake.callsFor("ffmpeg")
	if len(ffmpegCalls) != 3 {
		t.Fatalf("ffmpeg invoked %d times, want 3", len(ffmpegCalls))
	}
	for _, call := range ffmpegCalls {
		joined := fmt.Sprint(call)
		for _, want := range []string{"-ac 1", "-ar 16000", "pcm_s16le"} {
			if !contains(call, want) {
				t.Errorf("ffmpeg call %s missing %q", joined, want)
			}
		}
	}
}

func contains(args []string, want string) bool {
	for i := range args {
		if args[i] == want {
			return true
		}
		if i+1 < len(args) && args[i]+" "+args[i+1] == want {
			return true
		}
	}
	return false
}

func TestSplitExactMultiple(t *testing.T) {
	ctx := context.Background()
	fake := &fakeExecutor{
		run: func(name string, args []string) (string, error) {
			if name == "ffprobe" {
				return "60.0\n", nil
			}
			return "", nil
		},
	}
	proc := New(testConfig(t), fake, logger.New("error"))

	chunks, err := proc.Split(ctx, "lecture.mp3", t.TempDir(), 30*time.Second)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Errorf("got %d chunks, want 2", len(chunks))
	}
}

func TestSplitEmptyAudio(t *testing.T) {
	ctx := context.Background()
	fake := &fakeExecutor{
		run: func(name string, args []string) (string, error) {
			return "0.000000\n", nil
		},
	}
	proc := New(testConfig(t), fake, logger.New("error"))

	if _, err := proc.Split(ctx, "empty.mp3", t.TempDir(), 30*time.Second); err == nil {
		t.Error("Split() should fail for zero-duration audio")
	}
}

func TestDurationWavHeader(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTestWav(t, path, 16000) // one second at 16kHz

	fake := &fakeExecutor{
		run: func(name string, args []string) (string, error) {
			t.Errorf("unexpected subprocess call for WAV input: %s %v", name, args)
			return "", nil
		},
	}
	proc := New(testConfig(t), fake, logger.New("error"))

	d, err := proc.Duration(ctx, path)
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if d < 990*time.Millisecond || d > 1010*time.Millisecond {
		t.Errorf("Duration() = %s, want ~1s", d)
	}
}

func writeTestWav(t *testing.T, path string, samples int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, 16000, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 16000},
		Data:           make([]int, samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNormalize(t *testing.T) {
	ctx := context.Background()
	fake := &fakeExecutor{
		run: func(name string, args []string) (string, error) {
			return "", nil
		},
	}
	proc := New(testConfig(t), fake, logger.New("error"))

	out, err := proc.Normalize(ctx, "/tmp/recording.wav")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out != "/tmp/recording_norm.wav" {
		t.Errorf("Normalize() path = %s, want /tmp/recording_norm.wav", out)
	}

	calls := fake.callsFor("ffmpeg")
	if len(calls) != 1 {
		t.Fatalf("ffmpeg invoked %d times, want 1", len(calls))
	}
	if !contains(calls[0], "loudnorm") {
		t.Errorf("ffmpeg call missing loudnorm filter: %v", calls[0])
	}
}

func TestNormalizeFailure(t *testing.T) {
	ctx := context.Background()
	fake := &fakeExecutor{
		run: func(name string, args []string) (string, error) {
			return "", fmt.Errorf("boom")
		},
	}
	proc := New(testConfig(t), fake, logger.New("error"))

	if _, err := proc.Normalize(ctx, "/tmp/recording.wav"); err == nil {
		t.Error("Normalize() should propagate ffmpeg failure")
	}
}

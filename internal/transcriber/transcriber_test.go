package transcriber

import (
	"context"
	"testing"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

type fakeExecutor struct {
	lastName string
	lastArgs []string
	result   executor.Result
	err      error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return "", nil
}

func (f *fakeExecutor) ExecuteWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	return "", nil
}

func (f *fakeExecutor) Capture(ctx context.Context, name string, args ...string) (executor.Result, error) {
	f.lastName = name
	f.lastArgs = args
	return f.result, f.err
}

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name    string
		result  executor.Result
		want    string
		wantErr bool
	}{
		{
			name:   "clean output",
			result: executor.Result{Stdout: "  hello lecture \n"},
			want:   "hello lecture",
		},
		{
			name:    "non-zero exit",
			result:  executor.Result{Stdout: "partial", ExitCode: 1, Stderr: "model load failed"},
			wantErr: true,
		},
		{
			name:    "stderr output with zero exit",
			result:  executor.Result{Stdout: "text", Stderr: "warning: vad disabled"},
			wantErr: true,
		},
		{
			name:   "empty transcript is not an error",
			result: executor.Result{Stdout: "\n"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Paths:       config.PathsConfig{WorkDir: t.TempDir()},
				Transcriber: config.TranscriberConfig{BinaryPath: "./worker", Args: []string{"--model", "small"}},
			}
			if err := cfg.Validate(); err != nil {
				t.Fatal(err)
			}

			fake := &fakeExecutor{result: tt.result}
			tr := New(cfg, fake, logger.New("error"))

			got, err := tr.Transcribe(context.Background(), "chunk_000.wav")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transcribe() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Transcribe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranscribeArgumentOrder(t *testing.T) {
	cfg := &config.Config{
		Paths:       config.PathsConfig{WorkDir: t.TempDir()},
		Transcriber: config.TranscriberConfig{BinaryPath: "./worker", Args: []string{"--model", "small"}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	fake := &fakeExecutor{result: executor.Result{Stdout: "ok"}}
	tr := New(cfg, fake, logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), "chunk_007.wav"); err != nil {
		t.Fatal(err)
	}

	if fake.lastName != "./worker" {
		t.Errorf("binary = %s, want ./worker", fake.lastName)
	}
	if len(fake.lastArgs) != 3 || fake.lastArgs[2] != "chunk_007.wav" {
		t.Errorf("audio path must be the last argument, got %v", fake.lastArgs)
	}
}

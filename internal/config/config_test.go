package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					WorkDir: "data",
				},
				Transcriber: TranscriberConfig{
					BinaryPath: "./transcribe-worker",
				},
			},
			wantErr: false,
		},
		{
			name: "missing work dir",
			config: Config{
				Transcriber: TranscriberConfig{
					BinaryPath: "./transcribe-worker",
				},
			},
			wantErr: true,
		},
		{
			name: "missing transcriber binary",
			config: Config{
				Paths: PathsConfig{
					WorkDir: "data",
				},
			},
			wantErr: true,
		},
		{
			name: "gemini backend without keys",
			config: Config{
				Paths: PathsConfig{
					WorkDir: "data",
				},
				Transcriber: TranscriberConfig{
					BinaryPath: "./transcribe-worker",
				},
				Summarizer: SummarizerConfig{
					Backend: "gemini",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown summarizer backend",
			config: Config{
				Paths: PathsConfig{
					WorkDir: "data",
				},
				Transcriber: TranscriberConfig{
					BinaryPath: "./transcribe-worker",
				},
				Summarizer: SummarizerConfig{
					Backend: "chatgpt",
				},
			},
			wantErr: true,
		},
		{
			name: "negative chunk length",
			config: Config{
				Paths: PathsConfig{
					WorkDir: "data",
				},
				Transcriber: TranscriberConfig{
					BinaryPath: "./transcribe-worker",
				},
				Pipeline: PipelineConfig{
					ChunkSeconds: -5,
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			WorkDir: "data",
		},
		Transcriber: TranscriberConfig{
			BinaryPath: "./transcribe-worker",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Pipeline.ChunkSeconds != 30 {
		t.Errorf("ChunkSeconds = %v, want 30", cfg.Pipeline.ChunkSeconds)
	}
	if cfg.Pipeline.WordsPerSegment != 500 {
		t.Errorf("WordsPerSegment = %v, want 500", cfg.Pipeline.WordsPerSegment)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("FFmpeg.BinaryPath = %v, want ffmpeg", cfg.FFmpeg.BinaryPath)
	}
	if cfg.Summarizer.Backend != "ollama" {
		t.Errorf("Summarizer.Backend = %v, want ollama", cfg.Summarizer.Backend)
	}
	if cfg.Summarizer.Ollama.Model != "phi" {
		t.Errorf("Ollama.Model = %v, want phi", cfg.Summarizer.Ollama.Model)
	}
	if cfg.Recorder.StopTimeoutSeconds != 10 {
		t.Errorf("StopTimeoutSeconds = %v, want 10", cfg.Recorder.StopTimeoutSeconds)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  work_dir: "data"

pipeline:
  chunk_seconds: 45
  words_per_segment: 250

transcriber:
  binary_path: "./transcribe-worker"
  args: ["--model", "small"]

summarizer:
  backend: "ollama"
  ollama:
    model: "phi"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.WorkDir != "data" {
		t.Errorf("WorkDir = %v, want %v", cfg.Paths.WorkDir, "data")
	}
	if cfg.Pipeline.ChunkSeconds != 45 {
		t.Errorf("ChunkSeconds = %v, want 45", cfg.Pipeline.ChunkSeconds)
	}
	if cfg.Pipeline.WordsPerSegment != 250 {
		t.Errorf("WordsPerSegment = %v, want 250", cfg.Pipeline.WordsPerSegment)
	}
	if len(cfg.Transcriber.Args) != 2 {
		t.Errorf("Transcriber.Args = %v, want 2 entries", cfg.Transcriber.Args)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

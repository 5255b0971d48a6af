package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Recorder    RecorderConfig    `yaml:"recorder"`
	Notes       NotesConfig       `yaml:"notes"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type PathsConfig struct {
	// WorkDir holds the recording and every pipeline artifact
	// (audio_chunks/, transcripts/, summaries/, notes/).
	WorkDir string `yaml:"work_dir"`
	// Inbox is the drop folder monitored in watch mode. Optional.
	Inbox string `yaml:"inbox"`
}

type PipelineConfig struct {
	ChunkSeconds    int `yaml:"chunk_seconds"`
	WordsPerSegment int `yaml:"words_per_segment"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
}

type TranscriberConfig struct {
	BinaryPath string   `yaml:"binary_path"`
	Args       []string `yaml:"args"`
}

type SummarizerConfig struct {
	Backend string       `yaml:"backend"`
	Ollama  OllamaConfig `yaml:"ollama"`
	Gemini  GeminiConfig `yaml:"gemini"`
}

type OllamaConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Model      string `yaml:"model"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type RecorderConfig struct {
	BinaryPath         string   `yaml:"binary_path"`
	Args               []string `yaml:"args"`
	Device             string   `yaml:"device"`
	ListArgs           []string `yaml:"list_args"`
	StopTimeoutSeconds int      `yaml:"stop_timeout_seconds"`
}

type NotesConfig struct {
	ExportDocx bool `yaml:"export_docx"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads the YAML config at path, validates it and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.WorkDir == "" {
		return fmt.Errorf("paths.work_dir is required")
	}
	if c.Transcriber.BinaryPath == "" {
		return fmt.Errorf("transcriber.binary_path is required")
	}

	if c.Pipeline.ChunkSeconds == 0 {
		c.Pipeline.ChunkSeconds = 30
	}
	if c.Pipeline.ChunkSeconds < 0 {
		return fmt.Errorf("pipeline.chunk_seconds must be positive")
	}
	if c.Pipeline.WordsPerSegment == 0 {
		c.Pipeline.WordsPerSegment = 500
	}
	if c.Pipeline.WordsPerSegment < 0 {
		return fmt.Errorf("pipeline.words_per_segment must be positive")
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}

	if c.Summarizer.Backend == "" {
		c.Summarizer.Backend = "ollama"
	}
	switch c.Summarizer.Backend {
	case "ollama":
		if c.Summarizer.Ollama.BinaryPath == "" {
			c.Summarizer.Ollama.BinaryPath = "ollama"
		}
		if c.Summarizer.Ollama.Model == "" {
			c.Summarizer.Ollama.Model = "phi"
		}
	case "gemini":
		if len(c.Summarizer.Gemini.APIKeys) == 0 {
			return fmt.Errorf("summarizer.gemini.api_keys is required for the gemini backend")
		}
		if c.Summarizer.Gemini.Model == "" {
			c.Summarizer.Gemini.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("summarizer.backend must be 'ollama' or 'gemini', got %q", c.Summarizer.Backend)
	}

	if c.Recorder.Device == "" {
		c.Recorder.Device = "0"
	}
	if len(c.Recorder.ListArgs) == 0 {
		c.Recorder.ListArgs = []string{"--list-devices"}
	}
	if c.Recorder.StopTimeoutSeconds == 0 {
		c.Recorder.StopTimeoutSeconds = 10
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

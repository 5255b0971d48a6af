package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/audio"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/capture"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/notes"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/transcriber"
	"github.com/nguyentantai21042004/lecture-pipeline/pkg/executor"
)

// app bundles the wired dependencies shared by the subcommands.
type app struct {
	cfg      *config.Config
	logger   logger.Logger
	pipe     pipeline.Pipeline
	recorder capture.Recorder
	layout   pipeline.Layout
}

// buildApp loads the config named by --config and wires every component.
func buildApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		log = logger.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	}

	exec := executor.New()
	sum, err := summarizer.New(cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("build summarizer: %w", err)
	}

	pipe := pipeline.New(cfg,
		audio.New(cfg, exec, log),
		transcriber.New(cfg, exec, log),
		sum,
		notes.New(cfg, log),
		log,
	)

	return &app{
		cfg:      cfg,
		logger:   log,
		pipe:     pipe,
		recorder: capture.New(cfg, exec, log),
		layout:   pipeline.NewLayout(cfg.Paths.WorkDir),
	}, nil
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runInterruptible executes run on its own goroutine. The first signal asks
// the pipeline to stop at the next unit boundary so completed units stay
// recoverable; a second signal cancels the context and aborts the in-flight
// collaborator call.
func (a *app) runInterruptible(run func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx) }()

	stopRequested := false
	for {
		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			if stopRequested {
				cancel()
				continue
			}
			stopRequested = true
			if err := a.pipe.Stop(); err != nil {
				cancel()
				continue
			}
			a.logger.Info(ctx, "Stopping at the next unit boundary. Press Ctrl+C again to abort.")
		}
	}
}

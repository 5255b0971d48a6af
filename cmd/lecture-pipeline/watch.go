package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox directory and process each new audio file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			if a.cfg.Paths.Inbox == "" {
				return fmt.Errorf("paths.inbox must be set for watch mode")
			}
			if err := os.MkdirAll(a.cfg.Paths.Inbox, 0755); err != nil {
				return fmt.Errorf("create inbox directory: %w", err)
			}

			handler := func(ctx context.Context, filePath string) error {
				// Artifacts left by the previous lecture would satisfy
				// the skip checks of the next one.
				if err := a.pipe.CleanArtifacts(ctx); err != nil {
					return err
				}
				return a.pipe.Run(ctx, filePath)
			}

			w, err := watcher.New(a.cfg.Paths.Inbox, handler, a.logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := signalContext()
			defer cancel()

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

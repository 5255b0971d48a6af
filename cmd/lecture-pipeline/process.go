package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newProcessCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "process [audio-file]",
		Short: "Run the full pipeline over a recording",
		Long: "Runs normalize, chunk, transcribe, merge, summarize and compile over the " +
			"given audio file, or over the default recording when no file is named. " +
			"Completed chunks and segments from an interrupted run are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}

			if fresh, _ := cmd.Flags().GetBool("fresh"); fresh {
				if err := a.pipe.CleanArtifacts(cmd.Context()); err != nil {
					return err
				}
			}

			audioPath := a.layout.RecordingPath()
			if len(args) > 0 {
				audioPath = args[0]
			}
			return a.runInterruptible(func(ctx context.Context) error {
				return a.pipe.Run(ctx, audioPath)
			})
		},
	}
	c.Flags().Bool("fresh", false, "remove artifacts from previous runs before starting")
	return c
}

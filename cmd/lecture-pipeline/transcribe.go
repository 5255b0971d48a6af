package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newTranscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe [audio-file]",
		Short: "Run only the audio half: normalize, chunk, transcribe, merge",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}

			audioPath := a.layout.RecordingPath()
			if len(args) > 0 {
				audioPath = args[0]
			}
			return a.runInterruptible(func(ctx context.Context) error {
				return a.pipe.RunTranscription(ctx, audioPath)
			})
		},
	}
}

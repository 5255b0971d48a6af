package main

import (
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove chunk, transcript, summary and notes artifacts",
		Long:  "Removes pipeline artifacts from previous runs. The recording itself is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			return a.pipe.CleanArtifacts(cmd.Context())
		},
	}
}

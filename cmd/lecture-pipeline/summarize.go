package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Run only the text half over the merged transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			return a.runInterruptible(func(ctx context.Context) error {
				return a.pipe.RunSummarization(ctx)
			})
		},
	}
}

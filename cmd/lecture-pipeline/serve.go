package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP control API and status websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			return server.New(a.cfg, a.pipe, a.recorder, a.logger).Run(ctx)
		},
	}
}

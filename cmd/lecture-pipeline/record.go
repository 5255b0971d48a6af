package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func newRecordCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "record",
		Short: "Capture microphone audio until interrupted",
		Long: "Spawns the capture process writing to the default recording file and " +
			"waits for Ctrl+C. The process is then asked to stop gracefully so it can " +
			"flush buffered samples before exiting.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}

			device, _ := cmd.Flags().GetString("device")
			if device == "" {
				device = a.cfg.Recorder.Device
			}

			ctx, cancel := signalContext()
			defer cancel()

			output := a.layout.RecordingPath()
			if err := a.recorder.Start(ctx, device, output); err != nil {
				return err
			}
			a.logger.Info(ctx, "Recording from device %s to %s. Press Ctrl+C to stop.", device, output)

			<-ctx.Done()

			// The signal context is already cancelled; the shutdown path
			// gets a fresh one.
			stopCtx := context.Background()
			if err := a.recorder.RequestStop(stopCtx); err != nil {
				return err
			}
			timeout := time.Duration(a.cfg.Recorder.StopTimeoutSeconds) * time.Second
			if err := a.recorder.WaitForExit(stopCtx, timeout); err != nil {
				return err
			}
			a.logger.Info(stopCtx, "Recording saved to %s", output)
			return nil
		},
	}
	c.Flags().StringP("device", "d", "", "input device identifier (defaults to recorder.device)")
	return c
}

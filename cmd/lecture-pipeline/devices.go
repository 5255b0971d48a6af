package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List capture devices reported by the recorder binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}

			raw, devices, err := a.recorder.ListDevices(cmd.Context())
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Println(strings.TrimSpace(raw))
				return nil
			}
			for _, d := range devices {
				fmt.Printf("[%s] %s\n", d.ID, d.Name)
			}
			return nil
		},
	}
}

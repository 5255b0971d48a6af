package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lecture-pipeline",
		Short: "Batch pipeline turning lecture recordings into summarized notes",
		Long: "Turns long lecture recordings into concise notes. Audio is chunked and " +
			"transcribed with whisper.cpp, then the merged transcript is summarized " +
			"segment by segment and compiled into a final notes file.",
		Version: version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newTranscribeCmd())
	rootCmd.AddCommand(newSummarizeCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newDevicesCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newCleanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

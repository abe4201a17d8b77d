package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.OnInitialize(setupLogging)
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

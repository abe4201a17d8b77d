package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hospitalrank"
)

var (
	// dataFile is the CLI --file flag value
	dataFile string
	// schemaFile is the CLI --schema flag value
	schemaFile string
	// verbose is the CLI --verbose flag value
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hospitalrank",
	Short: "Rank hospitals by 30-day mortality rate",
	Long: `hospitalrank ranks hospitals within US states (and across all states)
by 30-day mortality rate for heart attack, heart failure, and pneumonia,
reading from a CMS outcome-of-care-measures CSV file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file",
		"outcome-of-care-measures.csv", "Outcome dataset CSV file")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "",
		"YAML column-layout override (default: built-in CMS layout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
}

// newRanker builds the Ranker from the persistent flags.
func newRanker() (*hospitalrank.Ranker, error) {
	ranker := hospitalrank.NewRanker(dataFile)
	if schemaFile != "" {
		schema, err := hospitalrank.LoadSchema(schemaFile)
		if err != nil {
			return nil, err
		}
		ranker.Schema = schema
	}
	slog.Debug("ranker configured", "file", dataFile, "schema", schemaFile)
	return ranker, nil
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

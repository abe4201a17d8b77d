package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bestCmd = &cobra.Command{
	Use:   "best STATE OUTCOME",
	Short: "Hospital with the lowest mortality rate for an outcome in a state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ranker, err := newRanker()
		if err != nil {
			return err
		}
		hospital, err := ranker.Best(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(hospital)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bestCmd)
}

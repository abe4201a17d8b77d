package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank STATE OUTCOME [RANK]",
	Short: "Hospital at a given rank for an outcome in a state",
	Long: `Hospital at a given rank for an outcome in a state.

RANK is "best", "worst", or a 1-based position (default: best).
Hospitals without a numeric rate are excluded before ranking; a rank
beyond the remaining hospitals prints NA.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank := "best"
		if len(args) == 3 {
			rank = args[2]
		}
		ranker, err := newRanker()
		if err != nil {
			return err
		}
		hospital, err := ranker.Rank(args[0], args[1], rank)
		if err != nil {
			return err
		}
		if hospital == nil {
			fmt.Println("NA")
			return nil
		}
		fmt.Println(*hospital)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

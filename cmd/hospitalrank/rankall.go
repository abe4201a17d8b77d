package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rankallCmd = &cobra.Command{
	Use:   "rankall OUTCOME [RANK]",
	Short: "Hospital at a given rank for an outcome in every state",
	Long: `Hospital at a given rank for an outcome in every state present in the
dataset, one line per state. States with fewer ranked hospitals than
the requested position print NA.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank := "best"
		if len(args) == 2 {
			rank = args[1]
		}
		ranker, err := newRanker()
		if err != nil {
			return err
		}
		rankings, err := ranker.RankAll(args[0], rank)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "HOSPITAL\tSTATE")
		for _, r := range rankings {
			name := "NA"
			if r.Hospital != nil {
				name = *r.Hospital
			}
			fmt.Fprintf(w, "%s\t%s\n", name, r.State)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rankallCmd)
}

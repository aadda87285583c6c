package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fwbench/internal/bench"
	"fwbench/internal/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()
		store, err := bench.NewFileStore(cfg.HistoryFile)
		if err != nil {
			return err
		}
		recs, err := store.LoadAll()
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved sessions.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "WHEN\tSESSION\tRESULT")
		for _, rec := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"),
				rec.Label,
				bench.FormatMetrics(rec.Trials, rec.Stats))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"fwbench/internal/cache"
	"fwbench/internal/config"
)

var cleanYes bool

// askOne allows mocking the prompt in tests.
var askOne = survey.AskOne

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove benchmark artifacts (datasets, caches)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()
		if len(cfg.Artifacts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No artifacts configured.")
			return nil
		}

		if !cleanYes {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Remove %d benchmark artifacts?", len(cfg.Artifacts)),
			}
			if err := askOne(prompt, &confirmed); err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		if err := cache.RemoveAll(slog.Default(), cfg.Artifacts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleanup complete.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip confirmation")
}

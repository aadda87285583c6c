package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"fwbench/internal/bench"
	"fwbench/internal/cache"
	"fwbench/internal/config"
	"fwbench/internal/telemetry"
)

const benchSyntax = "syntax: fwbench bench fw|vw|all cleanup|train|predict|all"

var (
	benchSave    bool
	benchCompare bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [target] [action]",
	Short: "Benchmark the configured targets under cold- and warm-cache conditions",
	Long: `Runs the configured train/predict commands for the selected target(s),
repeating each session for the configured number of trials. Cold-cache
sessions delete the target's cache artifacts before every trial; warm-cache
sessions run one discarded warm-up trial first and then measure back-to-back
runs. Each session yields one report line.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New(benchSyntax)
		}
		return nil
	},
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().BoolVar(&benchSave, "save", false, "Save session results to history")
	benchCmd.Flags().BoolVar(&benchCompare, "compare", false, "Compare session results against saved history")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	target, action := args[0], args[1]
	selected := selectTargets(cfg, target)
	if len(selected) == 0 {
		return fmt.Errorf("unknown target %q (%s)", target, benchSyntax)
	}
	switch action {
	case "cleanup", "train", "predict", "all":
	default:
		return fmt.Errorf("unknown action %q (%s)", action, benchSyntax)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(cfg.MetricsAddr); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	sampler := bench.NewShellSampler()
	sampler.Shell = cfg.Shell
	sampler.PollInterval = cfg.PollInterval
	sampler.Timeout = cfg.Timeout
	driver := bench.NewDriver(bench.NewRunner(sampler), cfg.Trials)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if action == "cleanup" || action == "all" {
		if err := cache.RemoveAll(slog.Default(), cfg.Artifacts); err != nil {
			return err
		}
	}

	var results []bench.Result

	if action == "train" || action == "all" {
		// cold sessions first for every target, then warm sessions,
		// matching the historical output order
		for _, name := range selected {
			t := cfg.Targets[name]
			hook, err := resetHook(t)
			if err != nil {
				return err
			}
			res, err := driver.Run(ctx, bench.Benchmark{
				Label:   name + " train, no cache",
				Command: t.TrainCmd,
				Reset:   hook,
			})
			if err != nil {
				return err
			}
			printResult(out, res)
			results = append(results, res)
		}

		for _, name := range selected {
			t := cfg.Targets[name]
			warm := bench.Benchmark{
				Label:   name + " train, using cache",
				Command: t.TrainCmd,
			}
			if err := driver.WarmUp(ctx, warm); err != nil {
				return err
			}
			res, err := driver.Run(ctx, warm)
			if err != nil {
				return err
			}
			printResult(out, res)
			results = append(results, res)
		}
	}

	if action == "predict" || action == "all" {
		for _, name := range selected {
			t := cfg.Targets[name]
			if t.PredictCmd == "" {
				continue
			}
			res, err := driver.Run(ctx, bench.Benchmark{
				Label:   name + " predict, no cache",
				Command: t.PredictCmd,
			})
			if err != nil {
				return err
			}
			printResult(out, res)
			results = append(results, res)
		}
	}

	if benchSave || benchCompare {
		if err := saveAndCompare(out, cfg.HistoryFile, results); err != nil {
			return err
		}
	}
	return nil
}

func printResult(out io.Writer, res bench.Result) {
	fmt.Fprintf(out, "%s: %s\n", bench.FormatLabel(res.Label), bench.FormatMetrics(res.Trials, res.Stats))
}

func saveAndCompare(out io.Writer, historyFile string, results []bench.Result) error {
	store, err := bench.NewFileStore(historyFile)
	if err != nil {
		return err
	}
	for _, res := range results {
		rec := bench.Record{
			Timestamp: time.Now(),
			Label:     res.Label,
			Command:   res.Command,
			Trials:    res.Trials,
			Stats:     res.Stats,
		}
		if benchCompare {
			prev, err := store.LoadLatest(res.Label)
			if err != nil {
				return err
			}
			if prev != nil {
				fmt.Fprintln(out, bench.CompareRecords(*prev, rec).String())
			}
		}
		if benchSave {
			if err := store.Save(rec); err != nil {
				return fmt.Errorf("failed to save history: %w", err)
			}
		}
	}
	if benchSave {
		fmt.Fprintf(out, "\nResults saved to %s\n", historyFile)
	}
	return nil
}

func selectTargets(cfg config.Config, target string) []string {
	if target == "all" {
		names := make([]string, 0, len(cfg.Targets))
		for name := range cfg.Targets {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	if _, ok := cfg.Targets[target]; ok {
		return []string{target}
	}
	return nil
}

// resetHook builds the cold-cache hook for a target: an explicit reset
// command wins over the cache artifact list; a target with neither runs
// without a hook.
func resetHook(t config.Target) (bench.ResetFunc, error) {
	if t.ResetCmd != "" {
		return cache.CommandHook(t.ResetCmd)
	}
	if len(t.CacheFiles) > 0 {
		return cache.FileHook(t.CacheFiles...), nil
	}
	return nil, nil
}

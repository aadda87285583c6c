package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fwbench/internal/config"
	"fwbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fwbench",
	Short: "Repeated-trial benchmarking harness for command-line trainers",
	Long: `fwbench runs external commands repeatedly under cold- and warm-cache
conditions, samples wall-clock time, peak memory and CPU utilization per
run, and reduces the trials to per-metric means and deviations.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fwbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Int("trials", 0, "Trials per session (overrides config)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	// the flag only overrides when explicitly set, so the config default
	// of 10 trials survives
	if t, err := rootCmd.PersistentFlags().GetInt("trials"); err == nil && t > 0 {
		viper.Set("trials", t)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}

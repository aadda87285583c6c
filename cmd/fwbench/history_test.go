package main

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fwbench/internal/bench"
)

func TestHistoryEmpty(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("history_file", filepath.Join(t.TempDir(), "history.json"))

	var out bytes.Buffer
	historyCmd.SetOut(&out)
	require.NoError(t, historyCmd.RunE(historyCmd, nil))

	assert.Contains(t, out.String(), "No saved sessions.")
}

func TestHistoryListsRecords(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "history.json")
	viper.Set("history_file", path)

	store, err := bench.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(bench.Record{
		Timestamp: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Label:     "vw train, no cache",
		Command:   "vw",
		Trials:    10,
		Stats: bench.Stats{
			Means: [bench.NumMetrics]float64{1.234, 2048.0, 0.5},
			Stds:  [bench.NumMetrics]float64{0.01, 10.0, 0.02},
		},
	}))

	var out bytes.Buffer
	historyCmd.SetOut(&out)
	require.NoError(t, historyCmd.RunE(historyCmd, nil))

	assert.Contains(t, out.String(), "vw train, no cache")
	assert.Contains(t, out.String(), "1.23 ± 0.01 seconds, 2 ± 0 MB, 50.00 ± 0% CPU (10 runs)")
}

func TestRunBenchEchoTarget(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real subprocesses")
	}
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("trials", 2)
	viper.Set("shell", "/bin/sh")
	viper.Set("poll_interval_ms", 10)
	viper.Set("history_file", filepath.Join(t.TempDir(), "history.json"))
	viper.Set("artifacts", []string{})
	viper.Set("targets.echo.train_cmd", "echo training")

	var out bytes.Buffer
	benchCmd.SetOut(&out)
	benchCmd.SetContext(context.Background())

	require.NoError(t, runBench(benchCmd, []string{"echo", "train"}))

	assert.Contains(t, out.String(), "echo train, no cache")
	assert.Contains(t, out.String(), "echo train, using cache")
	assert.Contains(t, out.String(), "(2 runs)")
}

func TestRunBenchUnknownAction(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("targets.echo.train_cmd", "echo training")

	err := runBench(benchCmd, []string{"echo", "frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestRunBenchUnknownTarget(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := runBench(benchCmd, []string{"nope", "train"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

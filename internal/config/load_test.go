package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg := FromViper()

	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, "/bin/sh", cfg.Shell)
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, ".fwbench/history.json", cfg.HistoryFile)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Contains(t, cfg.Artifacts, "train.vw.gz.cache")
	assert.Contains(t, cfg.Artifacts, "train.vw.gz.fwcache")

	require.Contains(t, cfg.Targets, "vw")
	require.Contains(t, cfg.Targets, "fw")
	assert.Contains(t, cfg.Targets["vw"].TrainCmd, "vw --data train.vw.gz")
	assert.Equal(t, []string{"train.vw.gz.cache"}, cfg.Targets["vw"].CacheFiles)
	assert.Equal(t, []string{"train.vw.gz.fwcache"}, cfg.Targets["fw"].CacheFiles)
	assert.Contains(t, cfg.Targets["fw"].TrainCmd, "--fastmath")
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	content := `
trials: 3
shell: /bin/bash
timeout: 60
targets:
  mytool:
    train_cmd: mytool train
    cache_files:
      - mytool.cache
    reset_cmd: rm -f mytool.cache
`
	path := filepath.Join(t.TempDir(), "fwbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	Load(path)
	cfg := FromViper()

	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.Equal(t, 60*time.Second, cfg.Timeout)

	require.Contains(t, cfg.Targets, "mytool")
	assert.Equal(t, "mytool train", cfg.Targets["mytool"].TrainCmd)
	assert.Equal(t, []string{"mytool.cache"}, cfg.Targets["mytool"].CacheFiles)
	assert.Equal(t, "rm -f mytool.cache", cfg.Targets["mytool"].ResetCmd)

	// defaulted targets remain available alongside configured ones
	assert.Contains(t, cfg.Targets, "vw")
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("FWBENCH_TRIALS", "7")
	Load(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := FromViper()
	assert.Equal(t, 7, cfg.Trials)
}

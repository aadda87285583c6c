package telemetry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerDebugLevel(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	InitLogger(true, "")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	InitLogger(false, "")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestInitLoggerFileHandler(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	path := filepath.Join(t.TempDir(), "fwbench.log")
	InitLogger(false, path)
	slog.Info("trial complete", "trial", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "trial complete")
}

// Package cache provides the reset hooks that establish a cold-cache
// condition between benchmark trials. The core harness never hardcodes
// filenames; callers configure which artifacts constitute "cache" for a
// given benchmarked command.
package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"fwbench/internal/bench"
)

// RemoveQuietly deletes path if it exists. An absent file is not an
// error, so hooks built on it stay idempotent.
func RemoveQuietly(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// FileHook returns a reset hook that deletes the given cache artifacts.
func FileHook(paths ...string) bench.ResetFunc {
	return func() error {
		for _, p := range paths {
			if err := RemoveQuietly(p); err != nil {
				return err
			}
		}
		return nil
	}
}

// CommandHook returns a reset hook that runs a command to restore
// baseline state. The command string is split shell-style but executed
// directly, so reset work is never confused with the timed shell trial.
func CommandHook(cmdline string) (bench.ResetFunc, error) {
	argv, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("invalid reset command %q: %w", cmdline, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("empty reset command")
	}
	return func() error {
		out, err := exec.Command(argv[0], argv[1:]...).CombinedOutput()
		if err != nil {
			return fmt.Errorf("reset command %q: %w\n%s", cmdline, err, out)
		}
		return nil
	}, nil
}

// RemoveAll deletes each artifact, logging the ones that existed.
func RemoveAll(logger *slog.Logger, paths []string) error {
	for _, p := range paths {
		_, statErr := os.Stat(p)
		if err := RemoveQuietly(p); err != nil {
			return err
		}
		if statErr == nil {
			logger.Info("removed artifact", "path", p)
		}
	}
	return nil
}

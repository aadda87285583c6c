package bench

import (
	"context"
	"fmt"
	"log/slog"

	"fwbench/internal/telemetry"
)

// ResetFunc restores external state to a defined baseline before a trial,
// e.g. deleting a cache artifact so every trial pays the same cold-start
// cost. Hooks must be idempotent: nothing to clean is not an error.
type ResetFunc func() error

// Runner executes the trials of one benchmark session, strictly in
// sequence. Trial k+1 never begins before trial k's sample is recorded.
type Runner struct {
	Sampler Sampler
	Logger  *slog.Logger
}

func NewRunner(s Sampler) *Runner {
	return &Runner{Sampler: s}
}

// Run performs trials executions of command, invoking reset before each
// one when non-nil. A reset failure or a LaunchError aborts the whole
// call: partial trial sets are never returned, because an unreset cache
// or missing binary invalidates every subsequent measurement.
func (r *Runner) Run(ctx context.Context, command string, trials int, reset ResetFunc) ([]Sample, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trial count must be at least 1, got %d", trials)
	}

	samples := make([]Sample, 0, trials)
	for i := 0; i < trials; i++ {
		if reset != nil {
			if err := reset(); err != nil {
				return nil, fmt.Errorf("reset hook before trial %d: %w", i+1, err)
			}
		}

		sample, err := r.Sampler.Run(ctx, command)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)

		r.logger().Debug("trial complete",
			"trial", i+1, "trials", trials,
			"seconds", sample.Seconds, "memory_kb", sample.MemoryKB, "cpu", sample.CPU)
		telemetry.ObserveTrial(command, sample.Seconds)
	}
	return samples, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

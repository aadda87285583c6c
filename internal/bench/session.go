package bench

import (
	"context"
	"log/slog"
)

// Benchmark describes one session: a labelled command plus an optional
// reset hook establishing its cache condition. A nil Reset means trials
// run back-to-back, each benefiting from state left by the previous one.
type Benchmark struct {
	Label   string
	Command string
	Reset   ResetFunc
}

// Driver sequences benchmark sessions and aggregates their samples. It
// holds no state across sessions.
type Driver struct {
	Runner *Runner
	Trials int
	Logger *slog.Logger
}

func NewDriver(r *Runner, trials int) *Driver {
	return &Driver{Runner: r, Trials: trials}
}

// Run executes one session and reduces it to per-metric statistics.
func (d *Driver) Run(ctx context.Context, b Benchmark) (Result, error) {
	d.logger().Info("session start", "label", b.Label, "trials", d.Trials)

	samples, err := d.Runner.Run(ctx, b.Command, d.Trials, b.Reset)
	if err != nil {
		return Result{}, err
	}
	st, err := Aggregate(samples)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Label:   b.Label,
		Command: b.Command,
		Trials:  d.Trials,
		Samples: samples,
		Stats:   st,
	}, nil
}

// WarmUp runs the command once and discards the sample, so a following
// warm-cache session starts from a deliberately warmed state instead of
// whatever a previous session happened to leave behind.
func (d *Driver) WarmUp(ctx context.Context, b Benchmark) error {
	d.logger().Debug("warming cache", "label", b.Label)
	_, err := d.Runner.Sampler.Run(ctx, b.Command)
	return err
}

// Compare runs the same session shape for two competing commands back to
// back. The sessions share no mutable state.
func (d *Driver) Compare(ctx context.Context, a, b Benchmark) ([]Result, error) {
	ra, err := d.Run(ctx, a)
	if err != nil {
		return nil, err
	}
	rb, err := d.Run(ctx, b)
	if err != nil {
		return nil, err
	}
	return []Result{ra, rb}, nil
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

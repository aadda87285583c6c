package bench

import (
	"errors"
	"math"
)

// ErrEmptyTrialSet is returned when aggregation is requested on zero samples.
var ErrEmptyTrialSet = errors.New("bench: empty trial set")

// Aggregate reduces a trial set to per-metric mean and population standard
// deviation (divisor T, not T-1). Two passes: means first, then variance
// relative to those means. Aggregation is order-independent; NaN or Inf
// inputs propagate per normal floating-point rules.
func Aggregate(samples []Sample) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ErrEmptyTrialSet
	}

	n := float64(len(samples))
	var st Stats

	for _, s := range samples {
		v := s.Vector()
		for i := 0; i < NumMetrics; i++ {
			st.Means[i] += v[i] / n
		}
	}

	for _, s := range samples {
		v := s.Vector()
		for i := 0; i < NumMetrics; i++ {
			d := v[i] - st.Means[i]
			st.Stds[i] += d * d / n
		}
	}

	for i := 0; i < NumMetrics; i++ {
		st.Stds[i] = math.Sqrt(st.Stds[i])
	}

	return st, nil
}

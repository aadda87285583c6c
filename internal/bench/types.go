package bench

import "time"

// NumMetrics is the arity of a Sample: wall-clock seconds, peak resident
// memory in kilobytes, and CPU utilization as a fraction of wall time.
const NumMetrics = 3

// Metric indices, aligned between Sample.Vector, Stats.Means and Stats.Stds.
const (
	MetricSeconds = iota
	MetricMemoryKB
	MetricCPU
)

// Sample holds the measurements from a single trial execution. A Sample is
// immutable once produced by a Sampler.
type Sample struct {
	Seconds  float64 `json:"seconds"`
	MemoryKB float64 `json:"memory_kb"`
	CPU      float64 `json:"cpu"`
}

// Vector returns the sample as a metric-indexed array.
func (s Sample) Vector() [NumMetrics]float64 {
	return [NumMetrics]float64{s.Seconds, s.MemoryKB, s.CPU}
}

// Stats holds per-metric mean and population standard deviation,
// index-aligned with Sample.Vector.
type Stats struct {
	Means [NumMetrics]float64 `json:"means"`
	Stds  [NumMetrics]float64 `json:"stds"`
}

// Result is the outcome of one benchmark session: the trial samples in
// execution order plus their aggregated statistics.
type Result struct {
	Label   string   `json:"label"`
	Command string   `json:"command"`
	Trials  int      `json:"trials"`
	Samples []Sample `json:"samples,omitempty"`
	Stats   Stats    `json:"stats"`
}

// Record is a session result persisted to the history store.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Command   string    `json:"command"`
	Trials    int       `json:"trials"`
	Stats     Stats     `json:"stats"`
}

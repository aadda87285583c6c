package bench

import "fmt"

// Comparison captures the percentage change between two stored records of
// the same session label. Negative means the current run improved.
type Comparison struct {
	Label       string
	SecondsDiff float64 // percentage change
	MemoryDiff  float64 // percentage change
	CPUDiff     float64 // percentage change
	Prev        Record
	Curr        Record
}

// CompareRecords computes per-metric percentage changes from prev to curr.
// Metrics with a zero previous mean are left at zero rather than dividing
// by zero.
func CompareRecords(prev, curr Record) Comparison {
	comp := Comparison{Label: curr.Label, Prev: prev, Curr: curr}

	if p := prev.Stats.Means[MetricSeconds]; p > 0 {
		comp.SecondsDiff = (curr.Stats.Means[MetricSeconds] - p) / p * 100
	}
	if p := prev.Stats.Means[MetricMemoryKB]; p > 0 {
		comp.MemoryDiff = (curr.Stats.Means[MetricMemoryKB] - p) / p * 100
	}
	if p := prev.Stats.Means[MetricCPU]; p > 0 {
		comp.CPUDiff = (curr.Stats.Means[MetricCPU] - p) / p * 100
	}
	return comp
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% time, %+.2f%% memory, %+.2f%% cpu vs %s",
		c.Label, c.SecondsDiff, c.MemoryDiff, c.CPUDiff,
		c.Prev.Timestamp.Format("2006-01-02 15:04:05"))
}

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMetrics(t *testing.T) {
	st := Stats{
		Means: [NumMetrics]float64{1.234, 2048.0, 0.5},
		Stds:  [NumMetrics]float64{0.01, 10.0, 0.02},
	}
	assert.Equal(t, "1.23 ± 0.01 seconds, 2 ± 0 MB, 50.00 ± 0% CPU (10 runs)",
		FormatMetrics(10, st))
}

func TestFormatMetricsCPUStdStaysFractional(t *testing.T) {
	// CPU mean is scaled to percent, CPU std is not
	st := Stats{
		Means: [NumMetrics]float64{2.5, 10240.0, 1.5},
		Stds:  [NumMetrics]float64{0.25, 1024.0, 0.6},
	}
	assert.Equal(t, "2.50 ± 0.25 seconds, 10 ± 1 MB, 150.00 ± 1% CPU (3 runs)",
		FormatMetrics(3, st))
}

package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTrial(t *testing.T) {
	before := testutil.ToFloat64(trialsTotal.WithLabelValues("echo x"))

	ObserveTrial("echo x", 0.5)
	ObserveTrial("echo x", 0.7)

	after := testutil.ToFloat64(trialsTotal.WithLabelValues("echo x"))
	assert.Equal(t, before+2, after)
}

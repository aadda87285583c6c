package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	trialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fwbench_trials_total",
		Help: "Completed benchmark trials per command.",
	}, []string{"command"})

	trialSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fwbench_trial_duration_seconds",
		Help:    "Wall-clock duration of individual trials.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 16),
	}, []string{"command"})
)

// ObserveTrial records one completed trial.
func ObserveTrial(command string, seconds float64) {
	trialsTotal.WithLabelValues(command).Inc()
	trialSeconds.WithLabelValues(command).Observe(seconds)
}

// StartMetricsServer starts a HTTP server exposing Prometheus metrics,
// so long benchmark runs can be watched externally.
func StartMetricsServer(addr string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, nil)
}

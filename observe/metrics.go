package observe

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments shared by metric observers.
// Create it once per registry and derive per-operation observers from it
// with Observer.
type Metrics struct {
	// Attempts counts operation invocations.
	Attempts *prometheus.CounterVec

	// Completions counts finished retry runs by result.
	Completions *prometheus.CounterVec

	// BackoffSeconds measures individual backoff waits.
	BackoffSeconds *prometheus.HistogramVec

	// TotalDelaySeconds measures the cumulative wait of finished runs.
	TotalDelaySeconds *prometheus.HistogramVec
}

// NewMetrics registers the retry instruments on reg. A nil registerer
// uses the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redelay_attempts_total",
				Help: "Total number of operation invocations",
			},
			[]string{"operation"},
		),
		Completions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redelay_completions_total",
				Help: "Total number of finished retry runs by result",
			},
			[]string{"operation", "result"},
		),
		BackoffSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "redelay_backoff_seconds",
				Help:    "Duration of individual backoff waits in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		TotalDelaySeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "redelay_total_delay_seconds",
				Help:    "Cumulative backoff of finished retry runs in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "result"},
		),
	}
}

// Observer returns an Observer recording events for the named operation.
func (m *Metrics) Observer(operation string) *MetricsObserver {
	return &MetricsObserver{metrics: m, operation: operation}
}

// MetricsObserver records retry lifecycle events for one operation.
type MetricsObserver struct {
	metrics   *Metrics
	operation string
}

func (o *MetricsObserver) OnAttempt(_ context.Context, _ Attempt) {
	o.metrics.Attempts.WithLabelValues(o.operation).Inc()
}

func (o *MetricsObserver) OnSleep(_ context.Context, d time.Duration) {
	o.metrics.BackoffSeconds.WithLabelValues(o.operation).Observe(d.Seconds())
}

func (o *MetricsObserver) OnSuccess(_ context.Context, s Summary) {
	o.metrics.Completions.WithLabelValues(o.operation, "success").Inc()
	o.metrics.TotalDelaySeconds.WithLabelValues(o.operation, "success").Observe(s.TotalDelay.Seconds())
}

func (o *MetricsObserver) OnFailure(_ context.Context, s Summary) {
	o.metrics.Completions.WithLabelValues(o.operation, "failure").Inc()
	o.metrics.TotalDelaySeconds.WithLabelValues(o.operation, "failure").Observe(s.TotalDelay.Seconds())
}

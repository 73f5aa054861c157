package filters

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// NoOpMetrics returns a metrics recorder that drops every observation.
func NoOpMetrics() interfaces.FilterMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveProcessDuration(string, time.Duration) {}

func (noopMetrics) IncrementProcessError(string) {}

// PrometheusMetrics records filter telemetry as Prometheus collectors
// labelled by filter ID.
type PrometheusMetrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors and registers them on
// registerer when it is not nil.
func NewPrometheusMetrics(registerer prometheus.Registerer, namespace string) (*PrometheusMetrics, error) {
	metrics := &PrometheusMetrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "filter",
				Name:      "process_duration_seconds",
				Help:      "Time spent by a filter processing one text.",
				Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
			[]string{"filter"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "filter",
				Name:      "process_errors_total",
				Help:      "Number of filter runs that returned an error.",
			},
			[]string{"filter"},
		),
	}

	if registerer != nil {
		for _, collector := range []prometheus.Collector{metrics.duration, metrics.errors} {
			if err := registerer.Register(collector); err != nil {
				return nil, err
			}
		}
	}
	return metrics, nil
}

func (m *PrometheusMetrics) ObserveProcessDuration(filterID string, duration time.Duration) {
	m.duration.WithLabelValues(filterID).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) IncrementProcessError(filterID string) {
	m.errors.WithLabelValues(filterID).Inc()
}

var _ interfaces.FilterMetrics = (*PrometheusMetrics)(nil)

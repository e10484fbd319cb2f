package bench

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics publishes per-trial observations to a private Prometheus
// registry: a benchmark process that runs several Harnesses side by
// side should not collide on the global default registry.
type Metrics struct {
	registry *prometheus.Registry
	duration prometheus.Histogram
	trials   prometheus.Counter
	reached  prometheus.Gauge
}

// NewMetrics registers the deltastep_bench_* metric family on a
// fresh registry and returns a handle to it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "deltastep",
			Subsystem: "bench",
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock duration of one DeltaStep trial.",
			Buckets:   prometheus.DefBuckets,
		}),
		trials: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "deltastep",
			Subsystem: "bench",
			Name:      "trials_total",
			Help:      "Total number of DeltaStep trials executed.",
		}),
		reached: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "deltastep",
			Subsystem: "bench",
			Name:      "reached_vertices",
			Help:      "Vertices reached by the most recent trial's SSSP tree.",
		}),
	}
}

// Observe records one Trial.
func (m *Metrics) Observe(t Trial) {
	m.duration.Observe(t.Duration.Seconds())
	m.trials.Inc()
	m.reached.Set(float64(t.ReachedCount))
}

// Handler exposes the registry in the Prometheus text exposition
// format, ready to mount on an HTTP server.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

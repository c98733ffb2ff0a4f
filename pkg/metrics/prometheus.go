package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal   *prometheus.CounterVec
	fetchDuration  prometheus.Histogram
	lastPrice      *prometheus.GaugeVec
	projectionRows prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quoteboard_fetches_total",
				Help: "Total number of snapshot fetches by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quoteboard_fetch_duration_seconds",
				Help:    "Duration of snapshot fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quoteboard_last_price",
				Help: "Last applied price for a symbol",
			},
			[]string{"symbol"},
		),
		projectionRows: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "quoteboard_projection_rows",
				Help: "Row count of the most recently derived projection",
			},
		),
	}
}

// RecordFetch records a fetch completion by outcome.
func (r *Recorder) RecordFetch(outcome string) {
	r.fetchesTotal.WithLabelValues(outcome).Inc()
}

// RecordFetchDuration records fetch latency in seconds.
func (r *Recorder) RecordFetchDuration(seconds float64) {
	r.fetchDuration.Observe(seconds)
}

// RecordLastPrice records the last applied price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordProjectionSize records the derived projection's row count.
func (r *Recorder) RecordProjectionSize(rows int) {
	r.projectionRows.Set(float64(rows))
}

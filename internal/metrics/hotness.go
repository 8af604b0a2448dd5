// Package metrics exposes Prometheus collectors for the hotness refresher.
package metrics

import (
	"net/http"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ command.HotnessRefreshObserver = (*HotnessRefresh)(nil)

// HotnessRefresh records batch refresh outcomes.
type HotnessRefresh struct {
	processed prometheus.Counter
	errors    prometheus.Counter
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
	lastTotal prometheus.Gauge
}

// NewHotnessRefresh creates the refresher collectors and registers them with reg.
func NewHotnessRefresh(reg prometheus.Registerer) (*HotnessRefresh, error) {
	m := &HotnessRefresh{
		processed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "idea_feed",
			Subsystem: "hotness_refresh",
			Name:      "processed_total",
			Help:      "Ideas rescored by batch refresh runs.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "idea_feed",
			Subsystem: "hotness_refresh",
			Name:      "errors_total",
			Help:      "Ideas that failed to rescore during batch refresh runs.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "idea_feed",
			Subsystem: "hotness_refresh",
			Name:      "runs_total",
			Help:      "Batch refresh runs by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "idea_feed",
			Subsystem: "hotness_refresh",
			Name:      "duration_seconds",
			Help:      "Wall time of batch refresh runs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		lastTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "idea_feed",
			Subsystem: "hotness_refresh",
			Name:      "last_candidates",
			Help:      "Candidate ideas seen by the most recent batch refresh run.",
		}),
	}

	for _, c := range []prometheus.Collector{m.processed, m.errors, m.runs, m.duration, m.lastTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *HotnessRefresh) ObserveHotnessRefresh(result command.RefreshAllHotnessResult) {
	m.processed.Add(float64(result.ProcessedCount))
	m.errors.Add(float64(result.ErrorCount))
	m.duration.Observe(result.Duration.Seconds())
	m.lastTotal.Set(float64(result.TotalCount))

	outcome := "failure"
	if result.Success {
		outcome = "success"
	}
	m.runs.WithLabelValues(outcome).Inc()
}

// Handler serves the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

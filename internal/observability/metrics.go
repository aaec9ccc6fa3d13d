package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the scrape pipeline.
type Metrics struct {
	ZonesScraped     prometheus.Counter
	ZonesSkipped     prometheus.Counter
	SyntheticZones   prometheus.Counter
	RecordsAppended  prometheus.Counter
	PersistFailures  prometheus.Counter
	ZoneScrapeTime   prometheus.Histogram
	ConditionsByCode *prometheus.CounterVec // label: condition
}

func newMetrics() *Metrics {
	return &Metrics{
		ZonesScraped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "port_status",
			Name:      "zones_scraped_total",
			Help:      "Zones scraped successfully.",
		}),
		ZonesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "port_status",
			Name:      "zones_skipped_total",
			Help:      "Zones skipped after fetch or parse failures.",
		}),
		SyntheticZones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "port_status",
			Name:      "synthetic_zones_total",
			Help:      "Zones degraded to the single-synthetic-port fallback.",
		}),
		RecordsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "port_status",
			Name:      "records_appended_total",
			Help:      "Status history rows appended.",
		}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "port_status",
			Name:      "persist_failures_total",
			Help:      "Per-port persistence failures.",
		}),
		ZoneScrapeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "port_status",
			Name:      "zone_scrape_duration_seconds",
			Help:      "Duration of one zone's fetch-parse-persist cycle.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ConditionsByCode: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "port_status",
			Name:      "conditions_observed_total",
			Help:      "Sub-port conditions observed per scrape, by code.",
		}, []string{"condition"}),
	}
}

// NewMetrics creates and registers the instruments with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ZonesScraped,
		m.ZonesSkipped,
		m.SyntheticZones,
		m.RecordsAppended,
		m.PersistFailures,
		m.ZoneScrapeTime,
		m.ConditionsByCode,
	)
	return m
}

// NewMetricsForTesting returns unregistered instruments so parallel tests do
// not trip duplicate-registration panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

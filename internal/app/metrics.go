package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus instruments.
// A fresh registerer per instance keeps tests isolated.
type Metrics struct {
	quotesCalculated *prometheus.CounterVec
	policiesIssued   *prometheus.CounterVec
	reviewLookups    *prometheus.CounterVec
}

// NewMetrics creates and registers the application counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		quotesCalculated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "insurtech",
			Name:      "quotes_calculated_total",
			Help:      "Number of quotes calculated, by coverage tier.",
		}, []string{"tier"}),
		policiesIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "insurtech",
			Name:      "policies_issued_total",
			Help:      "Number of simulated policies issued, by insurer.",
		}, []string{"insurer"}),
		reviewLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "insurtech",
			Name:      "review_lookups_total",
			Help:      "Number of insurer review lookups, by outcome.",
		}, []string{"outcome"}),
	}
}

package directory

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes, used as metric labels and log values.
const (
	OutcomeMatched      = "matched"
	OutcomeNoMatch      = "no_match"
	OutcomeLookupFailed = "lookup_failed"
)

// Metrics tracks directory lookups. A nil *Metrics is a valid no-op.
type Metrics struct {
	// Lookups counts lookups by outcome.
	// Labels: outcome=[matched, no_match, lookup_failed]
	Lookups *prometheus.CounterVec

	// LookupDuration observes the time a single lookup took, failures included.
	LookupDuration prometheus.Histogram

	// InFlight is the number of lookups currently waiting on the directory.
	InFlight prometheus.Gauge
}

// NewMetrics creates the lookup metrics and registers them with registerer
// (prometheus.DefaultRegisterer when nil). Registering twice reuses the
// collectors already present.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mentionlookup_directory_lookups_total",
				Help: "Directory lookups by outcome",
			},
			[]string{"outcome"},
		),
		LookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mentionlookup_directory_lookup_duration_seconds",
				Help:    "Duration of a single directory lookup",
				Buckets: prometheus.DefBuckets,
			},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mentionlookup_directory_lookups_in_flight",
				Help: "Directory lookups currently in progress",
			},
		),
	}

	m.Lookups = register(registerer, m.Lookups)
	m.LookupDuration = register(registerer, m.LookupDuration)
	m.InFlight = register(registerer, m.InFlight)

	return m
}

func register[C prometheus.Collector](registerer prometheus.Registerer, c C) C {
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func (m *Metrics) observe(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
	m.LookupDuration.Observe(took.Seconds())
}

func (m *Metrics) start() {
	if m == nil {
		return
	}
	m.InFlight.Inc()
}

func (m *Metrics) done() {
	if m == nil {
		return
	}
	m.InFlight.Dec()
}

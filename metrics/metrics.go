// Package metrics exposes Prometheus instruments for referral ingestion,
// analytics passes and simulations. Instruments are registered on a
// caller-supplied prometheus.Registerer so tests and the CLI each get an
// isolated registry; there is no HTTP listener, use WriteTextfile to export.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/refnet/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for refnet_referrals_total.
const (
	ResultAccepted   = "accepted"
	ResultSelf       = "self_referral"
	ResultDuplicate  = "duplicate_referrer"
	ResultCycle      = "cycle"
	ResultEmptyID    = "empty_id"
	ResultOtherError = "error"
)

// Metrics groups the refnet instruments.
type Metrics struct {
	Referrals          *prometheus.CounterVec
	AnalyticsDuration  *prometheus.HistogramVec
	SimulationRuns     *prometheus.CounterVec
	SimulatedReferrals prometheus.Histogram
}

// New creates and registers the instruments on reg. It panics if any name is
// already registered on reg, like promauto.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Referrals: f.NewCounterVec(prometheus.CounterOpts{
			Name: "refnet_referrals_total",
			Help: "Referral insertion attempts by result",
		}, []string{"result"}),
		AnalyticsDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "refnet_analytics_duration_seconds",
			Help:    "Duration of analytics passes by operation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"operation"}),
		SimulationRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "refnet_simulation_runs_total",
			Help: "Growth simulations by kind",
		}, []string{"kind"}),
		SimulatedReferrals: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "refnet_simulated_referrals",
			Help:    "Final cumulative referral count per simulation",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		}),
	}
}

// Observer returns a core.Observer counting every AddReferral attempt by
// result. Install it with core.WithObserver.
func (m *Metrics) Observer() core.Observer {
	return func(_, _ string, err error) {
		m.Referrals.WithLabelValues(Classify(err)).Inc()
	}
}

// Classify maps an AddReferral error to its result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultAccepted
	case errors.Is(err, core.ErrSelfReferral):
		return ResultSelf
	case errors.Is(err, core.ErrDuplicateReferrer):
		return ResultDuplicate
	case errors.Is(err, core.ErrCycleDetected):
		return ResultCycle
	case errors.Is(err, core.ErrEmptyUserID):
		return ResultEmptyID
	default:
		return ResultOtherError
	}
}

// Time runs fn and records its duration under operation.
func (m *Metrics) Time(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	m.AnalyticsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	return err
}

// RecordSimulation counts one simulation of kind and observes the last value
// of series in SimulatedReferrals. An empty series is counted only.
func (m *Metrics) RecordSimulation(kind string, series []int) {
	m.SimulationRuns.WithLabelValues(kind).Inc()
	if len(series) > 0 {
		m.SimulatedReferrals.Observe(float64(series[len(series)-1]))
	}
}

// WriteTextfile writes every metric gathered from g to path in the
// Prometheus text format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

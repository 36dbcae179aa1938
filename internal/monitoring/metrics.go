// Package monitoring exposes prometheus instrumentation for the
// reasoning engine plus a lightweight in-process monitor.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's prometheus collectors on a private
// registry so tests can instantiate it repeatedly.
type Metrics struct {
	registry *prometheus.Registry

	proposalsServed   *prometheus.CounterVec
	proposalRequests  prometheus.Counter
	noProposals       prometheus.Counter
	retrievalPoolSize prometheus.Histogram
	retrievalTopScore prometheus.Histogram
	adaptations       *prometheus.CounterVec
	validationScores  prometheus.Histogram
	retentionActions  *prometheus.CounterVec
	caseCount         prometheus.Gauge
	learningIteration prometheus.Gauge
}

// NewMetrics builds and registers the engine collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		proposalsServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_proposals_served_total",
				Help: "Valid proposals returned, by price bucket",
			},
			[]string{"bucket"},
		),
		proposalRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "menu_proposal_requests_total",
				Help: "Proposal requests received",
			},
		),
		noProposals: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "menu_no_proposals_total",
				Help: "Requests that produced no valid proposal",
			},
		),
		retrievalPoolSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "menu_retrieval_pool_size",
				Help:    "Candidates retrieved per request",
				Buckets: prometheus.LinearBuckets(0, 5, 11),
			},
		),
		retrievalTopScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "menu_retrieval_top_similarity",
				Help:    "Best retrieval similarity per request",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		adaptations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_adaptations_total",
				Help: "Adaptation outcomes, by kind",
			},
			[]string{"kind"},
		),
		validationScores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "menu_validation_score",
				Help:    "Reviser scores of valid proposals",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		retentionActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_retention_actions_total",
				Help: "Retention decisions, by action",
			},
			[]string{"action"},
		),
		caseCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "menu_case_pool_size",
				Help: "Cases currently in the pool",
			},
		),
		learningIteration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "menu_learning_iterations",
				Help: "Weight learner iterations absorbed",
			},
		),
	}

	m.registry.MustRegister(
		m.proposalsServed, m.proposalRequests, m.noProposals,
		m.retrievalPoolSize, m.retrievalTopScore, m.adaptations,
		m.validationScores, m.retentionActions, m.caseCount,
		m.learningIteration,
	)
	return m
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// All observation methods tolerate a nil receiver so callers can run
// without instrumentation.

func (m *Metrics) ObserveRequest() {
	if m == nil {
		return
	}
	m.proposalRequests.Inc()
}

func (m *Metrics) ObserveNoProposals() {
	if m == nil {
		return
	}
	m.noProposals.Inc()
}

func (m *Metrics) ObserveRetrieval(poolSize int, topScore float64) {
	if m == nil {
		return
	}
	m.retrievalPoolSize.Observe(float64(poolSize))
	m.retrievalTopScore.Observe(topScore)
}

func (m *Metrics) ObserveProposal(bucket string, validationScore float64) {
	if m == nil {
		return
	}
	m.proposalsServed.WithLabelValues(bucket).Inc()
	m.validationScores.Observe(validationScore)
}

func (m *Metrics) ObserveAdaptation(kind string) {
	if m == nil {
		return
	}
	m.adaptations.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveRetention(action string, poolSize int) {
	if m == nil {
		return
	}
	m.retentionActions.WithLabelValues(action).Inc()
	m.caseCount.Set(float64(poolSize))
}

func (m *Metrics) ObserveLearning(iteration int) {
	if m == nil {
		return
	}
	m.learningIteration.Set(float64(iteration))
}

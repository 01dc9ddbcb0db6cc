// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Reconciliation of graph-query rows into artworks
// - Type label classification outcomes
// - Recommendation scoring and ranking
// - Target resolution and the single-artwork lookup circuit breaker

var (
	// Reconciliation Metrics
	ReconcileBindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_bindings_total",
			Help: "Total number of graph-query bindings seen by the reconciler",
		},
		[]string{"result"}, // "accepted", "dropped"
	)

	ReconcileArtworks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reconcile_artworks",
			Help:    "Number of distinct artworks produced per reconciliation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200, 500, 1000},
		},
	)

	ReconcileDuplicateRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reconcile_duplicate_rows_total",
			Help: "Total number of bindings merged into an already-seen artwork",
		},
	)

	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reconcile_duration_seconds",
			Help:    "Duration of a reconciliation pass in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// Classification Metrics
	ArtworkTypeClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwork_type_classifications_total",
			Help: "Total number of type label classifications by outcome and resulting type",
		},
		[]string{"outcome", "type"}, // outcome: "matched", "unmatched", "missing"
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests handled by the engine",
		},
		[]string{"result"}, // "ranked", "empty"
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of candidate artworks scored per request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200, 500, 1000},
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of scoring and ranking in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationUnknownCriteria = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_unknown_criteria_total",
			Help: "Total number of unrecognized criterion names ignored",
		},
	)

	// TargetResolutions counts where the target artwork of a request came from.
	TargetResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_target_resolutions_total",
			Help: "Total number of target artwork resolutions by source",
		},
		[]string{"source"}, // "bulk", "lookup", "missing"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordBinding records one binding seen by the reconciler
func RecordBinding(accepted bool) {
	result := "accepted"
	if !accepted {
		result = "dropped"
	}
	ReconcileBindingsTotal.WithLabelValues(result).Inc()
}

// RecordReconciliation records the outcome of a full reconciliation pass
func RecordReconciliation(rows, artworks int, duration time.Duration) {
	ReconcileArtworks.Observe(float64(artworks))
	ReconcileDuration.Observe(duration.Seconds())
	if merged := rows - artworks; merged > 0 {
		ReconcileDuplicateRows.Add(float64(merged))
	}
}

// RecordTypeClassification records how a type label was resolved
func RecordTypeClassification(outcome, artworkType string) {
	ArtworkTypeClassifications.WithLabelValues(outcome, artworkType).Inc()
}

// RecordRecommendation records one engine invocation
func RecordRecommendation(candidates, returned int, duration time.Duration) {
	result := "ranked"
	if returned == 0 {
		result = "empty"
	}
	RecommendationRequests.WithLabelValues(result).Inc()
	RecommendationCandidates.Observe(float64(candidates))
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordUnknownCriteria records criterion names that were ignored
func RecordUnknownCriteria(count int) {
	if count > 0 {
		RecommendationUnknownCriteria.Add(float64(count))
	}
}

// RecordTargetResolution records where a target artwork was resolved from
func RecordTargetResolution(source string) {
	TargetResolutions.WithLabelValues(source).Inc()
}

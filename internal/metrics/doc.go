// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

/*
Package metrics provides Prometheus metrics collection for observability.

Collectors are registered with the default registry through promauto, so any
process embedding the catalog packages can expose them with promhttp.

# Available Metrics

Reconciliation Metrics:
  - reconcile_bindings_total: Bindings seen (counter)
    Labels: result (accepted, dropped)
  - reconcile_artworks: Distinct artworks per pass (histogram)
  - reconcile_duplicate_rows_total: Rows merged into an existing artwork (counter)
  - reconcile_duration_seconds: Pass duration (histogram)

Classification Metrics:
  - artwork_type_classifications_total: Type label outcomes (counter)
    Labels: outcome (matched, unmatched, missing), type

Missing and unmatched labels resolve to the same default type. The outcome
label is the only place the two cases stay distinguishable.

Recommendation Metrics:
  - recommendation_requests_total: Engine invocations (counter)
    Labels: result (ranked, empty)
  - recommendation_candidates: Candidates scored per request (histogram)
  - recommendation_duration_seconds: Scoring and ranking time (histogram)
  - recommendation_unknown_criteria_total: Ignored criterion names (counter)
  - recommendation_target_resolutions_total: Target source (counter)
    Labels: source (bulk, lookup, missing)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

# Usage

	metrics.RecordBinding(true)
	metrics.RecordRecommendation(len(candidates), len(recs), time.Since(start))
*/
package metrics

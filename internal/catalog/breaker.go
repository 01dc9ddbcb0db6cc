// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/provenance/internal/metrics"
	"github.com/tomtom215/provenance/internal/reconcile"
)

// BreakerSettings configures the circuit breaker around artwork lookups.
type BreakerSettings struct {
	// Name labels breaker metrics. Defaults to "artwork-lookup".
	Name string

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32

	// Interval is the cyclic period after which closed-state counts reset.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// MinRequests is the number of requests needed before tripping.
	MinRequests uint32

	// FailureRatio trips the breaker once reached.
	FailureRatio float64
}

// DefaultBreakerSettings returns the default lookup breaker configuration.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "artwork-lookup",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// withDefaults fills zero fields from DefaultBreakerSettings.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (b BreakerSettings) withDefaults() BreakerSettings {
	d := DefaultBreakerSettings()
	if b.Name == "" {
		b.Name = d.Name
	}
	if b.MaxRequests == 0 {
		b.MaxRequests = d.MaxRequests
	}
	if b.Interval <= 0 {
		b.Interval = d.Interval
	}
	if b.Timeout <= 0 {
		b.Timeout = d.Timeout
	}
	if b.MinRequests == 0 {
		b.MinRequests = d.MinRequests
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		b.FailureRatio = d.FailureRatio
	}
	return b
}

// breakerLookup wraps an EntityLookup with a circuit breaker. A not-found
// answer is a healthy response and never counts as a failure.
type breakerLookup struct {
	next EntityLookup
	cb   *gobreaker.CircuitBreaker[reconcile.EntityRecord]
	name string
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreakerLookup(next EntityLookup, settings BreakerSettings, logger zerolog.Logger) *breakerLookup {
	settings = settings.withDefaults()
	name := settings.Name

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[reconcile.EntityRecord](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio

			if shouldTrip {
				logger.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrArtworkNotFound)
		},
	})

	return &breakerLookup{next: next, cb: cb, name: name}
}

// LookupArtwork runs the wrapped lookup through the breaker.
func (b *breakerLookup) LookupArtwork(ctx context.Context, uri string) (reconcile.EntityRecord, error) {
	rec, err := b.cb.Execute(func() (reconcile.EntityRecord, error) {
		return b.next.LookupArtwork(ctx, uri)
	})

	switch {
	case err == nil || errors.Is(err, ErrArtworkNotFound):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	}

	return rec, err
}

// State returns the current breaker state.
func (b *breakerLookup) State() gobreaker.State {
	return b.cb.State()
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for metrics labels
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

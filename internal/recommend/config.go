// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// PeriodWindowYears is the distance in years at which the period
	// contribution decays linearly to zero.
	PeriodWindowYears float64 `json:"period_window_years" koanf:"period_window_years"`

	// ExactMatchThreshold is the contribution an exact-match criterion must
	// exceed to be listed in MatchedCriteria.
	ExactMatchThreshold float64 `json:"exact_match_threshold" koanf:"exact_match_threshold"`

	// PeriodMatchThreshold is the contribution the period criterion must
	// exceed to be listed in MatchedCriteria.
	PeriodMatchThreshold float64 `json:"period_match_threshold" koanf:"period_match_threshold"`

	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultMaxResults is used when a request does not set MaxResults.
	DefaultMaxResults int `json:"default_max_results" koanf:"default_max_results"`

	// MaxResults is the hard cap on returned recommendations.
	MaxResults int `json:"max_results" koanf:"max_results"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		PeriodWindowYears:    50,
		ExactMatchThreshold:  0.99,
		PeriodMatchThreshold: 0,
		Limits: LimitsConfig{
			DefaultMaxResults: 10,
			MaxResults:        50,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.PeriodWindowYears <= 0 || math.IsInf(c.PeriodWindowYears, 0) || math.IsNaN(c.PeriodWindowYears) {
		return fmt.Errorf("period_window_years must be a positive finite number, got %v", c.PeriodWindowYears)
	}
	if c.ExactMatchThreshold < 0 || c.ExactMatchThreshold >= 1 {
		return fmt.Errorf("exact_match_threshold must be in [0, 1), got %v", c.ExactMatchThreshold)
	}
	if c.PeriodMatchThreshold < 0 || c.PeriodMatchThreshold >= 1 {
		return fmt.Errorf("period_match_threshold must be in [0, 1), got %v", c.PeriodMatchThreshold)
	}

	if c.Limits.DefaultMaxResults < 1 {
		return fmt.Errorf("limits.default_max_results must be positive, got %d", c.Limits.DefaultMaxResults)
	}
	if c.Limits.MaxResults < c.Limits.DefaultMaxResults {
		return fmt.Errorf("limits.max_results must be >= limits.default_max_results, got %d < %d",
			c.Limits.MaxResults, c.Limits.DefaultMaxResults)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All fields are value types.
	clone := *c
	return &clone
}

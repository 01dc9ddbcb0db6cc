// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package config

import (
	"time"

	"github.com/tomtom215/provenance/internal/catalog"
	"github.com/tomtom215/provenance/internal/logging"
	"github.com/tomtom215/provenance/internal/recommend"
)

// Config holds all application configuration.
//
// Loading order (koanf v2):
//  1. Defaults built into defaultConfig
//  2. Optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment variables
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
	Lookup    LookupConfig     `koanf:"lookup"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// CatalogConfig describes where catalog rows come from and how requests
// are defaulted.
//
// Environment Variables:
//   - HERITAGE_NAMESPACE: local catalog URI prefix
//   - CATALOG_QUERY_LIMIT: maximum bulk rows per request (default: 200)
//   - CATALOG_RESULTS_FILE: SPARQL JSON results document for bulk rows
//   - CATALOG_RECORDS_FILE: JSON array of single-entity records
//   - RECOMMEND_DEFAULT_CRITERIA: comma-separated criteria used when a request names none
type CatalogConfig struct {
	// Namespace is the URI prefix of artworks owned by the local catalog.
	Namespace string `koanf:"namespace"`

	// QueryLimit caps rows read per request. 0 means no limit.
	QueryLimit int `koanf:"query_limit"`

	// ResultsFile is the bulk query output read by the CLI.
	ResultsFile string `koanf:"results_file"`

	// RecordsFile is optional. When set, targets missing from the bulk rows
	// are looked up here.
	RecordsFile string `koanf:"records_file"`

	DefaultCriteria []string `koanf:"default_criteria"`
}

// LookupConfig configures the circuit breaker around single-artwork lookups.
type LookupConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}

// EngineConfig returns a copy of the recommendation engine settings.
func (c *Config) EngineConfig() *recommend.Config {
	return c.Recommend.Clone()
}

// CatalogOptions converts the catalog and lookup sections for catalog.NewService.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Namespace:         c.Catalog.Namespace,
		QueryLimit:        c.Catalog.QueryLimit,
		DefaultCriteria:   append([]string(nil), c.Catalog.DefaultCriteria...),
		DefaultMaxResults: c.Recommend.Limits.DefaultMaxResults,
		Breaker: catalog.BreakerSettings{
			MaxRequests:  c.Lookup.MaxRequests,
			Interval:     c.Lookup.Interval,
			Timeout:      c.Lookup.Timeout,
			MinRequests:  c.Lookup.MinRequests,
			FailureRatio: c.Lookup.FailureRatio,
		},
	}
}

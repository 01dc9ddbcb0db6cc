// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/provenance/internal/catalog"
	"github.com/tomtom215/provenance/internal/models"
	"github.com/tomtom215/provenance/internal/recommend"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/provenance/config.yaml",
	"/etc/provenance/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultNamespace is the URI prefix of the heritage provenance catalog.
const DefaultNamespace = "http://arp-greatteam.org/heritage-provenance/"

// defaultConfig returns a Config with every default applied. File and
// environment values are layered on top.
func defaultConfig() *Config {
	breaker := catalog.DefaultBreakerSettings()

	return &Config{
		Catalog: CatalogConfig{
			Namespace:       DefaultNamespace,
			QueryLimit:      200,
			DefaultCriteria: models.CriteriaStrings(models.DefaultCriteria),
		},
		Recommend: *recommend.DefaultConfig(),
		Lookup: LookupConfig{
			MaxRequests:  breaker.MaxRequests,
			Interval:     breaker.Interval,
			Timeout:      breaker.Timeout,
			MinRequests:  breaker.MinRequests,
			FailureRatio: breaker.FailureRatio,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Defaults
//  2. Config file, if one is found
//  3. Environment variables
func LoadWithKoanf() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile loads configuration using path as the config file instead of
// searching for one. Environment variables still take precedence.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// HERITAGE_NAMESPACE -> catalog.namespace
	// RECOMMEND_PERIOD_WINDOW -> recommend.period_window_years
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first default
// path that exists, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from the
// environment.
var sliceConfigPaths = []string{
	"catalog.default_criteria",
}

// processSliceFields splits comma-separated string values into slices.
// YAML lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		if err := k.Set(path, models.SplitCriteria(strVal)); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"heritage_namespace":   "catalog.namespace",
	"catalog_query_limit":  "catalog.query_limit",
	"catalog_results_file": "catalog.results_file",
	"catalog_records_file": "catalog.records_file",

	"recommend_default_criteria":    "catalog.default_criteria",
	"recommend_period_window":       "recommend.period_window_years",
	"recommend_exact_threshold":     "recommend.exact_match_threshold",
	"recommend_period_threshold":    "recommend.period_match_threshold",
	"recommend_default_max_results": "recommend.limits.default_max_results",
	"recommend_max_results":         "recommend.limits.max_results",

	"lookup_breaker_max_requests":  "lookup.max_requests",
	"lookup_breaker_interval":      "lookup.interval",
	"lookup_breaker_timeout":       "lookup.timeout",
	"lookup_breaker_min_requests":  "lookup.min_requests",
	"lookup_breaker_failure_ratio": "lookup.failure_ratio",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path.
//
// Examples:
//   - HERITAGE_NAMESPACE -> catalog.namespace
//   - RECOMMEND_MAX_RESULTS -> recommend.limits.max_results
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

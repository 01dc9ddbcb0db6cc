// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/provenance/internal/logging"
	"github.com/tomtom215/provenance/internal/models"
)

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := c.validateLookup(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if err := validateNamespace(c.Catalog.Namespace); err != nil {
		return fmt.Errorf("HERITAGE_NAMESPACE is invalid: %w", err)
	}

	if c.Catalog.QueryLimit < 0 {
		return fmt.Errorf("CATALOG_QUERY_LIMIT must be >= 0, got %d", c.Catalog.QueryLimit)
	}

	_, unknown := models.ParseCriteria(c.Catalog.DefaultCriteria)
	if len(unknown) > 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_CRITERIA contains unknown criteria: %s", strings.Join(unknown, ", "))
	}

	return nil
}

// validateNamespace requires an absolute http(s) URI ending in "/" so that
// identifiers can be appended directly.
func validateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("namespace is required")
	}

	parsed, err := url.Parse(ns)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("host is required")
	}
	if !strings.HasSuffix(ns, "/") {
		return fmt.Errorf("namespace must end with '/'")
	}
	return nil
}

func (c *Config) validateLookup() error {
	if c.Lookup.FailureRatio <= 0 || c.Lookup.FailureRatio > 1 {
		return fmt.Errorf("LOOKUP_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Lookup.FailureRatio)
	}
	if c.Lookup.Timeout < 0 || c.Lookup.Interval < 0 {
		return fmt.Errorf("lookup breaker durations must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

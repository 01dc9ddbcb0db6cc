// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

/*
Package config loads Provenance configuration with koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults
 2. A YAML file: CONFIG_PATH, else config.yaml / config.yml in the working
    directory, else /etc/provenance/config.yaml
 3. Environment variables from an explicit mapping; anything else in the
    environment is ignored

Example config.yaml:

	catalog:
	  namespace: http://arp-greatteam.org/heritage-provenance/
	  query_limit: 200
	  results_file: /data/artworks.json
	  records_file: /data/records.json
	  default_criteria: [artist, period, type, location]
	recommend:
	  period_window_years: 50
	  exact_match_threshold: 0.99
	  period_match_threshold: 0
	  limits:
	    default_max_results: 10
	    max_results: 50
	lookup:
	  timeout: 30s
	  failure_ratio: 0.6
	logging:
	  level: info
	  format: json

Environment variables:

	HERITAGE_NAMESPACE              catalog.namespace
	CATALOG_QUERY_LIMIT             catalog.query_limit
	CATALOG_RESULTS_FILE            catalog.results_file
	CATALOG_RECORDS_FILE            catalog.records_file
	RECOMMEND_DEFAULT_CRITERIA      catalog.default_criteria (comma-separated)
	RECOMMEND_PERIOD_WINDOW         recommend.period_window_years
	RECOMMEND_EXACT_THRESHOLD       recommend.exact_match_threshold
	RECOMMEND_PERIOD_THRESHOLD      recommend.period_match_threshold
	RECOMMEND_DEFAULT_MAX_RESULTS   recommend.limits.default_max_results
	RECOMMEND_MAX_RESULTS           recommend.limits.max_results
	LOOKUP_BREAKER_*                lookup.* (MAX_REQUESTS, INTERVAL, TIMEOUT, MIN_REQUESTS, FAILURE_RATIO)
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Load validates the merged result; an invalid value fails startup with an
error naming the setting.
*/
package config

// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps the library with a thread-safe singleton validator and
// user-friendly error messages. Field names in messages use the struct's
// json names, so a failing recommendation request reports "target_uri"
// rather than "TargetURI".
//
// # Quick Start
//
//	req := models.RecommendationRequest{TargetURI: uri, MaxResults: 10}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    for _, e := range verr.Errors() {
//	        fmt.Println(e.Field(), e.Tag(), e.Error())
//	    }
//	}
//
// # Common Validation Tags
//
//   - required: Field must not be empty
//   - uri: Valid absolute or opaque URI
//   - min=n / max=n: Numeric bounds or string length
//   - oneof: Value from a fixed set
//
// # Thread Safety
//
// GetValidator initializes the validator once via sync.Once. The validator
// caches struct metadata and is safe for concurrent use.
package validation

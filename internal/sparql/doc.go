// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

// Package sparql decodes graph-store output into reconciler input.
//
// DecodeResults reads the SPARQL 1.1 Query Results JSON format
// (https://www.w3.org/TR/sparql11-results-json/) and Results.Bindings turns
// each row into a reconcile.Binding. DecodeRecord and DecodeRecords read the
// nested single-entity shape returned by an artwork lookup.
package sparql

// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package sparql

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/provenance/internal/reconcile"
)

// DecodeRecord reads one shaped single-entity record.
func DecodeRecord(r io.Reader) (reconcile.EntityRecord, error) {
	var rec reconcile.EntityRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return reconcile.EntityRecord{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return rec, nil
}

// DecodeRecords reads a JSON array of shaped single-entity records.
func DecodeRecords(r io.Reader) ([]reconcile.EntityRecord, error) {
	var recs []reconcile.EntityRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return recs, nil
}

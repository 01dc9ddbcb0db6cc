// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/provenance/internal/reconcile"
	"github.com/tomtom215/provenance/internal/sparql"
)

// FileRowSource reads bulk rows from a SPARQL JSON results file, as saved
// from a graph store's query endpoint.
type FileRowSource struct {
	Path string
}

// Rows decodes the file and returns at most limit bindings.
func (f FileRowSource) Rows(ctx context.Context, limit int) ([]reconcile.Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer file.Close()

	res, err := sparql.DecodeResults(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return res.Bindings(limit), nil
}

// FileLookup serves single-entity records from a JSON array file.
type FileLookup struct {
	records map[string]reconcile.EntityRecord
}

// NewFileLookup loads every record in path. Later records with a repeated
// URI are ignored.
func NewFileLookup(path string) (*FileLookup, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer file.Close()

	recs, err := sparql.DecodeRecords(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	l := &FileLookup{records: make(map[string]reconcile.EntityRecord, len(recs))}
	for i := range recs {
		uri := strings.TrimSpace(recs[i].URI)
		if uri == "" {
			continue
		}
		if _, dup := l.records[uri]; !dup {
			l.records[uri] = recs[i]
		}
	}
	return l, nil
}

// Len returns the number of loaded records.
func (l *FileLookup) Len() int {
	return len(l.records)
}

// LookupArtwork returns the record for uri or ErrArtworkNotFound.
func (l *FileLookup) LookupArtwork(ctx context.Context, uri string) (reconcile.EntityRecord, error) {
	if err := ctx.Err(); err != nil {
		return reconcile.EntityRecord{}, err
	}
	rec, ok := l.records[uri]
	if !ok {
		return reconcile.EntityRecord{}, ErrArtworkNotFound
	}
	return rec, nil
}

// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/provenance/internal/reconcile"
	"github.com/tomtom215/provenance/internal/sparql"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const resultsFixture = `{
  "head": {"vars": ["artwork", "title"]},
  "results": {"bindings": [
    {"artwork": {"type": "uri", "value": "urn:a"}, "title": {"type": "literal", "value": "A"}},
    {"artwork": {"type": "uri", "value": "urn:b"}},
    {"artwork": {"type": "uri", "value": "urn:c"}}
  ]}
}`

func TestFileRowSource(t *testing.T) {
	t.Parallel()

	src := FileRowSource{Path: writeFile(t, "results.json", resultsFixture)}

	rows, err := src.Rows(context.Background(), 2)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].Get(reconcile.VarTitle) != "A" {
		t.Errorf("title = %q", rows[0].Get(reconcile.VarTitle))
	}

	all, err := src.Rows(context.Background(), 0)
	if err != nil || len(all) != 3 {
		t.Errorf("Rows(0) = %d rows, %v", len(all), err)
	}
}

func TestFileRowSource_Errors(t *testing.T) {
	t.Parallel()

	if _, err := (FileRowSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Rows(context.Background(), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := FileRowSource{Path: writeFile(t, "bad.json", `{"head": {}}`)}
	if _, err := bad.Rows(context.Background(), 0); !errors.Is(err, sparql.ErrMalformedDocument) {
		t.Errorf("malformed err = %v, want ErrMalformedDocument", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FileRowSource{Path: "unused"}).Rows(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled err = %v, want context.Canceled", err)
	}
}

func TestFileLookup(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "records.json", `[
		{"uri": "urn:a", "title": "First"},
		{"uri": "urn:a", "title": "Duplicate"},
		{"title": "No identity"},
		{"uri": "urn:b", "material": {"label": "bronze"}}
	]`)

	l, err := NewFileLookup(path)
	if err != nil {
		t.Fatalf("NewFileLookup: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}

	rec, err := l.LookupArtwork(context.Background(), "urn:a")
	if err != nil {
		t.Fatalf("LookupArtwork: %v", err)
	}
	if rec.Title == nil || *rec.Title != "First" {
		t.Errorf("Title = %v, want First", rec.Title)
	}

	if _, err := l.LookupArtwork(context.Background(), "urn:z"); !errors.Is(err, ErrArtworkNotFound) {
		t.Errorf("err = %v, want ErrArtworkNotFound", err)
	}

	if _, err := NewFileLookup(writeFile(t, "bad.json", `{}`)); !errors.Is(err, sparql.ErrMalformedDocument) {
		t.Errorf("err = %v, want ErrMalformedDocument", err)
	}
}

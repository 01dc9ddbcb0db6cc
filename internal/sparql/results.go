// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package sparql

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/provenance/internal/reconcile"
)

// ErrMalformedDocument is returned when a document is not valid JSON or
// lacks the members its format requires.
var ErrMalformedDocument = errors.New("malformed SPARQL results document")

// RDF term types of the SPARQL 1.1 JSON results format.
const (
	TermURI          = "uri"
	TermLiteral      = "literal"
	TermTypedLiteral = "typed-literal"
	TermBlankNode    = "bnode"
)

// Term is one bound RDF term.
type Term struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// String returns the term in the form the reconciler consumes. Blank nodes
// keep their "_:" prefix so they cannot collide with URIs.
func (t Term) String() string {
	if t.Type == TermBlankNode {
		return "_:" + t.Value
	}
	return t.Value
}

// Head is the head member of a results document.
type Head struct {
	Vars []string `json:"vars"`
}

// ResultSet is the results member of a results document.
type ResultSet struct {
	Bindings []map[string]Term `json:"bindings"`
}

// Results is a decoded SPARQL 1.1 SELECT results document.
type Results struct {
	Head    Head       `json:"head"`
	Results *ResultSet `json:"results"`
}

// DecodeResults reads a SPARQL 1.1 JSON SELECT results document.
func DecodeResults(r io.Reader) (*Results, error) {
	var res Results
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if res.Results == nil {
		return nil, fmt.Errorf("%w: missing results member", ErrMalformedDocument)
	}
	return &res, nil
}

// Len returns the number of rows in the document.
func (res *Results) Len() int {
	if res == nil || res.Results == nil {
		return 0
	}
	return len(res.Results.Bindings)
}

// Bindings converts rows into reconciler bindings. Only variables that are
// part of the reconciler's contract are kept. A positive limit caps the
// number of rows returned.
func (res *Results) Bindings(limit int) []reconcile.Binding {
	n := res.Len()
	if limit > 0 && n > limit {
		n = limit
	}

	out := make([]reconcile.Binding, 0, n)
	if n == 0 {
		return out
	}
	for _, row := range res.Results.Bindings[:n] {
		b := make(reconcile.Binding, len(row))
		for name, term := range row {
			if !reconcile.IsVariable(name) {
				continue
			}
			b[name] = term.String()
		}
		out = append(out, b)
	}
	return out
}

// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/provenance/internal/catalog"
	"github.com/tomtom215/provenance/internal/config"
	"github.com/tomtom215/provenance/internal/logging"
	"github.com/tomtom215/provenance/internal/recommend"
)

// errNoResultsFile is returned when neither --results nor
// CATALOG_RESULTS_FILE names the bulk rows.
var errNoResultsFile = errors.New("no results file configured: set --results or CATALOG_RESULTS_FILE")

// newService wires the file-backed row source and lookup to the engine.
func newService(cfg *config.Config) (*catalog.Service, error) {
	if cfg.Catalog.ResultsFile == "" {
		return nil, errNoResultsFile
	}

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	var lookup catalog.EntityLookup
	if cfg.Catalog.RecordsFile != "" {
		fl, err := catalog.NewFileLookup(cfg.Catalog.RecordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load records: %w", err)
		}
		logging.Debug().Int("records", fl.Len()).Str("path", cfg.Catalog.RecordsFile).Msg("loaded lookup records")
		lookup = fl
	}

	rows := catalog.FileRowSource{Path: cfg.Catalog.ResultsFile}
	return catalog.NewService(cfg.CatalogOptions(), rows, lookup, engine, logging.WithComponent("catalog"))
}

// targetURI accepts either a full URI or a bare catalog identifier.
func targetURI(namespace, arg string) string {
	arg = strings.TrimSpace(arg)
	if strings.Contains(arg, ":") {
		return arg
	}
	return catalog.ArtworkURI(namespace, arg)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

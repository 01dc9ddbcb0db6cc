// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

// Package main is the entry point for the provenance command-line tool.
//
// provenance reads saved graph-store query output, reconciles it into one
// artwork per identity and ranks similar artworks for a target.
//
// # Commands
//
//	provenance reconcile                      # print the reconciled catalog
//	provenance artwork <uri|id>               # print one artwork
//	provenance recommend <uri|id> [flags]     # rank similar artworks
//	provenance version
//
// # Configuration
//
// Settings come from built-in defaults, an optional config.yaml and the
// environment (see internal/config). Root flags override all three:
//
//	provenance --results artworks.json --records records.json \
//	    recommend 42 --criteria artist,period --max-results 5
//
// Results are written to stdout as JSON. Logs go to stderr.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

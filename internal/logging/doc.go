// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

// Package logging provides the zerolog global logger used by Provenance.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("artworks", n).Msg("catalog reconciled")
//	logging.Err(err).Str("target", uri).Msg("recommendation failed")
//
// # Configuration
//
// Config is filled from internal/config, which reads:
//
//	LOG_LEVEL   - trace, debug, info, warn, error, disabled (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Output goes to stderr by default; command results own stdout.
//
// # Component Loggers
//
// Engines and services take a zerolog.Logger and add a component field:
//
//	engine, err := recommend.NewEngine(cfg, logging.WithComponent("recommend"))
//
// # Context
//
// Each CLI invocation carries a short correlation ID in its context.
// Ctx attaches it to the logger:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Debug().Msg("resolving target")
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//
// All exported functions are safe for concurrent use.
package logging

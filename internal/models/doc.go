// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

/*
Package models defines the catalog data model shared by the reconciler, the
recommendation engine and the CLI.

Artworks:

  - Artwork: canonical record for one catalog object, identified by URI
  - Agent: the creator of a work (Person or Organization)
  - Location: the current holding place of a work
  - ArtworkType: closed classification enum (painting, sculpture, ...)

Recommendations:

  - Criterion: one similarity dimension (artist, period, type, location, medium)
  - Recommendation: a ranked candidate with score, matched criteria and reasons
  - RecommendationRequest: validated input to a recommendation run

Classification:

ClassifyType maps a free-text type label to an ArtworkType through an
ordered keyword table and reports whether the label was missing, matched or
unrecognized. Missing and unrecognized labels both yield DefaultArtworkType.

	c := models.ClassifyType("Portrait bust, marble")
	// c.Type == models.ArtworkSculpture, c.Outcome == models.ClassificationMatched

JSON:

ArtworkType marshals as its lower-case name. The recommendation wire names
(similarity_score, matched_criteria, reasons) are those the catalog frontend
reads.

Instances are built once per request and not mutated afterwards, so they are
safe to share across goroutines.
*/
package models

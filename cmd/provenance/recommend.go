// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/provenance/internal/logging"
	"github.com/tomtom215/provenance/internal/models"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		criteria   string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "recommend <uri|id>",
		Short: "Rank artworks similar to a target",
		Long: `Rank the reconciled catalog against a target artwork and print the
recommendations as JSON, best first.

Criteria: artist, period, type, location, medium. Unknown names are ignored.
When --criteria is omitted the configured default criteria are used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			req := models.RecommendationRequest{
				TargetURI:  targetURI(cfg.Catalog.Namespace, args[0]),
				Criteria:   models.SplitCriteria(criteria),
				MaxResults: maxResults,
			}

			ctx := cmd.Context()
			start := time.Now()
			recs, err := svc.Recommend(ctx, req)
			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Str("target", req.TargetURI).Msg("recommendation failed")
				return err
			}

			logging.Ctx(ctx).Info().
				Str("target", req.TargetURI).
				Int("results", len(recs)).
				Dur("duration", time.Since(start)).
				Msg("recommendations ranked")
			return writeJSON(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVar(&criteria, "criteria", "", "Comma-separated criteria (default from config)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum recommendations (default from config)")
	return cmd
}

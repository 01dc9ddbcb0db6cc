// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/provenance/internal/catalog"
	"github.com/tomtom215/provenance/internal/logging"
	"github.com/tomtom215/provenance/internal/models"
)

// listFlags are the reconcile flags that switch output to a filtered listing.
var listFlags = []string{"artist", "location", "type", "medium", "max"}

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	var (
		limit    int
		filter   catalog.Filter
		typeName string
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Print the reconciled catalog as JSON",
		Long: `Read the bulk rows, merge them into one artwork per identity and print the
artworks in first-seen order.

With any of --artist, --location, --type, --medium or --max the output is a
filtered listing of at most --max artworks (default 20, at most 100).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				cfg.Catalog.QueryLimit = limit
			}
			if typeName != "" {
				t, ok := models.ParseArtworkType(typeName)
				if !ok {
					return fmt.Errorf("unknown artwork type %q", typeName)
				}
				filter.Type = &t
			}

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if !anyChanged(cmd, listFlags) {
				reconciled, err := svc.Reconcile(ctx)
				if err != nil {
					logging.Ctx(ctx).Error().Err(err).Msg("reconcile failed")
					return err
				}
				logging.Ctx(ctx).Info().Int("artworks", reconciled.Len()).Msg("catalog reconciled")
				return writeJSON(cmd.OutOrStdout(), reconciled.Artworks())
			}

			artworks, err := svc.List(ctx, filter)
			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Msg("listing failed")
				return err
			}
			logging.Ctx(ctx).Info().Int("artworks", len(artworks)).Msg("catalog listed")
			return writeJSON(cmd.OutOrStdout(), artworks)
		},
	}

	f := cmd.Flags()
	f.IntVar(&limit, "limit", 0, "Maximum bulk rows to read (0 = no limit; default from config)")
	f.StringVar(&filter.ArtistURI, "artist", "", "Only artworks by this artist URI")
	f.StringVar(&filter.LocationURI, "location", "", "Only artworks at this location URI")
	f.StringVar(&typeName, "type", "", "Only artworks of this type (painting, sculpture, drawing, photograph, print, textile, ceramic, other)")
	f.StringVar(&filter.Medium, "medium", "", "Only artworks with this medium label (case-insensitive)")
	f.IntVar(&filter.Limit, "max", catalog.DefaultListLimit, "Maximum artworks to list (1-100)")
	return cmd
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

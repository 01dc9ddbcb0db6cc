// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package main

import (
	"github.com/spf13/cobra"
)

func newArtworkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "artwork <uri|id>",
		Short: "Print one reconciled artwork as JSON",
		Long: `Resolve an artwork from the bulk rows, falling back to the records file,
and print it. A bare identifier is expanded with the catalog namespace.`,
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

			art, err := svc.Artwork(cmd.Context(), targetURI(cfg.Catalog.Namespace, args[0]))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), art)
		},
	}
}

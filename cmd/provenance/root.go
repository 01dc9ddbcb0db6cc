// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/provenance/internal/config"
	"github.com/tomtom215/provenance/internal/logging"
)

// rootOptions holds flags shared by every subcommand. Non-empty values
// override the loaded configuration.
type rootOptions struct {
	configPath  string
	resultsFile string
	recordsFile string
	namespace   string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "provenance",
		Short: "Reconcile heritage catalog records and recommend similar artworks",
		Long: `provenance turns graph-store query results into one canonical record per
artwork and ranks artworks similar to a target by artist, period, type,
location and medium.

Bulk rows are read from a SPARQL JSON results document (--results). Targets
missing from the bulk rows are looked up in a JSON records file (--records).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(logging.ContextWithNewCorrelationID(cmd.Context()))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: config.yaml or $CONFIG_PATH)")
	flags.StringVar(&opts.resultsFile, "results", "", "SPARQL JSON results file with bulk artwork rows")
	flags.StringVar(&opts.recordsFile, "records", "", "JSON file of single-artwork records for target lookup")
	flags.StringVar(&opts.namespace, "namespace", "", "Local catalog URI prefix")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (json, console)")

	cmd.AddCommand(
		newReconcileCmd(opts),
		newArtworkCmd(opts),
		newRecommendCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// load reads configuration, applies flag overrides and initializes logging.
func (o *rootOptions) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrideString(&cfg.Catalog.ResultsFile, o.resultsFile)
	overrideString(&cfg.Catalog.RecordsFile, o.recordsFile)
	overrideString(&cfg.Catalog.Namespace, o.namespace)
	overrideString(&cfg.Logging.Level, o.logLevel)
	overrideString(&cfg.Logging.Format, o.logFormat)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Init(cfg.LoggingOptions())
	return cfg, nil
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

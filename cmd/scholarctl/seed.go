package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/bootstrap"
	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/config"
	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/recommend"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the stored catalog with the built-in scholarship list",
	Long: "Connects to the catalog store configured by the server environment " +
		"(CATALOG_BACKEND, DATABASE_URL, MONGO_URI, ...) and replaces its contents. " +
		"Running it twice leaves the same catalog behind.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		defer func() { _ = logger.Sync() }()

		cfg := config.Load()
		stores, err := bootstrap.Build(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer stores.Close()

		source, err := catalog.Load()
		if err != nil {
			return err
		}
		n, err := recommend.NewService(stores.Repo, matching.NewScorer(nil), source).Seed(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("catalog seeded", zap.String("backend", cfg.CatalogBackend), zap.Int("count", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d scholarships into the %s store.\n", n, cfg.CatalogBackend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/scholarship/pkg/browse"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scholarship catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		defer func() { _ = logger.Sync() }()

		favs, err := openFavorites()
		if err != nil {
			return err
		}
		now := time.Now()
		q, err := browseQuery(cmd, favs.Set(), now)
		if err != nil {
			return err
		}
		cat, err := newClient(logger).FetchScholarships(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if cat.Local {
			fmt.Fprintln(out, "API unavailable, showing the built-in catalog.")
		}
		return render(out, plainRows(browse.Apply(cat.Items, q)), favs.Contains, now)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addBrowseFlags(listCmd, browse.SortRelevance)
}

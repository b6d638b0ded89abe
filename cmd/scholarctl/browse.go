package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/scholarship/pkg/browse"
)

func addBrowseFlags(cmd *cobra.Command, defaultSort string) {
	cmd.Flags().String("sort", defaultSort, "order: relevance, amount, deadline")
	cmd.Flags().String("amount", browse.AmountAll, "amount filter: all, small, medium, large, very-large")
	cmd.Flags().String("deadline", browse.DeadlineAll, "deadline filter: all, urgent, upcoming, future")
	cmd.Flags().Bool("favorites-only", false, "show only favorites")
}

func browseQuery(cmd *cobra.Command, fav map[string]struct{}, now time.Time) (browse.Query, error) {
	f := cmd.Flags()
	sortBy, _ := f.GetString("sort")
	amount, _ := f.GetString("amount")
	deadline, _ := f.GetString("deadline")
	favOnly, _ := f.GetBool("favorites-only")
	q := browse.Query{
		Amount:        amount,
		Deadline:      deadline,
		Sort:          sortBy,
		FavoritesOnly: favOnly,
		Favorites:     fav,
		Now:           now,
	}
	return q, q.Validate()
}

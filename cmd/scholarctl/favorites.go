package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/nlp"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite scholarships",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print favorite scholarship names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		favs, err := openFavorites()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		names := favs.Names()
		if len(names) == 0 {
			fmt.Fprintln(out, "No favorites yet.")
			return nil
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Mark scholarships as favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favs, err := openFavorites()
		if err != nil {
			return err
		}
		for _, name := range args {
			if err := favs.Add(canonicalName(name)); err != nil {
				return err
			}
		}
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove NAME...",
	Short: "Unmark favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favs, err := openFavorites()
		if err != nil {
			return err
		}
		for _, name := range args {
			if err := favs.Remove(canonicalName(name)); err != nil {
				return err
			}
		}
		return nil
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle NAME",
	Short: "Flip the favorite flag of a scholarship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favs, err := openFavorites()
		if err != nil {
			return err
		}
		name := canonicalName(args[0])
		on, err := favs.Toggle(name)
		if err != nil {
			return err
		}
		state := "removed from"
		if on {
			state = "added to"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%q %s favorites\n", name, state)
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesToggleCmd)
	rootCmd.AddCommand(favoritesCmd)
}

// canonicalName maps loosely typed input to the catalog spelling of a
// record name. Unknown names are kept as typed.
func canonicalName(name string) string {
	name = strings.TrimSpace(name)
	items, err := catalog.Load()
	if err != nil {
		return name
	}
	for _, it := range items {
		if nlp.SameName(it.Name, name) {
			return it.Name
		}
	}
	return name
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/scholarship/pkg/browse"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Fill in a profile and list matching scholarships, best first",
	Args:  cobra.NoArgs,
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("profile", "p", "", "read the profile from a YAML file instead of prompting")
	addBrowseFlags(matchCmd, browse.SortRelevance)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
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

	var profile scholarship.Profile
	if path, _ := cmd.Flags().GetString("profile"); path != "" {
		profile, err = readProfile(path)
	} else {
		profile, err = collectProfile(terminal{})
	}
	if err != nil {
		return err
	}
	logger.Debug("profile collected", zap.String("field", profile.FieldOfStudy), zap.Strings("interests", profile.Interests))

	c := newClient(logger)
	cat, err := c.FetchScholarships(ctx)
	if err != nil {
		return err
	}
	res, err := c.Match(ctx, profile, cat.Items)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Local {
		fmt.Fprintln(out, "Matched offline against the built-in catalog.")
	}
	items := browse.Apply(res.Items, q)
	fmt.Fprintf(out, "%d of %d matching scholarships\n", len(items), len(res.Items))
	return render(out, scoredRows(items), favs.Contains, now)
}

func readProfile(path string) (scholarship.Profile, error) {
	var p scholarship.Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return p, nil
}

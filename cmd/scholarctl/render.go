package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/artem13815/scholarship/pkg/format"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

const (
	favoriteMark = "*"
	noLink       = "-"
)

type row struct {
	rec   scholarship.Scholarship
	score *float64
}

func scoredRows(items []scholarship.Scored) []row {
	rows := make([]row, len(items))
	for i := range items {
		s := items[i].RelevanceScore
		rows[i] = row{rec: items[i].Scholarship, score: &s}
	}
	return rows
}

func plainRows(items []scholarship.Scholarship) []row {
	rows := make([]row, len(items))
	for i := range items {
		rows[i] = row{rec: items[i]}
	}
	return rows
}

// render prints rows as an aligned table. The score column appears only
// for ranked results. isFavorite may be nil.
func render(w io.Writer, rows []row, isFavorite func(name string) bool, now time.Time) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No scholarships found.")
		return err
	}
	ranked := rows[0].score != nil

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"", "#", "NAME", "AMOUNT", "DEADLINE", "SOURCE", "LINK"}
	if ranked {
		header = []string{"", "#", "MATCH", "NAME", "AMOUNT", "DEADLINE", "SOURCE", "LINK"}
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, r := range rows {
		mark := ""
		if isFavorite != nil && isFavorite(r.rec.Name) {
			mark = favoriteMark
		}
		deadline := format.FormatDeadline(r.rec.Deadline, now)
		link := r.rec.Link
		if link == "" {
			link = noLink
		}
		cols := []string{mark, fmt.Sprint(i + 1)}
		if ranked {
			cols = append(cols, fmt.Sprintf("%.0f%%", *r.score))
		}
		cols = append(cols, r.rec.Name, format.DisplayAmount(r.rec.Amount), deadline.Text, r.rec.Source, link)
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	return tw.Flush()
}

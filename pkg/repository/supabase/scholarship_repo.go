package supabase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	supabase "github.com/nedpals/supabase-go"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

const table = "scholarships"

type row struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Deadline    string `json:"deadline"`
	Link        string `json:"link,omitempty"`
	Source      string `json:"source"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
}

// ScholarshipRepository keeps the catalog in a Supabase table with the same
// columns as the postgres migration.
type ScholarshipRepository struct {
	client *supabase.Client
}

func NewScholarshipRepository(url, key string) (*ScholarshipRepository, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("supabase URL and key must be provided")
	}
	return &ScholarshipRepository{client: supabase.CreateClient(url, key)}, nil
}

// ListAll ignores ctx: the SDK does not take one.
func (r *ScholarshipRepository) ListAll(ctx context.Context) ([]scholarship.Scholarship, error) {
	var rows []row
	if err := r.client.DB.From(table).Select("*").Execute(&rows); err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	res := make([]scholarship.Scholarship, 0, len(rows))
	for _, rw := range rows {
		s := scholarship.Scholarship{
			Name:        rw.Name,
			Amount:      rw.Amount,
			Deadline:    rw.Deadline,
			Link:        rw.Link,
			Source:      rw.Source,
			Description: rw.Description,
			Eligibility: rw.Eligibility,
		}
		if id, err := uuid.Parse(rw.ID); err == nil {
			s.ID = id
		}
		res = append(res, s.WithID())
	}
	return res, nil
}

// ReplaceAll clears the table and inserts items in one batch.
func (r *ScholarshipRepository) ReplaceAll(ctx context.Context, items []scholarship.Scholarship) error {
	var deleted []row
	// PostgREST refuses an unfiltered DELETE; the nil uuid never exists.
	if err := r.client.DB.From(table).Delete().Neq("id", uuid.Nil.String()).Execute(&deleted); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	rows := make([]row, 0, len(items))
	for i, it := range items {
		it = it.WithID()
		rows = append(rows, row{
			ID:          it.ID.String(),
			Position:    i,
			Name:        it.Name,
			Amount:      it.Amount,
			Deadline:    it.Deadline,
			Link:        it.Link,
			Source:      it.Source,
			Description: it.Description,
			Eligibility: it.Eligibility,
		})
	}
	var inserted []row
	if err := r.client.DB.From(table).Insert(rows).Execute(&inserted); err != nil {
		return fmt.Errorf("insert rows: %w", err)
	}
	return nil
}

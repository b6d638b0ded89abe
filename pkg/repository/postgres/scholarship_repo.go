package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/scholarship/pkg/scholarship"
	"github.com/artem13815/scholarship/pkg/storage/postgres"
)

// ScholarshipRepository keeps the catalog in the scholarships table.
type ScholarshipRepository struct {
	pool *pgxpool.Pool
}

// NewScholarshipRepository applies migrations before returning.
func NewScholarshipRepository(ctx context.Context, pool *pgxpool.Pool) (*ScholarshipRepository, error) {
	if err := postgres.Migrate(ctx, pool); err != nil {
		return nil, err
	}
	return &ScholarshipRepository{pool: pool}, nil
}

func (r *ScholarshipRepository) ListAll(ctx context.Context) ([]scholarship.Scholarship, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, amount, deadline, COALESCE(link, ''), source, description, eligibility
FROM scholarships
ORDER BY position
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []scholarship.Scholarship{}
	for rows.Next() {
		var s scholarship.Scholarship
		if err := rows.Scan(&s.ID, &s.Name, &s.Amount, &s.Deadline, &s.Link, &s.Source, &s.Description, &s.Eligibility); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// ReplaceAll swaps the catalog in a single transaction so readers see
// either the old or the new list.
func (r *ScholarshipRepository) ReplaceAll(ctx context.Context, items []scholarship.Scholarship) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM scholarships`); err != nil {
		return err
	}
	if len(items) == 0 {
		return tx.Commit(ctx)
	}
	batch := &pgx.Batch{}
	for i, it := range items {
		it = it.WithID()
		batch.Queue(`
INSERT INTO scholarships (id, position, name, amount, deadline, link, source, description, eligibility)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
`, it.ID, i, it.Name, it.Amount, it.Deadline, it.Link, it.Source, it.Description, it.Eligibility)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert scholarships: %w", err)
	}
	return tx.Commit(ctx)
}

package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

// Repository persists transformation samples in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Series returns a member's samples in capture order.
func (r *Repository) Series(ctx context.Context, memberID int64) ([]metrics.Sample, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT month, weight, fat, muscle FROM transformations WHERE member_id = $1 ORDER BY id`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []metrics.Sample
	for rows.Next() {
		var s metrics.Sample
		if err := rows.Scan(&s.Month, &s.Weight, &s.Fat, &s.Muscle); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Insert appends one sample to a member's history.
func (r *Repository) Insert(ctx context.Context, memberID int64, s metrics.Sample) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO transformations (member_id, month, weight, fat, muscle) VALUES ($1, $2, $3, $4, $5)`,
		memberID, s.Month, s.Weight, s.Fat, s.Muscle)
	return err
}

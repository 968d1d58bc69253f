package leads

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for the lead inbox.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns the inbox, newest first.
func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, source, area, status, campaign_ref FROM leads ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Phone, &l.Source, &l.Area, &l.Status, &l.CampaignRef); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Insert stores one lead and returns its id.
func (r *Repository) Insert(ctx context.Context, l Lead) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO leads (name, phone, source, area, status, campaign_ref) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		l.Name, l.Phone, l.Source, l.Area, l.Status, l.CampaignRef).Scan(&id)
	return id, err
}

package equipment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for the fleet.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanUnit(row pgx.Row) (Unit, error) {
	var u Unit
	err := row.Scan(&u.ID, &u.Name, &u.UsageHours, &u.MaxHours, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Unit{}, ErrNotFound
	}
	return u, err
}

// List returns the fleet in insertion order.
func (r *Repository) List(ctx context.Context) ([]Unit, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, usage_hours, max_hours, status FROM equipment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Get loads one unit.
func (r *Repository) Get(ctx context.Context, id int64) (Unit, error) {
	return scanUnit(r.pool.QueryRow(ctx, `SELECT id, name, usage_hours, max_hours, status FROM equipment WHERE id = $1`, id))
}

// Create inserts a new unit and returns its id.
func (r *Repository) Create(ctx context.Context, u Unit) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO equipment (name, usage_hours, max_hours, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Name, u.UsageHours, u.MaxHours, u.Status).Scan(&id)
	return id, err
}

// SetUsage overwrites the usage counter and status label.
func (r *Repository) SetUsage(ctx context.Context, id int64, hours float64, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE equipment SET usage_hours = $2, status = $3 WHERE id = $1`, id, hours, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for stock lines.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanItem(row pgx.Row) (Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Name, &it.Stock, &it.Price, &it.Threshold)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrNotFound
	}
	return it, err
}

// List returns every stock line in insertion order.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, stock, price, threshold FROM inventory ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Get loads one stock line.
func (r *Repository) Get(ctx context.Context, id int64) (Item, error) {
	return scanItem(r.pool.QueryRow(ctx, `SELECT id, name, stock, price, threshold FROM inventory WHERE id = $1`, id))
}

// Create inserts a new stock line and returns its id.
func (r *Repository) Create(ctx context.Context, it Item) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO inventory (name, stock, price, threshold) VALUES ($1, $2, $3, $4) RETURNING id`,
		it.Name, it.Stock, it.Price, it.Threshold).Scan(&id)
	return id, err
}

// AdjustStock moves the stock level by delta and returns the new level.
func (r *Repository) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	var stock int
	err := r.pool.QueryRow(ctx,
		`UPDATE inventory SET stock = stock + $2 WHERE id = $1 RETURNING stock`, id, delta).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return stock, err
}

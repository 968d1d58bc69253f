package finance

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

// Repository provides PostgreSQL backed persistence for the ledger.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Snapshot loads both ledger sides in insertion order.
func (r *Repository) Snapshot(ctx context.Context) (Snapshot, error) {
	rows, err := r.pool.Query(ctx, `SELECT type, category, amount FROM transactions ORDER BY id`)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	snap := Snapshot{
		Revenue:  []metrics.LedgerEntry{},
		Expenses: []metrics.LedgerEntry{},
	}
	for rows.Next() {
		var typ EntryType
		var entry metrics.LedgerEntry
		if err := rows.Scan(&typ, &entry.Category, &entry.Amount); err != nil {
			return Snapshot{}, err
		}
		switch typ {
		case EntryRevenue:
			snap.Revenue = append(snap.Revenue, entry)
		case EntryExpense:
			snap.Expenses = append(snap.Expenses, entry)
		}
	}
	return snap, rows.Err()
}

// Insert appends one ledger line.
func (r *Repository) Insert(ctx context.Context, entry Entry) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (type, category, amount) VALUES ($1, $2, $3) RETURNING id`,
		entry.Type, entry.Category, entry.Amount).Scan(&id)
	return id, err
}

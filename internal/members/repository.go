package members

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for the registry.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const memberColumns = `id, name, mobile, email, weight, height, address, plan_name, amount_paid, sub_expiry, last_seen_days, is_present_today, status`

func scanMember(row pgx.Row) (Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.Name, &m.Mobile, &m.Email, &m.Weight, &m.Height, &m.Address,
		&m.PlanName, &m.AmountPaid, &m.SubExpiry, &m.LastSeenDays, &m.PresentToday, &m.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	return m, err
}

// List returns the whole registry in registration order.
func (r *Repository) List(ctx context.Context) ([]Member, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Get loads one member.
func (r *Repository) Get(ctx context.Context, id int64) (Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id))
}

// Create inserts a new member and returns its id.
func (r *Repository) Create(ctx context.Context, m Member) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO members (name, mobile, email, weight, height, address, plan_name, amount_paid, sub_expiry, last_seen_days, is_present_today, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, FALSE, $10) RETURNING id`,
		m.Name, m.Mobile, m.Email, m.Weight, m.Height, m.Address, m.PlanName, m.AmountPaid, m.SubExpiry, m.Status).Scan(&id)
	return id, err
}

// Delete removes a member.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAttendance flags the member present and resets the absence counter.
// A non-nil weight also updates the master profile.
func (r *Repository) MarkAttendance(ctx context.Context, id int64, weight *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE members SET is_present_today = TRUE, last_seen_days = 0, weight = COALESCE($2, weight) WHERE id = $1`,
		id, weight)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRenewal moves the subscription expiry forward.
func (r *Repository) SetRenewal(ctx context.Context, id int64, expiry string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE members SET sub_expiry = $2 WHERE id = $1`, id, expiry)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkNudged tags every member absent for strictly more than days with
// the given status and returns how many were touched.
func (r *Repository) MarkNudged(ctx context.Context, days int, status Status) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE members SET status = $2 WHERE last_seen_days > $1`, days, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

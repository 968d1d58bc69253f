package staff

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for the roster.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns the roster in hiring order.
func (r *Repository) List(ctx context.Context) ([]StaffMember, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, role, base_salary, pt_commissions FROM staff ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StaffMember
	for rows.Next() {
		var m StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.BaseSalary, &m.PTCommissions); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Create inserts a new staff member and returns their id.
func (r *Repository) Create(ctx context.Context, m StaffMember) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO staff (name, role, base_salary, pt_commissions) VALUES ($1, $2, $3, 0) RETURNING id`,
		m.Name, m.Role, m.BaseSalary).Scan(&id)
	return id, err
}

// CreditCommission adds a PT commission to one staff member.
func (r *Repository) CreditCommission(ctx context.Context, id int64, amount float64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE staff SET pt_commissions = pt_commissions + $2 WHERE id = $1`, id, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetCommissions zeroes every accumulated commission after a payroll
// run.
func (r *Repository) ResetCommissions(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `UPDATE staff SET pt_commissions = 0`)
	return err
}

// Delete removes a staff member.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Package staff manages the trainer roster and the monthly payroll run.
package staff

import (
	"fmt"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// StaffMember is one roster row. PTCommissions accumulates between
// payroll runs and resets to zero when one executes.
type StaffMember struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	BaseSalary    float64 `json:"base_salary"`
	PTCommissions float64 `json:"pt_commissions"`
}

// PayrollReceipt summarises one executed payroll run.
type PayrollReceipt struct {
	Period    string  `json:"period"`
	Total     float64 `json:"total"`
	Headcount int     `json:"headcount"`
	Message   string  `json:"message"`
}

var (
	// ErrNotFound indicates the staff member does not exist.
	ErrNotFound = fmt.Errorf("staff: member %w", httpx.ErrNotFound)
	// ErrEmptyRoster indicates a payroll run with nobody to pay.
	ErrEmptyRoster = fmt.Errorf("staff: empty roster: %w", httpx.ErrConflict)
)

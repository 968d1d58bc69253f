// Package finance keeps the revenue/expense ledger every other module
// posts into, and derives the tracker view from it.
package finance

import (
	"fmt"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// EntryType separates the two sides of the ledger.
type EntryType string

const (
	EntryRevenue EntryType = "revenue"
	EntryExpense EntryType = "expense"
)

// Entry is one ledger line.
type Entry struct {
	ID       int64     `json:"id"`
	Type     EntryType `json:"type"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
}

// Snapshot groups the ledger by side, ready for aggregation.
type Snapshot struct {
	Revenue  []metrics.LedgerEntry `json:"revenue"`
	Expenses []metrics.LedgerEntry `json:"expenses"`
}

// ExpenseBreakdown is one expense category with its share of total spend.
type ExpenseBreakdown struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	SharePct float64 `json:"share_pct"`
}

// LedgerLine is one row of the combined recent-transactions view.
type LedgerLine struct {
	Type     EntryType `json:"type"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
}

// Tracker is the full finance view: raw snapshot plus derived figures.
type Tracker struct {
	Revenue   []metrics.LedgerEntry    `json:"revenue"`
	Expenses  []metrics.LedgerEntry    `json:"expenses"`
	Summary   metrics.FinancialSummary `json:"summary"`
	Breakdown []ExpenseBreakdown       `json:"breakdown"`
	Ledger    []LedgerLine             `json:"ledger"`
}

// ErrInvalidAmount indicates a non-positive ledger amount.
var ErrInvalidAmount = fmt.Errorf("finance: amount must be positive: %w", httpx.ErrValidation)

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeFinance(t *testing.T) {
	revenue := []LedgerEntry{{Category: "Initial Memberships", Amount: 1000}}
	expenses := []LedgerEntry{{Category: "Rent", Amount: 400}}

	s := SummarizeFinance(revenue, expenses)
	require.Equal(t, 1000.0, s.TotalRevenue)
	require.Equal(t, 400.0, s.TotalExpense)
	require.Equal(t, 600.0, s.NetProfit)
	require.InDelta(t, 60.0, s.MarginPct, 1e-9)
}

func TestSummarizeFinanceZeroRevenue(t *testing.T) {
	s := SummarizeFinance(nil, []LedgerEntry{{Category: "Rent", Amount: 400}})
	require.Equal(t, 0.0, s.MarginPct, "margin must be defined as zero, never NaN")
	require.Equal(t, -400.0, s.NetProfit)
}

func TestExpenseShare(t *testing.T) {
	require.InDelta(t, 25.0, ExpenseShare(100, 400), 1e-9)
	require.Equal(t, 0.0, ExpenseShare(100, 0), "zero total spend yields zero share")
}

func TestTotalPayroll(t *testing.T) {
	roster := []Payslip{
		{BaseSalary: 30000, PTCommissions: 5000},
		{BaseSalary: 20000, PTCommissions: 0},
	}
	require.Equal(t, 35000.0, roster[0].TotalDue())
	require.Equal(t, 55000.0, TotalPayroll(roster))
	require.Equal(t, 0.0, TotalPayroll(nil))
}

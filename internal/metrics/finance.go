package metrics

// LedgerEntry is one revenue or expense line from the finance ledger.
type LedgerEntry struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// FinancialSummary holds the reduced view of a ledger snapshot. Values are
// unrounded; rounding happens at presentation so repeated aggregation does
// not compound error.
type FinancialSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
	MarginPct    float64 `json:"margin_pct"`
}

// SummarizeFinance reduces the revenue and expense collections into
// totals, net profit and margin. Margin is defined as zero when revenue
// is zero so empty books never surface NaN to a caller.
func SummarizeFinance(revenue, expenses []LedgerEntry) FinancialSummary {
	var s FinancialSummary
	for _, e := range revenue {
		s.TotalRevenue += e.Amount
	}
	for _, e := range expenses {
		s.TotalExpense += e.Amount
	}
	s.NetProfit = s.TotalRevenue - s.TotalExpense
	if s.TotalRevenue > 0 {
		s.MarginPct = s.NetProfit / s.TotalRevenue * 100
	}
	return s
}

// ExpenseShare returns an entry amount's percentage of the total spend,
// zero when nothing has been spent yet.
func ExpenseShare(amount, totalExpense float64) float64 {
	if totalExpense <= 0 {
		return 0
	}
	return amount / totalExpense * 100
}

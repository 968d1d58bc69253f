package metrics

// Payslip is the compensation slice of one staff member.
type Payslip struct {
	BaseSalary    float64
	PTCommissions float64
}

// TotalDue is the employee's payout for the cycle: base plus personal
// training commissions. Proration and tax are handled by the external
// payroll processor, not here.
func (p Payslip) TotalDue() float64 {
	return p.BaseSalary + p.PTCommissions
}

// TotalPayroll sums the dues across a roster.
func TotalPayroll(roster []Payslip) float64 {
	var total float64
	for _, p := range roster {
		total += p.TotalDue()
	}
	return total
}

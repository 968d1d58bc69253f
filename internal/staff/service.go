package staff

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
)

// payrollPeriodLayout names the payroll expense line, e.g. "March 2025".
const payrollPeriodLayout = "January 2006"

// RepositoryPort abstracts roster persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]StaffMember, error)
	Create(ctx context.Context, m StaffMember) (int64, error)
	CreditCommission(ctx context.Context, id int64, amount float64) error
	ResetCommissions(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
}

// LedgerPort posts payroll costs to the finance module.
type LedgerPort interface {
	RecordExpense(ctx context.Context, category string, amount float64) error
}

// AuditPort records mutations.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates the roster and payroll runs.
type Service struct {
	repo    RepositoryPort
	ledger  LedgerPort
	audit   AuditPort
	now     func() time.Time
	printer *message.Printer
}

// NewService builds a Service.
func NewService(repo RepositoryPort, ledger LedgerPort, audit AuditPort) *Service {
	return &Service{
		repo:    repo,
		ledger:  ledger,
		audit:   audit,
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// List returns the roster.
func (s *Service) List(ctx context.Context) ([]StaffMember, error) {
	return s.repo.List(ctx)
}

// Hire adds a staff member with a clean commission slate.
func (s *Service) Hire(ctx context.Context, name, role string, baseSalary float64) (StaffMember, error) {
	m := StaffMember{Name: name, Role: role, BaseSalary: baseSalary}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return StaffMember{}, err
	}
	m.ID = id
	s.recordAudit(ctx, "hire", id, map[string]any{"name": name, "role": role})
	return m, nil
}

// CreditCommission adds a PT commission to one trainer, paid out at the
// next payroll run.
func (s *Service) CreditCommission(ctx context.Context, id int64, amount float64) error {
	if err := s.repo.CreditCommission(ctx, id, amount); err != nil {
		return err
	}
	s.recordAudit(ctx, "commission", id, map[string]any{"amount": amount})
	return nil
}

// Remove deletes a staff member from the roster.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, "remove", id, nil)
	return nil
}

// ExecutePayroll pays the whole roster: base salaries plus accumulated
// commissions. The total is booked as a single expense named after the
// period and every commission counter resets.
func (s *Service) ExecutePayroll(ctx context.Context) (PayrollReceipt, error) {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return PayrollReceipt{}, err
	}
	if len(roster) == 0 {
		return PayrollReceipt{}, ErrEmptyRoster
	}

	slips := make([]metrics.Payslip, 0, len(roster))
	for _, m := range roster {
		slips = append(slips, metrics.Payslip{BaseSalary: m.BaseSalary, PTCommissions: m.PTCommissions})
	}
	total := metrics.TotalPayroll(slips)

	period := s.now().Format(payrollPeriodLayout)
	if err := s.ledger.RecordExpense(ctx, "Payroll Execution: "+period, total); err != nil {
		return PayrollReceipt{}, err
	}
	if err := s.repo.ResetCommissions(ctx); err != nil {
		return PayrollReceipt{}, err
	}

	s.recordAudit(ctx, "payroll", 0, map[string]any{"period": period, "total": total})
	return PayrollReceipt{
		Period:    period,
		Total:     total,
		Headcount: len(roster),
		Message:   s.printer.Sprintf("Payroll executed. ₹%v paid to %d staff.", number.Decimal(total), len(roster)),
	}, nil
}

func (s *Service) recordAudit(ctx context.Context, action string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   "staff",
		EntityID: strconv.FormatInt(id, 10),
		Meta:     meta,
	})
}

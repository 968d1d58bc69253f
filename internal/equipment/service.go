package equipment

import (
	"context"
	"strconv"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
)

// defaultUsageHours is logged when a usage report carries no figure; one
// shift of continuous use is the floor staff's rule of thumb.
const defaultUsageHours = 50

// RepositoryPort abstracts fleet persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Unit, error)
	Get(ctx context.Context, id int64) (Unit, error)
	Create(ctx context.Context, u Unit) (int64, error)
	SetUsage(ctx context.Context, id int64, hours float64, status Status) error
}

// LedgerPort posts servicing costs to the finance module.
type LedgerPort interface {
	RecordExpense(ctx context.Context, category string, amount float64) error
}

// AuditPort records mutations.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates the fleet board and its maintenance lifecycle.
type Service struct {
	repo        RepositoryPort
	ledger      LedgerPort
	audit       AuditPort
	serviceCost float64
}

// NewService builds a Service. serviceCost is the flat charge booked when
// a unit is serviced.
func NewService(repo RepositoryPort, ledger LedgerPort, audit AuditPort, serviceCost float64) *Service {
	return &Service{repo: repo, ledger: ledger, audit: audit, serviceCost: serviceCost}
}

// List returns the fleet with derived utilization tiers.
func (s *Service) List(ctx context.Context) ([]View, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(units))
	for _, u := range units {
		views = append(views, View{
			Unit: u,
			Tier: metrics.ClassifyUtilization(u.UsageHours, u.MaxHours),
		})
	}
	return views, nil
}

// Add registers a new unit with a clean usage counter.
func (s *Service) Add(ctx context.Context, name string, maxHours float64) (Unit, error) {
	u := Unit{Name: name, UsageHours: 0, MaxHours: maxHours, Status: StatusOptimal}
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return Unit{}, err
	}
	u.ID = id
	s.recordAudit(ctx, "add_unit", id, map[string]any{"name": name, "max_hours": maxHours})
	return u, nil
}

// LogUsage adds hours to a unit's counter and regrades its status. A nil
// hours reading logs the default block.
func (s *Service) LogUsage(ctx context.Context, id int64, hours *float64) (View, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}

	delta := float64(defaultUsageHours)
	if hours != nil {
		delta = *hours
	}
	u.UsageHours += delta

	tier := metrics.ClassifyUtilization(u.UsageHours, u.MaxHours)
	u.Status = StatusFor(tier)
	if err := s.repo.SetUsage(ctx, id, u.UsageHours, u.Status); err != nil {
		return View{}, err
	}

	s.recordAudit(ctx, "log_usage", id, map[string]any{"hours": delta, "status": u.Status})
	return View{Unit: u, Tier: tier}, nil
}

// MarkServiced resets the usage counter after maintenance and books the
// servicing cost as an expense.
func (s *Service) MarkServiced(ctx context.Context, id int64) (View, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}

	u.UsageHours = 0
	u.Status = StatusOptimal
	if err := s.repo.SetUsage(ctx, id, 0, StatusOptimal); err != nil {
		return View{}, err
	}
	if err := s.ledger.RecordExpense(ctx, "Service: "+u.Name, s.serviceCost); err != nil {
		return View{}, err
	}

	s.recordAudit(ctx, "service", id, map[string]any{"cost": s.serviceCost})
	return View{Unit: u, Tier: metrics.TierNominal}, nil
}

func (s *Service) recordAudit(ctx context.Context, action string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   "equipment",
		EntityID: strconv.FormatInt(id, 10),
		Meta:     meta,
	})
}

package inventory

import (
	"context"
	"strconv"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
)

// RepositoryPort abstracts stock persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Create(ctx context.Context, it Item) (int64, error)
	AdjustStock(ctx context.Context, id int64, delta int) (int, error)
}

// LedgerPort posts sale revenue to the finance module.
type LedgerPort interface {
	RecordRevenue(ctx context.Context, category string, amount float64) error
}

// AuditPort records mutations.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates stock movements and sale bookkeeping.
type Service struct {
	repo   RepositoryPort
	ledger LedgerPort
	audit  AuditPort
}

// NewService builds a Service.
func NewService(repo RepositoryPort, ledger LedgerPort, audit AuditPort) *Service {
	return &Service{repo: repo, ledger: ledger, audit: audit}
}

// List returns every stock line with its reorder flag.
func (s *Service) List(ctx context.Context) ([]View, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(items))
	for _, it := range items {
		views = append(views, View{
			Item:     it,
			LowStock: metrics.LowStock(it.Stock, it.Threshold),
		})
	}
	return views, nil
}

// Add registers a new stock line.
func (s *Service) Add(ctx context.Context, it Item) (Item, error) {
	id, err := s.repo.Create(ctx, it)
	if err != nil {
		return Item{}, err
	}
	it.ID = id
	s.recordAudit(ctx, "add_item", id, map[string]any{"name": it.Name, "stock": it.Stock})
	return it, nil
}

// UpdateStock applies one stock action to an item. A sale checks the
// shelf first, moves one unit out and books the list price as revenue.
func (s *Service) UpdateStock(ctx context.Context, id int64, action StockAction) (View, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}

	switch action {
	case ActionAdd:
		it.Stock, err = s.repo.AdjustStock(ctx, id, 1)
		if err != nil {
			return View{}, err
		}
	case ActionSell:
		if it.Stock <= 0 {
			return View{}, ErrOutOfStock
		}
		it.Stock, err = s.repo.AdjustStock(ctx, id, -1)
		if err != nil {
			return View{}, err
		}
		if err := s.ledger.RecordRevenue(ctx, "Sale: "+it.Name, it.Price); err != nil {
			return View{}, err
		}
	default:
		return View{}, ErrUnknownAction
	}

	s.recordAudit(ctx, string(action), id, map[string]any{"stock": it.Stock})
	return View{Item: it, LowStock: metrics.LowStock(it.Stock, it.Threshold)}, nil
}

func (s *Service) recordAudit(ctx context.Context, action string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   "inventory",
		EntityID: strconv.FormatInt(id, 10),
		Meta:     meta,
	})
}

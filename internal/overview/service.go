// Package overview composes the front-desk dashboard from the other
// modules' read paths.
package overview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tathastu-fit/tathastu-erp/internal/equipment"
	"github.com/tathastu-fit/tathastu-erp/internal/inventory"
	"github.com/tathastu-fit/tathastu-erp/internal/members"
	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

// MemberSource lists members with derived health.
type MemberSource interface {
	List(ctx context.Context) ([]members.View, error)
}

// FleetSource lists equipment with derived tiers.
type FleetSource interface {
	List(ctx context.Context) ([]equipment.View, error)
}

// StockSource lists inventory with derived flags.
type StockSource interface {
	List(ctx context.Context) ([]inventory.View, error)
}

// Dashboard is the overview payload.
type Dashboard struct {
	Summary      metrics.FleetSummary `json:"summary"`
	TotalMembers int                  `json:"total_members"`
	Expiring     int                  `json:"expiring"`
	Expired      int                  `json:"expired"`
}

// Service fans out to the module read paths and folds the results into
// one summary.
type Service struct {
	members MemberSource
	fleet   FleetSource
	stock   StockSource
}

// NewService builds a Service.
func NewService(members MemberSource, fleet FleetSource, stock StockSource) *Service {
	return &Service{members: members, fleet: fleet, stock: stock}
}

// Dashboard loads the three module views concurrently and summarizes
// them. One failing source fails the whole dashboard; a partial summary
// with silently missing counts would be worse than an error.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var (
		memberViews []members.View
		fleetViews  []equipment.View
		stockViews  []inventory.View
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		memberViews, err = s.members.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		fleetViews, err = s.fleet.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stockViews, err = s.stock.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	flags := make([]metrics.MemberFlags, 0, len(memberViews))
	var expiring, expired int
	for _, v := range memberViews {
		flags = append(flags, metrics.MemberFlags{
			PresentToday: v.PresentToday,
			LastSeenDays: v.LastSeenDays,
		})
		switch v.Health.State {
		case metrics.SubscriptionExpiring:
			expiring++
		case metrics.SubscriptionExpired:
			expired++
		}
	}

	usage := make([]metrics.EquipmentUsage, 0, len(fleetViews))
	for _, v := range fleetViews {
		usage = append(usage, metrics.EquipmentUsage{UsageHours: v.UsageHours, Limit: v.MaxHours})
	}

	levels := make([]metrics.StockLevel, 0, len(stockViews))
	for _, v := range stockViews {
		levels = append(levels, metrics.StockLevel{Stock: v.Stock, Threshold: v.Threshold})
	}

	return Dashboard{
		Summary:      metrics.Summarize(flags, usage, levels),
		TotalMembers: len(memberViews),
		Expiring:     expiring,
		Expired:      expired,
	}, nil
}

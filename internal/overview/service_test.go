package overview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tathastu-fit/tathastu-erp/internal/equipment"
	"github.com/tathastu-fit/tathastu-erp/internal/inventory"
	"github.com/tathastu-fit/tathastu-erp/internal/members"
	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

type stubMembers struct {
	views []members.View
	err   error
}

func (s *stubMembers) List(ctx context.Context) ([]members.View, error) { return s.views, s.err }

type stubFleet struct {
	views []equipment.View
	err   error
}

func (s *stubFleet) List(ctx context.Context) ([]equipment.View, error) { return s.views, s.err }

type stubStock struct {
	views []inventory.View
	err   error
}

func (s *stubStock) List(ctx context.Context) ([]inventory.View, error) { return s.views, s.err }

func memberView(present bool, lastSeen int, state metrics.SubscriptionState) members.View {
	return members.View{
		Member: members.Member{PresentToday: present, LastSeenDays: lastSeen},
		Health: metrics.SubscriptionHealth{State: state},
	}
}

func TestDashboardCounts(t *testing.T) {
	membersSrc := &stubMembers{views: []members.View{
		memberView(true, 0, metrics.SubscriptionActive),
		memberView(false, 7, metrics.SubscriptionExpiring),
		memberView(false, 4, metrics.SubscriptionExpired),
		memberView(true, 5, metrics.SubscriptionActive),
	}}
	fleetSrc := &stubFleet{views: []equipment.View{
		{Unit: equipment.Unit{UsageHours: 480, MaxHours: 500}},
		{Unit: equipment.Unit{UsageHours: 100, MaxHours: 500}},
		{Unit: equipment.Unit{UsageHours: 10, MaxHours: 0}},
	}}
	stockSrc := &stubStock{views: []inventory.View{
		{Item: inventory.Item{Stock: 3, Threshold: 5}},
		{Item: inventory.Item{Stock: 14, Threshold: 5}},
		{Item: inventory.Item{Stock: 5, Threshold: 5}},
	}}

	dash, err := NewService(membersSrc, fleetSrc, stockSrc).Dashboard(context.Background())
	require.NoError(t, err)

	require.Equal(t, 4, dash.TotalMembers)
	require.Equal(t, 1, dash.Expiring)
	require.Equal(t, 1, dash.Expired)
	require.Equal(t, 2, dash.Summary.PresentToday)
	require.Equal(t, 2, dash.Summary.ChurnRisk, "strictly more than %d absent days", metrics.ChurnRiskDays)
	require.Equal(t, 2, dash.Summary.CriticalEquipment, "missing limit counts as critical")
	require.Equal(t, 2, dash.Summary.LowStock)
}

func TestDashboardFailsWhenAnySourceFails(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(
		&stubMembers{},
		&stubFleet{err: boom},
		&stubStock{},
	)
	_, err := svc.Dashboard(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestDashboardEmptyGym(t *testing.T) {
	dash, err := NewService(&stubMembers{}, &stubFleet{}, &stubStock{}).Dashboard(context.Background())
	require.NoError(t, err)
	require.Zero(t, dash.TotalMembers)
	require.Zero(t, dash.Summary.PresentToday)
	require.Zero(t, dash.Summary.LowStock)
}

package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

type memoryFleet struct {
	units  map[int64]*Unit
	nextID int64
}

func newMemoryFleet() *memoryFleet {
	return &memoryFleet{units: make(map[int64]*Unit)}
}

func (m *memoryFleet) List(ctx context.Context) ([]Unit, error) {
	out := make([]Unit, 0, len(m.units))
	for i := int64(1); i <= m.nextID; i++ {
		if u, ok := m.units[i]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memoryFleet) Get(ctx context.Context, id int64) (Unit, error) {
	u, ok := m.units[id]
	if !ok {
		return Unit{}, ErrNotFound
	}
	return *u, nil
}

func (m *memoryFleet) Create(ctx context.Context, u Unit) (int64, error) {
	m.nextID++
	u.ID = m.nextID
	m.units[u.ID] = &u
	return u.ID, nil
}

func (m *memoryFleet) SetUsage(ctx context.Context, id int64, hours float64, status Status) error {
	u, ok := m.units[id]
	if !ok {
		return ErrNotFound
	}
	u.UsageHours = hours
	u.Status = status
	return nil
}

type recordedExpense struct {
	category string
	amount   float64
}

type stubLedger struct {
	expenses []recordedExpense
}

func (l *stubLedger) RecordExpense(ctx context.Context, category string, amount float64) error {
	l.expenses = append(l.expenses, recordedExpense{category, amount})
	return nil
}

func newTestService() (*Service, *memoryFleet, *stubLedger) {
	repo := newMemoryFleet()
	ledger := &stubLedger{}
	return NewService(repo, ledger, nil, 2500), repo, ledger
}

func TestAddStartsOptimal(t *testing.T) {
	svc, _, _ := newTestService()

	u, err := svc.Add(context.Background(), "Treadmill", 500)
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Zero(t, u.UsageHours)
	require.Equal(t, StatusOptimal, u.Status)
}

func TestLogUsageDefaultBlock(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	u, _ := svc.Add(ctx, "Treadmill", 500)

	view, err := svc.LogUsage(ctx, u.ID, nil)
	require.NoError(t, err)
	require.Equal(t, 50.0, view.UsageHours)
	require.Equal(t, metrics.TierNominal, view.Tier)
	require.Equal(t, StatusOptimal, repo.units[u.ID].Status)
}

func TestLogUsageRegradesStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	u, _ := svc.Add(ctx, "Treadmill", 500)

	hours := 380.0
	view, err := svc.LogUsage(ctx, u.ID, &hours)
	require.NoError(t, err)
	require.Equal(t, metrics.TierWarning, view.Tier)
	require.Equal(t, StatusWarning, view.Status)

	view, err = svc.LogUsage(ctx, u.ID, nil)
	require.NoError(t, err)
	require.Equal(t, 430.0, view.UsageHours)
	require.Equal(t, metrics.TierWarning, view.Tier)

	hours = 50
	view, err = svc.LogUsage(ctx, u.ID, &hours)
	require.NoError(t, err)
	require.Equal(t, 480.0, view.UsageHours)
	require.Equal(t, metrics.TierCritical, view.Tier)
	require.Equal(t, StatusNeedsService, view.Status)
}

func TestMarkServicedResetsAndBooksExpense(t *testing.T) {
	svc, repo, ledger := newTestService()
	ctx := context.Background()
	u, _ := svc.Add(ctx, "Treadmill", 500)
	hours := 480.0
	_, err := svc.LogUsage(ctx, u.ID, &hours)
	require.NoError(t, err)

	view, err := svc.MarkServiced(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, view.UsageHours)
	require.Equal(t, StatusOptimal, view.Status)
	require.Equal(t, metrics.TierNominal, view.Tier)
	require.Zero(t, repo.units[u.ID].UsageHours)
	require.Len(t, ledger.expenses, 1)
	require.Equal(t, "Service: Treadmill", ledger.expenses[0].category)
	require.Equal(t, 2500.0, ledger.expenses[0].amount)
}

func TestLogUsageMissingUnit(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.LogUsage(context.Background(), 9, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

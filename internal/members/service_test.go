package members

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

type memoryRegistry struct {
	members map[int64]*Member
	nextID  int64
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{members: make(map[int64]*Member)}
}

func (r *memoryRegistry) List(ctx context.Context) ([]Member, error) {
	out := make([]Member, 0, len(r.members))
	for i := int64(1); i <= r.nextID; i++ {
		if m, ok := r.members[i]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memoryRegistry) Get(ctx context.Context, id int64) (Member, error) {
	m, ok := r.members[id]
	if !ok {
		return Member{}, ErrNotFound
	}
	return *m, nil
}

func (r *memoryRegistry) Create(ctx context.Context, m Member) (int64, error) {
	r.nextID++
	m.ID = r.nextID
	r.members[m.ID] = &m
	return m.ID, nil
}

func (r *memoryRegistry) Delete(ctx context.Context, id int64) error {
	if _, ok := r.members[id]; !ok {
		return ErrNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *memoryRegistry) MarkAttendance(ctx context.Context, id int64, weight *string) error {
	m, ok := r.members[id]
	if !ok {
		return ErrNotFound
	}
	m.PresentToday = true
	m.LastSeenDays = 0
	if weight != nil {
		m.Weight = *weight
	}
	return nil
}

func (r *memoryRegistry) SetRenewal(ctx context.Context, id int64, expiry string) error {
	m, ok := r.members[id]
	if !ok {
		return ErrNotFound
	}
	m.SubExpiry = expiry
	return nil
}

func (r *memoryRegistry) MarkNudged(ctx context.Context, days int, status Status) (int64, error) {
	var n int64
	for _, m := range r.members {
		if m.LastSeenDays > days {
			m.Status = status
			n++
		}
	}
	return n, nil
}

type recordedRevenue struct {
	category string
	amount   float64
}

type stubLedger struct {
	revenue []recordedRevenue
}

func (l *stubLedger) RecordRevenue(ctx context.Context, category string, amount float64) error {
	l.revenue = append(l.revenue, recordedRevenue{category, amount})
	return nil
}

type stubProgress struct {
	appended []metrics.Sample
}

func (p *stubProgress) Append(ctx context.Context, memberID int64, sample metrics.Sample) error {
	p.appended = append(p.appended, sample)
	return nil
}

type stubNudges struct {
	enqueued int
}

func (n *stubNudges) EnqueueRetentionNudge(ctx context.Context) error {
	n.enqueued++
	return nil
}

func newTestService() (*Service, *memoryRegistry, *stubLedger, *stubProgress, *stubNudges) {
	repo := newMemoryRegistry()
	ledger := &stubLedger{}
	progress := &stubProgress{}
	nudges := &stubNudges{}
	svc := NewService(repo, ledger, progress, nudges, nil, ServiceConfig{FallbackPlanPrice: 3500})
	svc.WithNow(func() time.Time { return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC) })
	return svc, repo, ledger, progress, nudges
}

func TestRegisterBooksSignupRevenue(t *testing.T) {
	svc, _, ledger, _, _ := newTestService()

	m, err := svc.Register(context.Background(), RegisterInput{
		Name: "Rahul Sharma", Mobile: "9000000001", Email: "rahul@example.com",
		AmountPaid: "6500", SubExpiry: "09 Apr 2025",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), m.ID)
	require.Equal(t, StatusActive, m.Status)
	require.Len(t, ledger.revenue, 1)
	require.Equal(t, "Signup: Rahul Sharma", ledger.revenue[0].category)
	require.Equal(t, 6500.0, ledger.revenue[0].amount)
}

func TestRegisterFailsOpenOnUnreadableAmount(t *testing.T) {
	svc, _, ledger, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Neha Gupta", Mobile: "9000000002", Email: "neha@example.com",
		AmountPaid: "paid in cash",
	})
	require.NoError(t, err, "unreadable amount must not block onboarding")
	require.Empty(t, ledger.revenue)
}

func TestListAttachesSubscriptionHealth(t *testing.T) {
	svc, repo, _, _, _ := newTestService()
	_, _ = repo.Create(context.Background(), Member{Name: "A", SubExpiry: "13 Mar 2025"})
	_, _ = repo.Create(context.Background(), Member{Name: "B", SubExpiry: "09 Mar 2025"})

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, metrics.SubscriptionExpiring, views[0].Health.State)
	require.Equal(t, 3, views[0].Health.DaysLeft)
	require.Equal(t, metrics.SubscriptionExpired, views[1].Health.State)
}

func TestMarkAttendanceAppendsSampleOnlyWithWeight(t *testing.T) {
	svc, repo, _, progress, _ := newTestService()
	id, _ := repo.Create(context.Background(), Member{Name: "A", LastSeenDays: 6})

	require.NoError(t, svc.MarkAttendance(context.Background(), id, nil))
	require.Empty(t, progress.appended)
	require.True(t, repo.members[id].PresentToday)
	require.Zero(t, repo.members[id].LastSeenDays)

	w := 82.5
	require.NoError(t, svc.MarkAttendance(context.Background(), id, &w))
	require.Len(t, progress.appended, 1)
	require.Equal(t, 82.5, progress.appended[0].Weight)
	require.Equal(t, "Mar", progress.appended[0].Month)
	require.Equal(t, "82.5", repo.members[id].Weight)
}

func TestRenewExtendsExpiryAndCharges(t *testing.T) {
	svc, repo, ledger, _, _ := newTestService()
	id, _ := repo.Create(context.Background(), Member{Name: "Rahul Sharma", AmountPaid: "4000"})

	receipt, err := svc.Renew(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "09 Apr 2025", receipt.Member.SubExpiry)
	require.Equal(t, 4000.0, receipt.Amount)
	require.Equal(t, "Renewal: Rahul Sharma", ledger.revenue[0].category)
}

func TestRenewFallsBackToPlanPrice(t *testing.T) {
	svc, repo, ledger, _, _ := newTestService()
	id, _ := repo.Create(context.Background(), Member{Name: "A", AmountPaid: ""})

	receipt, err := svc.Renew(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 3500.0, receipt.Amount)
	require.Equal(t, 3500.0, ledger.revenue[0].amount)
}

func TestRenewMissingMember(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.Renew(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTriggerRetentionEnqueues(t *testing.T) {
	svc, _, _, _, nudges := newTestService()
	require.NoError(t, svc.TriggerRetention(context.Background()))
	require.Equal(t, 1, nudges.enqueued)
}

func TestMarkNudgedTagsChurnRiskOnly(t *testing.T) {
	svc, repo, _, _, _ := newTestService()
	_, _ = repo.Create(context.Background(), Member{Name: "fresh", LastSeenDays: 0, Status: StatusActive})
	_, _ = repo.Create(context.Background(), Member{Name: "edge", LastSeenDays: 4, Status: StatusActive})
	_, _ = repo.Create(context.Background(), Member{Name: "gone", LastSeenDays: 7, Status: StatusActive})

	n, err := svc.MarkNudged(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), n, "only strictly more than %d absent days counts", metrics.ChurnRiskDays)
	require.Equal(t, StatusActive, repo.members[2].Status)
	require.Equal(t, StatusNudgeSent, repo.members[3].Status)
}

func TestHeightCm(t *testing.T) {
	svc, repo, _, _, _ := newTestService()
	a, _ := repo.Create(context.Background(), Member{Name: "A", Height: "178"})
	b, _ := repo.Create(context.Background(), Member{Name: "B", Height: "five nine"})

	h, err := svc.HeightCm(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, 178.0, h)

	h, err = svc.HeightCm(context.Background(), b)
	require.NoError(t, err)
	require.Zero(t, h, "unreadable height reads as unknown, not an error")
}

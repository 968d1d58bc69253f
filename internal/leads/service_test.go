package leads

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tathastu-fit/tathastu-erp/internal/textgen"
)

type memoryInbox struct {
	leads  []Lead
	nextID int64
}

func (m *memoryInbox) List(ctx context.Context) ([]Lead, error) {
	out := make([]Lead, len(m.leads))
	copy(out, m.leads)
	return out, nil
}

func (m *memoryInbox) Insert(ctx context.Context, l Lead) (int64, error) {
	m.nextID++
	l.ID = m.nextID
	m.leads = append(m.leads, l)
	return l.ID, nil
}

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	return g.text, g.err
}

func TestLaunchCampaignCapturesLeads(t *testing.T) {
	repo := &memoryInbox{}
	svc := NewService(repo, &stubGenerator{}, nil, rand.New(rand.NewSource(1)))

	result, err := svc.LaunchCampaign(context.Background(), "Koramangala")
	require.NoError(t, err)
	require.Equal(t, "Koramangala", result.Area)
	require.Len(t, result.Code, 8)
	require.GreaterOrEqual(t, len(result.Leads), 1)
	require.LessOrEqual(t, len(result.Leads), 3)
	require.Len(t, repo.leads, len(result.Leads))

	phone := regexp.MustCompile(`^\+91 9\d{9}$`)
	for _, l := range result.Leads {
		require.Equal(t, StatusNew, l.Status)
		require.Equal(t, result.Code, l.CampaignRef)
		require.Equal(t, "Koramangala", l.Area)
		require.Regexp(t, phone, l.Phone)
		require.Contains(t, []string{"Instagram Ads", "WhatsApp Blast"}, l.Source)
		require.NotZero(t, l.ID)
	}
}

func TestLaunchCampaignPersistsAreaToInbox(t *testing.T) {
	repo := &memoryInbox{}
	svc := NewService(repo, &stubGenerator{}, nil, rand.New(rand.NewSource(7)))

	_, err := svc.LaunchCampaign(context.Background(), "HSR Layout")
	require.NoError(t, err)

	inbox, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, inbox)
	for _, l := range inbox {
		require.Equal(t, "HSR Layout", l.Area, "inbox rows must carry the targeted area")
	}
}

func TestLaunchCampaignCountsStayInRange(t *testing.T) {
	repo := &memoryInbox{}
	svc := NewService(repo, &stubGenerator{}, nil, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		result, err := svc.LaunchCampaign(context.Background(), "Indiranagar")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(result.Leads), 1)
		require.LessOrEqual(t, len(result.Leads), 3)
	}
}

func TestGenerateAdUsesGenerator(t *testing.T) {
	svc := NewService(&memoryInbox{}, &stubGenerator{text: "Sweat now, shine later."}, nil, rand.New(rand.NewSource(1)))
	got := svc.GenerateAd(context.Background(), "Koramangala", "Instagram", "monsoon offer")
	require.Equal(t, "Sweat now, shine later.", got)
}

func TestGenerateAdFallsBackWhenOffline(t *testing.T) {
	svc := NewService(&memoryInbox{}, &stubGenerator{err: textgen.ErrOffline}, nil, rand.New(rand.NewSource(1)))
	got := svc.GenerateAd(context.Background(), "Koramangala", "Instagram", "monsoon offer")
	require.Equal(t, adFallback, got)
}

func TestGenerateAdFallsBackOnError(t *testing.T) {
	svc := NewService(&memoryInbox{}, &stubGenerator{err: errors.New("boom")}, nil, rand.New(rand.NewSource(1)))
	got := svc.GenerateAd(context.Background(), "Indiranagar", "WhatsApp", "student discount")
	require.Equal(t, adFallback, got)
}

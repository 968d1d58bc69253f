package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
)

type memorySeries struct {
	samples map[int64][]metrics.Sample
	reads   int
}

func newMemorySeries() *memorySeries {
	return &memorySeries{samples: make(map[int64][]metrics.Sample)}
}

func (m *memorySeries) Series(ctx context.Context, memberID int64) ([]metrics.Sample, error) {
	m.reads++
	out := make([]metrics.Sample, len(m.samples[memberID]))
	copy(out, m.samples[memberID])
	return out, nil
}

func (m *memorySeries) Insert(ctx context.Context, memberID int64, s metrics.Sample) error {
	m.samples[memberID] = append(m.samples[memberID], s)
	return nil
}

type stubDirectory struct {
	heights map[int64]float64
}

func (d *stubDirectory) HeightCm(ctx context.Context, memberID int64) (float64, error) {
	return d.heights[memberID], nil
}

func newTestService(t *testing.T) (*Service, *memorySeries, *stubDirectory) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newMemorySeries()
	dir := &stubDirectory{heights: map[int64]float64{}}
	return NewService(repo, dir, shared.NewCache(client, time.Minute, "analytics")), repo, dir
}

func TestReportProjectsTrend(t *testing.T) {
	svc, repo, dir := newTestService(t)
	ctx := context.Background()
	dir.heights[1] = 178

	require.NoError(t, repo.Insert(ctx, 1, metrics.Sample{Month: "Jan", Weight: 80, Fat: 20, Muscle: 30}))
	require.NoError(t, repo.Insert(ctx, 1, metrics.Sample{Month: "Jun", Weight: 78, Fat: 18, Muscle: 31}))

	report, err := svc.Report(ctx, 1, metrics.HorizonAll)
	require.NoError(t, err)
	require.Equal(t, int64(1), report.MemberID)
	require.True(t, report.Sufficient)
	require.InDelta(t, 1.0, report.MuscleDelta, 1e-9)
	require.InDelta(t, 2.0, report.FatLoss, 1e-9)
	require.True(t, report.BMIKnown)
	require.InDelta(t, 78/(1.78*1.78), report.BMI, 1e-9)
	require.NotNil(t, report.Forecast)
	require.InDelta(t, 76.4, report.Forecast.Weight, 1e-9)
	require.InDelta(t, 16.4, report.Forecast.Fat, 1e-9)
}

func TestReportInsufficientHistory(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, 7, metrics.Sample{Month: "Jan", Weight: 90, Fat: 25, Muscle: 28}))

	report, err := svc.Report(ctx, 7, metrics.HorizonAll)
	require.NoError(t, err)
	require.False(t, report.Sufficient)
	require.Nil(t, report.Forecast)
	require.False(t, report.BMIKnown)
}

func TestReportCachesUntilAppend(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, 1, metrics.Sample{Month: "Jan", Weight: 80, Fat: 20, Muscle: 30}))
	require.NoError(t, repo.Insert(ctx, 1, metrics.Sample{Month: "Feb", Weight: 79, Fat: 19, Muscle: 30.5}))

	_, err := svc.Report(ctx, 1, metrics.HorizonAll)
	require.NoError(t, err)
	_, err = svc.Report(ctx, 1, metrics.HorizonAll)
	require.NoError(t, err)
	require.Equal(t, 1, repo.reads, "second read should come from cache")

	require.NoError(t, svc.Append(ctx, 1, metrics.Sample{Month: "Mar", Weight: 78, Fat: 18.5, Muscle: 31}))

	report, err := svc.Report(ctx, 1, metrics.HorizonAll)
	require.NoError(t, err)
	require.Equal(t, 2, repo.reads, "append must invalidate cached reports")
	require.Len(t, report.Samples, 3)
}

func TestReportHorizonsAreCachedSeparately(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, repo.Insert(ctx, 1, metrics.Sample{Month: "M", Weight: 80 - float64(i), Fat: 20, Muscle: 30}))
	}

	all, err := svc.Report(ctx, 1, metrics.HorizonAll)
	require.NoError(t, err)
	sixMonths, err := svc.Report(ctx, 1, metrics.HorizonSixMonths)
	require.NoError(t, err)
	require.Len(t, all.Samples, 8)
	require.Len(t, sixMonths.Samples, 6)
}

func TestParseHorizon(t *testing.T) {
	cases := []struct {
		raw  string
		want metrics.Horizon
		ok   bool
	}{
		{"", metrics.HorizonAll, true},
		{"all", metrics.HorizonAll, true},
		{"6m", metrics.HorizonSixMonths, true},
		{"1y", metrics.HorizonOneYear, true},
		{"90d", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseHorizon(tc.raw)
		if !tc.ok {
			require.ErrorIs(t, err, ErrUnknownHorizon, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, got, tc.raw)
	}
}

package analytics

import (
	"context"
	"strconv"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
)

// RepositoryPort abstracts sample persistence for the service.
type RepositoryPort interface {
	Series(ctx context.Context, memberID int64) ([]metrics.Sample, error)
	Insert(ctx context.Context, memberID int64, s metrics.Sample) error
}

// DirectoryPort resolves member heights for BMI. Satisfied by the member
// registry service.
type DirectoryPort interface {
	HeightCm(ctx context.Context, memberID int64) (float64, error)
}

// Service computes cached trend reports over the transformation history.
type Service struct {
	repo      RepositoryPort
	directory DirectoryPort
	cache     *shared.Cache
}

// NewService wires the repository, member directory and report cache.
func NewService(repo RepositoryPort, directory DirectoryPort, cache *shared.Cache) *Service {
	return &Service{repo: repo, directory: directory, cache: cache}
}

// Append records a new sample and invalidates cached reports.
func (s *Service) Append(ctx context.Context, memberID int64, sample metrics.Sample) error {
	if err := s.repo.Insert(ctx, memberID, sample); err != nil {
		return err
	}
	return s.cache.Bump(ctx)
}

// Report builds the trend report for one member and horizon. Reports are
// cached per member and horizon; every Append bumps the namespace so the
// next read recomputes.
func (s *Service) Report(ctx context.Context, memberID int64, h metrics.Horizon) (Report, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		series, err := s.repo.Series(ctx, memberID)
		if err != nil {
			return nil, err
		}
		height, err := s.directory.HeightCm(ctx, memberID)
		if err != nil {
			return nil, err
		}
		return Report{
			MemberID:    memberID,
			TrendReport: metrics.ProjectTrend(series, h, height),
		}, nil
	}

	key, err := s.cache.BuildKey(ctx, "analytics", "report",
		strconv.FormatInt(memberID, 10), strconv.Itoa(int(h)))
	if err != nil {
		return Report{}, err
	}
	var report Report
	if err := s.cache.FetchJSON(ctx, key, &report, loader); err != nil {
		return Report{}, err
	}
	return report, nil
}

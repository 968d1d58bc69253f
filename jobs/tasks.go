// Package jobs runs the background side of the ERP: retention nudges
// and cache warmups, queued through Asynq.
package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskRetentionNudge messages members who have not shown up lately.
	TaskRetentionNudge = "retention:nudge"
	// TaskAnalysisWarmup regenerates the finance narrative off-peak so
	// the first dashboard hit of the day is warm.
	TaskAnalysisWarmup = "finance:analysis_warmup"
)

// NewRetentionNudgeTask constructs the retention task. It carries no
// payload; the handler works off live registry state.
func NewRetentionNudgeTask() *asynq.Task {
	return asynq.NewTask(TaskRetentionNudge, nil)
}

// NewAnalysisWarmupTask constructs the warmup task.
func NewAnalysisWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskAnalysisWarmup, nil)
}

// RetentionMarker tags absent members as nudged. Satisfied by the member
// registry service.
type RetentionMarker interface {
	MarkNudged(ctx context.Context) (int64, error)
}

// NewRetentionNudgeHandler processes TaskRetentionNudge tasks.
func NewRetentionNudgeHandler(logger *slog.Logger, marker RetentionMarker) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		nudged, err := marker.MarkNudged(ctx)
		if err != nil {
			return err
		}
		logger.Info("retention nudges sent", slog.Int64("members", nudged))
		return nil
	}
}

// AnalysisWarmer produces the finance narrative, populating its cache as
// a side effect. Satisfied by the finance service.
type AnalysisWarmer interface {
	Analysis(ctx context.Context) (string, error)
}

// NewAnalysisWarmupHandler processes TaskAnalysisWarmup tasks.
func NewAnalysisWarmupHandler(logger *slog.Logger, warmer AnalysisWarmer) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if _, err := warmer.Analysis(ctx); err != nil {
			return err
		}
		logger.Info("finance analysis warmed")
		return nil
	}
}

package app

import (
	"context"
	"time"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// HotnessRefreshJob periodically rescores stale ideas in-process.
type HotnessRefreshJob struct {
	RefreshCmd command.Command[command.RefreshAllHotnessRequest, command.RefreshAllHotnessResult]
	Interval   time.Duration
	BatchSize  int
}

// Run refreshes once immediately, then on every tick until ctx is cancelled.
// Failed runs are logged and retried on the next tick.
func (j *HotnessRefreshJob) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		j.runOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (j *HotnessRefreshJob) runOnce(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	result, err := j.RefreshCmd.Execute(ctx, command.RefreshAllHotnessRequest{BatchSize: j.BatchSize})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.ErrorContext(ctx, "scheduled hotness refresh stopped early",
			"processed_count", result.ProcessedCount,
			"error_count", result.ErrorCount,
			"error", err)
		return
	}

	if !result.Success {
		logger.WarnContext(ctx, "scheduled hotness refresh exceeded error budget",
			"processed_count", result.ProcessedCount,
			"error_count", result.ErrorCount,
			"total_count", result.TotalCount)
		return
	}

	logger.DebugContext(ctx, "scheduled hotness refresh complete",
		"processed_count", result.ProcessedCount,
		"duration", result.Duration)
}

package command

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RefreshAllHotnessRequest is the request for the RefreshAllHotness command.
type RefreshAllHotnessRequest struct {
	// BatchSize is the page size; zero or negative uses the configured default.
	BatchSize int
	// ForceUpdate rescores every candidate, not only stale ones.
	ForceUpdate bool
}

// RefreshAllHotnessResult summarises a batch run. Partial failure is reported
// here rather than as an error.
type RefreshAllHotnessResult struct {
	ProcessedCount int64
	ErrorCount     int64
	TotalCount     int64
	Duration       time.Duration
	Success        bool
}

// RefreshAllHotnessConfig holds tuning for batch rescoring.
type RefreshAllHotnessConfig struct {
	DefaultBatchSize int
	MaxBatchSize     int

	// StalenessWindow is how old a score must be before a non-forced run recomputes it.
	StalenessWindow time.Duration

	// MaxErrorRatio is the fraction of processed ideas that may fail before a run
	// is reported as unsuccessful.
	MaxErrorRatio float64
}

// DefaultRefreshAllHotnessConfig returns the standard batch tuning.
func DefaultRefreshAllHotnessConfig() RefreshAllHotnessConfig {
	return RefreshAllHotnessConfig{
		DefaultBatchSize: 100,
		MaxBatchSize:     1000,
		StalenessWindow:  30 * time.Minute,
		MaxErrorRatio:    0.5,
	}
}

// HotnessRefreshObserver receives the outcome of each batch run.
type HotnessRefreshObserver interface {
	ObserveHotnessRefresh(result RefreshAllHotnessResult)
}

// RefreshAllHotness rescores candidate ideas in pages keyed by ascending id.
type RefreshAllHotness struct {
	Store    datasources.HotnessStore
	Config   RefreshAllHotnessConfig
	Observer HotnessRefreshObserver
	Now      func() time.Time
}

// NewRefreshAllHotness creates a properly initialized RefreshAllHotness command.
func NewRefreshAllHotness(
	store datasources.HotnessStore,
	config RefreshAllHotnessConfig,
	observer HotnessRefreshObserver,
) *RefreshAllHotness {
	return &RefreshAllHotness{
		Store:    store,
		Config:   config,
		Observer: observer,
		Now:      time.Now,
	}
}

// Execute runs one pass over the candidates. Failures of individual ideas, and of
// count queries for a page, are counted and skipped. Only failing to list candidates
// stops the run early, in which case the partial result is returned with the error.
func (c *RefreshAllHotness) Execute(
	ctx context.Context, req RefreshAllHotnessRequest,
) (RefreshAllHotnessResult, error) {
	logger := domain.LoggerFromContext(ctx)

	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = c.Config.DefaultBatchSize
	}
	if c.Config.MaxBatchSize > 0 && batchSize > c.Config.MaxBatchSize {
		batchSize = c.Config.MaxBatchSize
	}

	start := c.Now()
	var staleBefore *time.Time
	if !req.ForceUpdate {
		t := start.Add(-c.Config.StalenessWindow)
		staleBefore = &t
	}

	var result RefreshAllHotnessResult
	total, err := c.Store.CountHotnessCandidates(ctx, staleBefore)
	if err != nil {
		logger.WarnContext(ctx, "unable to count hotness candidates", "error", err)
	}
	result.TotalCount = total

	logger.InfoContext(ctx, "starting hotness refresh",
		"total_count", total, "batch_size", batchSize, "force_update", req.ForceUpdate)

	var runErr error
	var afterID int64
	for {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("hotness refresh interrupted: %w", err)
			break
		}

		page, err := c.Store.ListHotnessCandidates(ctx, afterID, staleBefore, batchSize)
		if err != nil {
			runErr = fmt.Errorf("listing hotness candidates after id %d: %w", afterID, err)
			break
		}
		if len(page) == 0 {
			break
		}

		processed, failed := c.refreshPage(ctx, page)
		result.ProcessedCount += processed
		result.ErrorCount += failed

		afterID = page[len(page)-1].ID
		if len(page) < batchSize {
			break
		}
	}

	result.Duration = c.Now().Sub(start)
	result.Success = runErr == nil && c.withinErrorBudget(result)

	if runErr != nil {
		logger.ErrorContext(ctx, "hotness refresh stopped early", "error", runErr,
			"processed_count", result.ProcessedCount, "error_count", result.ErrorCount)
	} else {
		logger.InfoContext(ctx, "hotness refresh complete",
			"processed_count", result.ProcessedCount,
			"error_count", result.ErrorCount,
			"total_count", result.TotalCount,
			"duration_ms", result.Duration.Milliseconds(),
			"success", result.Success)
	}

	if c.Observer != nil {
		c.Observer.ObserveHotnessRefresh(result)
	}

	return result, runErr
}

func (c *RefreshAllHotness) withinErrorBudget(result RefreshAllHotnessResult) bool {
	if result.ErrorCount == 0 {
		return true
	}
	return float64(result.ErrorCount) < c.Config.MaxErrorRatio*float64(result.ProcessedCount)
}

// refreshPage scores one page with two grouped count queries, then writes every
// score concurrently. It returns how many ideas were processed and how many failed.
func (c *RefreshAllHotness) refreshPage(ctx context.Context, page []domain.HotnessInput) (int64, int64) {
	logger := domain.LoggerFromContext(ctx)

	ids := make([]int64, 0, len(page))
	for _, idea := range page {
		if idea.IsPublic {
			ids = append(ids, idea.ID)
		}
	}

	var favorites, views map[int64]int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favorites, err = c.Store.CountFavorites(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		views, err = c.Store.CountViews(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "unable to count engagement for page, skipping it",
			"error", err, "first_idea_id", page[0].ID, "page_size", len(page))
		n := int64(len(page))
		return n, n
	}

	now := c.Now()
	var processed, failed atomic.Int64

	var writes errgroup.Group
	writes.SetLimit(len(page))
	for _, idea := range page {
		var score float64
		if idea.IsPublic {
			score = domain.RoundScore(domain.HotnessScore(idea.CreatedAt, favorites[idea.ID], views[idea.ID], now))
		}

		writes.Go(func() error {
			defer processed.Add(1)
			if err := c.Store.SetHotnessScore(ctx, idea.ID, score, now); err != nil {
				logger.ErrorContext(ctx, "unable to persist hotness score", "idea_id", idea.ID, "error", err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = writes.Wait()

	return processed.Load(), failed.Load()
}

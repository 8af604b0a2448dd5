package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RefreshIdeaHotnessRequest is the request for the RefreshIdeaHotness command.
type RefreshIdeaHotnessRequest struct {
	IdeaID int64
}

// RefreshIdeaHotnessResult reports the persisted score and the counts it was computed from.
type RefreshIdeaHotnessResult struct {
	Score         float64
	FavoriteCount int64
	ViewCount     int64
}

// RefreshIdeaHotness recomputes and persists the hotness score of a single idea.
// It is the only writer of an idea's score outside the batch refresher.
type RefreshIdeaHotness struct {
	InputGetter     datasources.HotnessInputGetter
	FavoriteCounter datasources.FavoriteCounter
	ViewCounter     datasources.ViewCounter
	ScoreWriter     datasources.HotnessScoreWriter
	Now             func() time.Time
}

// NewRefreshIdeaHotness creates a RefreshIdeaHotness command backed by store.
func NewRefreshIdeaHotness(store datasources.HotnessStore) *RefreshIdeaHotness {
	return &RefreshIdeaHotness{
		InputGetter:     store,
		FavoriteCounter: store,
		ViewCounter:     store,
		ScoreWriter:     store,
		Now:             time.Now,
	}
}

// Execute refreshes the idea's score. Private ideas are written back to zero without
// counting. A missing idea yields an error wrapping domain.ErrNotFound.
func (c *RefreshIdeaHotness) Execute(
	ctx context.Context, req RefreshIdeaHotnessRequest,
) (RefreshIdeaHotnessResult, error) {
	logger := domain.LoggerFromContext(ctx).With("idea_id", req.IdeaID)

	input, err := c.InputGetter.GetHotnessInput(ctx, req.IdeaID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to load idea for hotness refresh", "error", err)
		return RefreshIdeaHotnessResult{}, fmt.Errorf("loading idea %d: %w", req.IdeaID, err)
	}

	now := c.Now()

	if !input.IsPublic {
		if err := c.ScoreWriter.SetHotnessScore(ctx, req.IdeaID, 0, now); err != nil {
			logger.ErrorContext(ctx, "unable to reset hotness of private idea", "error", err)
			return RefreshIdeaHotnessResult{}, fmt.Errorf("resetting hotness score: %w", err)
		}
		return RefreshIdeaHotnessResult{}, nil
	}

	ids := []int64{req.IdeaID}
	var favorites, views map[int64]int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favorites, err = c.FavoriteCounter.CountFavorites(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		views, err = c.ViewCounter.CountViews(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "unable to count idea engagement", "error", err)
		return RefreshIdeaHotnessResult{}, fmt.Errorf("counting engagement: %w", err)
	}

	result := RefreshIdeaHotnessResult{
		FavoriteCount: favorites[req.IdeaID],
		ViewCount:     views[req.IdeaID],
	}
	result.Score = domain.RoundScore(
		domain.HotnessScore(input.CreatedAt, result.FavoriteCount, result.ViewCount, now),
	)

	if err := c.ScoreWriter.SetHotnessScore(ctx, req.IdeaID, result.Score, now); err != nil {
		logger.ErrorContext(ctx, "unable to persist hotness score", "error", err)
		return RefreshIdeaHotnessResult{}, fmt.Errorf("persisting hotness score: %w", err)
	}

	logger.DebugContext(ctx, "refreshed idea hotness",
		"score", result.Score, "favorite_count", result.FavoriteCount, "view_count", result.ViewCount)

	return result, nil
}

// refreshBestEffort runs a hotness refresh triggered as a side effect of another
// mutation. Failures are logged and never returned.
func refreshBestEffort(
	ctx context.Context, refresher Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult], ideaID int64,
) {
	if refresher == nil {
		return
	}
	if _, err := refresher.Execute(ctx, RefreshIdeaHotnessRequest{IdeaID: ideaID}); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "hotness refresh failed, score will catch up on next batch",
			"idea_id", ideaID, "error", err)
	}
}

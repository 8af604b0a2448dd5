package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
	"golang.org/x/sync/errgroup"
)

const authorTopIdeasLimit = 3

// GetAuthorStatsRequest is the request for the GetAuthorStats command.
type GetAuthorStatsRequest struct {
	UserID int64
}

type GetAuthorStatsResult struct {
	Stats    domain.AuthorStats `json:"stats"`
	TopIdeas []domain.TopIdea   `json:"topIdeas"`
}

// GetAuthorStats summarises engagement across an author's public ideas.
type GetAuthorStats struct {
	StatsGetter    datasources.AuthorStatsGetter
	TopIdeasLister datasources.AuthorTopIdeasLister
}

// NewGetAuthorStats creates a properly initialized GetAuthorStats command.
func NewGetAuthorStats(
	statsGetter datasources.AuthorStatsGetter,
	topIdeasLister datasources.AuthorTopIdeasLister,
) *GetAuthorStats {
	return &GetAuthorStats{
		StatsGetter:    statsGetter,
		TopIdeasLister: topIdeasLister,
	}
}

func (c *GetAuthorStats) Execute(ctx context.Context, req GetAuthorStatsRequest) (GetAuthorStatsResult, error) {
	var result GetAuthorStatsResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := c.StatsGetter.GetAuthorStats(gctx, req.UserID)
		if err != nil {
			return fmt.Errorf("fetching author stats: %w", err)
		}
		result.Stats = stats
		return nil
	})
	g.Go(func() error {
		top, err := c.TopIdeasLister.ListAuthorTopIdeas(gctx, req.UserID, authorTopIdeasLimit)
		if err != nil {
			return fmt.Errorf("listing author top ideas: %w", err)
		}
		result.TopIdeas = top
		return nil
	})
	if err := g.Wait(); err != nil {
		return GetAuthorStatsResult{}, err
	}

	if result.TopIdeas == nil {
		result.TopIdeas = []domain.TopIdea{}
	}
	return result, nil
}

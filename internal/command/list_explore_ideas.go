package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultExplorePageSize = 10
	MaxExplorePageSize     = 20
)

// ListExploreIdeasRequest is the request for the ListExploreIdeas command.
type ListExploreIdeasRequest struct {
	// Cursor is the opaque token from a previous page; empty starts from the top.
	Cursor string
	Limit  int
	Search string
	// ViewerID is the authenticated viewer, or 0 when anonymous.
	ViewerID int64
}

// ListExploreIdeasResult is one page of the explore feed.
// NextCursor is nil exactly when HasMore is false.
type ListExploreIdeasResult struct {
	Ideas      []domain.FeedIdea
	NextCursor *string
	HasMore    bool
}

// ListExploreIdeas pages through public ideas by persisted hotness using keyset pagination.
type ListExploreIdeas struct {
	Lister           datasources.HotIdeaLister
	FavoriteCounter  datasources.FavoriteCounter
	ViewCounter      datasources.ViewCounter
	FavoritedChecker datasources.FavoritedIdeaChecker
}

// NewListExploreIdeas creates a properly initialized ListExploreIdeas command.
func NewListExploreIdeas(
	lister datasources.HotIdeaLister,
	favoriteCounter datasources.FavoriteCounter,
	viewCounter datasources.ViewCounter,
	favoritedChecker datasources.FavoritedIdeaChecker,
) *ListExploreIdeas {
	return &ListExploreIdeas{
		Lister:           lister,
		FavoriteCounter:  favoriteCounter,
		ViewCounter:      viewCounter,
		FavoritedChecker: favoritedChecker,
	}
}

// ClampExploreLimit bounds a requested page size to [1, MaxExplorePageSize],
// using DefaultExplorePageSize when none was given.
func ClampExploreLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultExplorePageSize
	case limit > MaxExplorePageSize:
		return MaxExplorePageSize
	default:
		return limit
	}
}

// Execute returns the page following req.Cursor. A malformed cursor yields an error
// wrapping domain.ErrInvalidCursor, distinct from reaching the end of the feed.
func (c *ListExploreIdeas) Execute(
	ctx context.Context, req ListExploreIdeasRequest,
) (ListExploreIdeasResult, error) {
	var after *domain.FeedCursor
	if req.Cursor != "" {
		cursor, err := domain.DecodeFeedCursor(req.Cursor)
		if err != nil {
			return ListExploreIdeasResult{}, err
		}
		after = &cursor
	}

	limit := ClampExploreLimit(req.Limit)

	ideas, err := c.Lister.ListHotIdeas(ctx, domain.IdeaFilters{Search: req.Search}, after, limit+1)
	if err != nil {
		return ListExploreIdeasResult{}, fmt.Errorf("listing hot ideas: %w", err)
	}

	hasMore := len(ideas) > limit
	if hasMore {
		ideas = ideas[:limit]
	}
	if ideas == nil {
		ideas = []domain.FeedIdea{}
	}

	if err := c.annotate(ctx, ideas, req.ViewerID); err != nil {
		return ListExploreIdeasResult{}, err
	}

	result := ListExploreIdeasResult{Ideas: ideas, HasMore: hasMore}
	if hasMore {
		last := ideas[len(ideas)-1]
		token, ok := domain.EncodeFeedCursor(last.HotnessScore, last.CreatedAt, last.ID)
		if ok {
			result.NextCursor = &token
		} else {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to encode next cursor, ending feed",
				"idea_id", last.ID)
			result.HasMore = false
		}
	}

	return result, nil
}

// annotate fills engagement counts and the viewer's favorite flag with one grouped
// query each.
func (c *ListExploreIdeas) annotate(ctx context.Context, ideas []domain.FeedIdea, viewerID int64) error {
	if len(ideas) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(ideas))
	for _, idea := range ideas {
		ids = append(ids, idea.ID)
	}

	var (
		favorites map[int64]int64
		views     map[int64]int64
		favorited map[int64]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if favorites, err = c.FavoriteCounter.CountFavorites(gctx, ids); err != nil {
			return fmt.Errorf("counting favorites: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if views, err = c.ViewCounter.CountViews(gctx, ids); err != nil {
			return fmt.Errorf("counting views: %w", err)
		}
		return nil
	})
	if viewerID != 0 {
		g.Go(func() error {
			var err error
			if favorited, err = c.FavoritedChecker.ListFavoritedIdeaIDs(gctx, viewerID, ids); err != nil {
				return fmt.Errorf("checking viewer favorites: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range ideas {
		ideas[i].FavoriteCount = favorites[ideas[i].ID]
		ideas[i].ViewCount = views[ideas[i].ID]
		ideas[i].IsFavoritedByViewer = favorited[ideas[i].ID]
	}
	return nil
}

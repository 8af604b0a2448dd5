package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// SetIdeaFavoriteRequest is the request for the SetIdeaFavorite command.
type SetIdeaFavoriteRequest struct {
	UserID   int64
	IdeaID   int64
	Favorite bool
}

// SetIdeaFavoriteResult reports whether the favorite edge actually changed.
type SetIdeaFavoriteResult struct {
	Changed bool
}

// SetIdeaFavorite adds or removes a favorite, then refreshes the idea's hotness.
// The refresh is a separate step whose failure never undoes the favorite.
type SetIdeaFavorite struct {
	IdeaGetter     datasources.IdeaGetter
	FavoriteSetter datasources.FavoriteSetter
	Refresher      Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult]
}

// NewSetIdeaFavorite creates a properly initialized SetIdeaFavorite command.
func NewSetIdeaFavorite(
	ideaGetter datasources.IdeaGetter,
	favoriteSetter datasources.FavoriteSetter,
	refresher Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult],
) *SetIdeaFavorite {
	return &SetIdeaFavorite{
		IdeaGetter:     ideaGetter,
		FavoriteSetter: favoriteSetter,
		Refresher:      refresher,
	}
}

// Execute sets the favorite state. Favoriting another user's private idea fails with
// domain.ErrNotFound, so private ideas are indistinguishable from missing ones.
func (c *SetIdeaFavorite) Execute(ctx context.Context, req SetIdeaFavoriteRequest) (SetIdeaFavoriteResult, error) {
	idea, err := c.IdeaGetter.GetIdea(ctx, req.IdeaID)
	if err != nil {
		return SetIdeaFavoriteResult{}, fmt.Errorf("fetching idea: %w", err)
	}
	if !idea.IsPublic && idea.UserID != req.UserID {
		return SetIdeaFavoriteResult{}, fmt.Errorf("idea %d: %w", req.IdeaID, domain.ErrNotFound)
	}

	var changed bool
	if req.Favorite {
		changed, err = c.FavoriteSetter.AddFavorite(ctx, req.UserID, req.IdeaID)
	} else {
		changed, err = c.FavoriteSetter.RemoveFavorite(ctx, req.UserID, req.IdeaID)
	}
	if err != nil {
		return SetIdeaFavoriteResult{}, fmt.Errorf("setting favorite: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "set idea favorite",
		"idea_id", req.IdeaID, "favorite", req.Favorite, "changed", changed)

	if changed {
		refreshBestEffort(ctx, c.Refresher, req.IdeaID)
	}

	return SetIdeaFavoriteResult{Changed: changed}, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// SetIdeaVisibilityRequest is the request for the SetIdeaVisibility command.
type SetIdeaVisibilityRequest struct {
	UserID   int64
	IdeaID   int64
	IsPublic bool
}

// SetIdeaVisibility lets an owner publish or hide an idea. The follow-up refresh
// brings the score in line with the new visibility, zero for private ideas.
type SetIdeaVisibility struct {
	IdeaGetter       datasources.IdeaGetter
	VisibilitySetter datasources.IdeaVisibilitySetter
	Refresher        Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult]
	NewShareLink     func() string
}

// NewSetIdeaVisibility creates a properly initialized SetIdeaVisibility command.
func NewSetIdeaVisibility(
	ideaGetter datasources.IdeaGetter,
	visibilitySetter datasources.IdeaVisibilitySetter,
	refresher Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult],
) *SetIdeaVisibility {
	return &SetIdeaVisibility{
		IdeaGetter:       ideaGetter,
		VisibilitySetter: visibilitySetter,
		Refresher:        refresher,
		NewShareLink:     uuid.NewString,
	}
}

// Execute changes visibility. Non-owners get domain.ErrForbidden.
func (c *SetIdeaVisibility) Execute(ctx context.Context, req SetIdeaVisibilityRequest) (Empty, error) {
	idea, err := c.IdeaGetter.GetIdea(ctx, req.IdeaID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching idea: %w", err)
	}
	if idea.UserID != req.UserID {
		return Empty{}, fmt.Errorf("idea %d owned by another user: %w", req.IdeaID, domain.ErrForbidden)
	}

	var shareLink string
	if req.IsPublic && idea.ShareLink == "" {
		shareLink = c.NewShareLink()
	}

	if err := c.VisibilitySetter.SetIdeaVisibility(ctx, req.IdeaID, req.IsPublic, shareLink); err != nil {
		return Empty{}, fmt.Errorf("setting idea visibility: %w", err)
	}

	refreshBestEffort(ctx, c.Refresher, req.IdeaID)

	return Empty{}, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// ListUserIdeasRequest is the request for the ListUserIdeas command.
// Page is 1-based.
type ListUserIdeasRequest struct {
	UserID   int64
	Page     int
	PageSize int
}

type ListUserIdeasResult struct {
	Ideas []domain.OwnIdea
}

// ListUserIdeas lists the ideas a user authored, private ones included, newest first.
type ListUserIdeas struct {
	Lister datasources.UserIdeasLister
}

// NewListUserIdeas creates a properly initialized ListUserIdeas command.
func NewListUserIdeas(lister datasources.UserIdeasLister) *ListUserIdeas {
	return &ListUserIdeas{Lister: lister}
}

func (c *ListUserIdeas) Execute(ctx context.Context, req ListUserIdeasRequest) (ListUserIdeasResult, error) {
	if req.Page < 1 || req.PageSize < 1 {
		return ListUserIdeasResult{}, fmt.Errorf("%w: page %d, page size %d", domain.ErrInvalidInput, req.Page, req.PageSize)
	}

	offset := (req.Page - 1) * req.PageSize
	ideas, err := c.Lister.ListUserIdeas(ctx, req.UserID, offset, req.PageSize)
	if err != nil {
		return ListUserIdeasResult{}, fmt.Errorf("listing ideas of user %d: %w", req.UserID, err)
	}
	if ideas == nil {
		ideas = []domain.OwnIdea{}
	}

	return ListUserIdeasResult{Ideas: ideas}, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

const (
	DefaultViewHistoryLimit = 10
	MaxViewHistoryLimit     = 50
)

// ListViewHistoryRequest is the request for the ListViewHistory command.
// A Limit of zero or less uses DefaultViewHistoryLimit.
type ListViewHistoryRequest struct {
	UserID int64
	Limit  int
}

type ListViewHistoryResult struct {
	Views []domain.ViewedIdea
}

// ListViewHistory returns the ideas a user viewed most recently.
type ListViewHistory struct {
	Lister datasources.ViewHistoryLister
}

// NewListViewHistory creates a properly initialized ListViewHistory command.
func NewListViewHistory(lister datasources.ViewHistoryLister) *ListViewHistory {
	return &ListViewHistory{Lister: lister}
}

func (c *ListViewHistory) Execute(ctx context.Context, req ListViewHistoryRequest) (ListViewHistoryResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultViewHistoryLimit
	}
	limit = min(limit, MaxViewHistoryLimit)

	views, err := c.Lister.ListViewHistory(ctx, req.UserID, limit)
	if err != nil {
		return ListViewHistoryResult{}, fmt.Errorf("listing view history of user %d: %w", req.UserID, err)
	}
	if views == nil {
		views = []domain.ViewedIdea{}
	}

	return ListViewHistoryResult{Views: views}, nil
}

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// ViewDedupWindow is how long a repeat view by the same user is ignored.
const ViewDedupWindow = 24 * time.Hour

// RecordIdeaViewRequest is the request for the RecordIdeaView command.
type RecordIdeaViewRequest struct {
	UserID int64
	IdeaID int64
}

type RecordIdeaViewResult struct {
	Recorded bool
}

// RecordIdeaView logs a view. Scores are not refreshed here; the batch refresher
// picks views up once the idea's score goes stale.
type RecordIdeaView struct {
	IdeaGetter   datasources.IdeaGetter
	ViewRecorder datasources.ViewRecorder
	Now          func() time.Time
}

// NewRecordIdeaView creates a properly initialized RecordIdeaView command.
func NewRecordIdeaView(ideaGetter datasources.IdeaGetter, viewRecorder datasources.ViewRecorder) *RecordIdeaView {
	return &RecordIdeaView{
		IdeaGetter:   ideaGetter,
		ViewRecorder: viewRecorder,
		Now:          time.Now,
	}
}

func (c *RecordIdeaView) Execute(ctx context.Context, req RecordIdeaViewRequest) (RecordIdeaViewResult, error) {
	idea, err := c.IdeaGetter.GetIdea(ctx, req.IdeaID)
	if err != nil {
		return RecordIdeaViewResult{}, fmt.Errorf("fetching idea: %w", err)
	}
	if !idea.IsPublic && idea.UserID != req.UserID {
		return RecordIdeaViewResult{}, fmt.Errorf("idea %d: %w", req.IdeaID, domain.ErrNotFound)
	}

	recorded, err := c.ViewRecorder.RecordView(ctx, req.UserID, req.IdeaID, c.Now().UTC(), ViewDedupWindow)
	if err != nil {
		return RecordIdeaViewResult{}, fmt.Errorf("recording view: %w", err)
	}

	return RecordIdeaViewResult{Recorded: recorded}, nil
}

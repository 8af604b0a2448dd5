package command

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

const (
	maxTitleLength = 255
	maxTagLength   = 64
	maxTagCount    = 10
)

// CreateIdeaRequest is the request for the CreateIdea command.
type CreateIdeaRequest struct {
	UserID   int64
	Title    string
	Content  string
	IsPublic bool
	Tags     []string
}

// CreateIdeaResult identifies the created idea.
type CreateIdeaResult struct {
	IdeaID    int64
	ShareLink string
}

// CreateIdea validates and stores a new idea. Public ideas receive a share link and
// an initial hotness score.
type CreateIdea struct {
	Creator      datasources.IdeaCreator
	Refresher    Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult]
	NewShareLink func() string
	Now          func() time.Time
}

// NewCreateIdea creates a properly initialized CreateIdea command.
func NewCreateIdea(
	creator datasources.IdeaCreator,
	refresher Command[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult],
) *CreateIdea {
	return &CreateIdea{
		Creator:      creator,
		Refresher:    refresher,
		NewShareLink: uuid.NewString,
		Now:          time.Now,
	}
}

// Execute creates the idea. Invalid input yields an error wrapping domain.ErrInvalidInput.
func (c *CreateIdea) Execute(ctx context.Context, req CreateIdeaRequest) (CreateIdeaResult, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" {
		return CreateIdeaResult{}, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return CreateIdeaResult{}, fmt.Errorf("%w: title longer than %d characters", domain.ErrInvalidInput, maxTitleLength)
	}

	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return CreateIdeaResult{}, err
	}

	newIdea := domain.NewIdea{
		UserID:    req.UserID,
		Title:     title,
		Content:   content,
		IsPublic:  req.IsPublic,
		Tags:      tags,
		CreatedAt: c.Now().UTC(),
	}
	if req.IsPublic {
		newIdea.ShareLink = c.NewShareLink()
	}

	ideaID, err := c.Creator.CreateIdea(ctx, newIdea)
	if err != nil {
		return CreateIdeaResult{}, fmt.Errorf("creating idea: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "created idea",
		"idea_id", ideaID, "user_id", req.UserID, "is_public", req.IsPublic)

	if req.IsPublic {
		refreshBestEffort(ctx, c.Refresher, ideaID)
	}

	return CreateIdeaResult{IdeaID: ideaID, ShareLink: newIdea.ShareLink}, nil
}

// normalizeTags lowercases, trims and deduplicates tags, dropping empty ones.
func normalizeTags(raw []string) ([]string, error) {
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		if utf8.RuneCountInString(tag) > maxTagLength {
			return nil, fmt.Errorf("%w: tag longer than %d characters", domain.ErrInvalidInput, maxTagLength)
		}
		tags = append(tags, tag)
	}
	if len(tags) > maxTagCount {
		return nil, fmt.Errorf("%w: more than %d tags", domain.ErrInvalidInput, maxTagCount)
	}
	return tags, nil
}

package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

const maxIdeaBodyBytes = 64 * 1024

// IdeaCreateRequest is the JSON request body for creating an idea.
type IdeaCreateRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	IsPublic bool     `json:"is_public"`
	Tags     []string `json:"tags,omitempty"`
}

// IdeaCreateResponse is the JSON response for a created idea.
type IdeaCreateResponse struct {
	ID        int64  `json:"id"`
	ShareLink string `json:"shareLink,omitempty"`
}

// IdeaCreate handles POST /v1/ideas.
type IdeaCreate struct {
	CreateCmd command.Command[command.CreateIdeaRequest, command.CreateIdeaResult]
}

func (c IdeaCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == 0 {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body IdeaCreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIdeaBodyBytes)).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid_body")
		return
	}

	result, err := c.CreateCmd.Execute(ctx, command.CreateIdeaRequest{
		UserID:   userID,
		Title:    body.Title,
		Content:  body.Content,
		IsPublic: body.IsPublic,
		Tags:     body.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			logger.WarnContext(ctx, "rejected idea", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "invalid_input")
			return
		}

		logger.ErrorContext(ctx, "unable to create idea", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, IdeaCreateResponse{
		ID:        result.IdeaID,
		ShareLink: result.ShareLink,
	})
}

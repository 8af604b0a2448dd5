package controller

import (
	"net/http"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

type UserIdeasListResponse struct {
	Ideas    []domain.OwnIdea `json:"ideas"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// UserIdeasList handles GET /v1/ideas/mine, listing the viewer's own ideas.
type UserIdeasList struct {
	ListCmd command.Command[command.ListUserIdeasRequest, command.ListUserIdeasResult]
}

func (c UserIdeasList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == 0 {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse pagination", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid_query")
		return
	}

	result, err := c.ListCmd.Execute(ctx, command.ListUserIdeasRequest{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list user ideas", "user_id", userID, "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "internal_error")
		return
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, UserIdeasListResponse{
		Ideas:    result.Ideas,
		Page:     page,
		PageSize: pageSize,
	})
}

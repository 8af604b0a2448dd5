package controller

import (
	"net/http"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

type ViewHistoryListResponse struct {
	Views []domain.ViewedIdea `json:"views"`
}

// ViewHistoryList handles GET /v1/views/mine.
type ViewHistoryList struct {
	ListCmd command.Command[command.ListViewHistoryRequest, command.ListViewHistoryResult]
}

func (c ViewHistoryList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == 0 {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	req := command.ListViewHistoryRequest{UserID: userID}
	if q := r.URL.Query(); q.Has("limit") {
		limit, err := parseLimit(q.Get("limit"))
		if err != nil {
			logger.WarnContext(ctx, "unable to parse view history limit", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "invalid_query")
			return
		}
		req.Limit = limit
	}

	result, err := c.ListCmd.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list view history", "user_id", userID, "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "internal_error")
		return
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, ViewHistoryListResponse{Views: result.Views})
}

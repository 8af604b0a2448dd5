package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// AuthorStatsGet handles GET /v1/users/{user_id}/stats.
type AuthorStatsGet struct {
	StatsCmd    command.Command[command.GetAuthorStatsRequest, command.GetAuthorStatsResult]
	CacheMaxAge time.Duration
}

func (c AuthorStatsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID, err := parseIDVar(r, "user_id")
	if err != nil {
		logger.WarnContext(ctx, "invalid user id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.StatsCmd.Execute(ctx, command.GetAuthorStatsRequest{UserID: userID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get author stats", "user_id", userID, "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "internal_error")
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(ctx, w, http.StatusOK, result)
}

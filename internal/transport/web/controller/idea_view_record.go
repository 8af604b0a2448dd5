package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

type IdeaViewRecordResponse struct {
	Recorded bool `json:"recorded"`
}

// IdeaViewRecord handles POST /v1/ideas/{idea_id}/view.
type IdeaViewRecord struct {
	RecordViewCmd command.Command[command.RecordIdeaViewRequest, command.RecordIdeaViewResult]
}

func (c IdeaViewRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	ideaID, err := parseIDVar(r, "idea_id")
	if err != nil {
		logger.WarnContext(r.Context(), "invalid idea id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx := domain.ContextWithLogger(r.Context(), logger.With("idea_id", ideaID))

	result, err := c.RecordViewCmd.Execute(ctx, command.RecordIdeaViewRequest{
		UserID: domain.UserIDFromContext(ctx),
		IdeaID: ideaID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to record view", "idea_id", ideaID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, IdeaViewRecordResponse{Recorded: result.Recorded})
}

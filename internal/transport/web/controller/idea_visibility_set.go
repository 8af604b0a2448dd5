package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// IdeaVisibilitySet handles POST /v1/ideas/{idea_id}/public/{public}.
type IdeaVisibilitySet struct {
	SetVisibilityCmd command.Command[command.SetIdeaVisibilityRequest, command.Empty]
}

func (c IdeaVisibilitySet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	ideaID, err := parseIDVar(r, "idea_id")
	if err != nil {
		logger.WarnContext(r.Context(), "invalid idea id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logger = logger.With("idea_id", ideaID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	isPublic, err := parseBoolVar(mux.Vars(r), "public")
	if err != nil {
		logger.WarnContext(ctx, "invalid public value", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.SetVisibilityCmd.Execute(ctx, command.SetIdeaVisibilityRequest{
		UserID:   domain.UserIDFromContext(ctx),
		IdeaID:   ideaID,
		IsPublic: isPublic,
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, domain.ErrForbidden):
		logger.WarnContext(ctx, "visibility change by non-owner", "error", err)
		w.WriteHeader(http.StatusForbidden)
	default:
		logger.ErrorContext(ctx, "unable to set idea visibility", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

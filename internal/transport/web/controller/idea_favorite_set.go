package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// IdeaFavoriteSet handles POST /v1/ideas/{idea_id}/favorite/{favorite}.
type IdeaFavoriteSet struct {
	SetFavoriteCmd command.Command[command.SetIdeaFavoriteRequest, command.SetIdeaFavoriteResult]
}

func (c IdeaFavoriteSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	ideaID, err := parseIDVar(r, "idea_id")
	if err != nil {
		logger.WarnContext(r.Context(), "invalid idea id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logger = logger.With("idea_id", ideaID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	favorite, err := parseBoolVar(mux.Vars(r), "favorite")
	if err != nil {
		logger.WarnContext(ctx, "invalid favorite value", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.SetFavoriteCmd.Execute(ctx, command.SetIdeaFavoriteRequest{
		UserID:   domain.UserIDFromContext(ctx),
		IdeaID:   ideaID,
		Favorite: favorite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to set favorite", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

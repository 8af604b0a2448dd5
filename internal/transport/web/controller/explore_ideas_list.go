package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

const maxSearchRunes = 100

// ExploreIdeasList serves GET /v1/ideas/explore.
type ExploreIdeasList struct {
	ListCmd     command.Command[command.ListExploreIdeasRequest, command.ListExploreIdeasResult]
	CacheMaxAge time.Duration
}

type ExploreIdeasListResponse struct {
	Ideas      []ExploreIdea `json:"ideas"`
	NextCursor *string       `json:"nextCursor"`
	HasMore    bool          `json:"hasMore"`
}

// ExploreIdea is a feed entry; the score is only exposed in debug responses.
type ExploreIdea struct {
	domain.FeedIdea
	HotnessScore *float64 `json:"hotnessScore,omitempty"`
}

func (c ExploreIdeasList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	req, err := exploreRequestFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse explore query", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid_query")
		return
	}
	req.ViewerID = domain.UserIDFromContext(ctx)
	debug := r.URL.Query().Get("debug") == boolTrue

	result, err := c.ListCmd.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCursor) {
			logger.WarnContext(ctx, "rejected explore cursor", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "invalid_cursor")
			return
		}

		logger.ErrorContext(ctx, "unable to list explore ideas", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "internal_error")
		return
	}

	ideas := make([]ExploreIdea, 0, len(result.Ideas))
	for _, idea := range result.Ideas {
		item := ExploreIdea{FeedIdea: idea}
		if debug {
			score := idea.HotnessScore
			item.HotnessScore = &score
		}
		ideas = append(ideas, item)
	}

	// Responses carrying viewer state must not be shared.
	if req.ViewerID != 0 || debug {
		w.Header().Set("Cache-Control", "private, no-store")
	} else {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(ctx, w, http.StatusOK, ExploreIdeasListResponse{
		Ideas:      ideas,
		NextCursor: result.NextCursor,
		HasMore:    result.HasMore,
	})
}

func exploreRequestFromQuery(q url.Values) (command.ListExploreIdeasRequest, error) {
	req := command.ListExploreIdeasRequest{
		Cursor: q.Get("cursor"),
		Search: normalizeSearch(q.Get("q")),
	}

	if q.Has("limit") {
		limit, err := parseLimit(q.Get("limit"))
		if err != nil {
			return command.ListExploreIdeasRequest{}, err
		}
		req.Limit = limit
	}
	req.Limit = command.ClampExploreLimit(req.Limit)

	return req, nil
}

func normalizeSearch(raw string) string {
	search := strings.TrimSpace(raw)
	if utf8.RuneCountInString(search) <= maxSearchRunes {
		return search
	}
	return strings.TrimSpace(string([]rune(search)[:maxSearchRunes]))
}

package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// ExploreRSS renders the first page of the explore feed as RSS 2.0.
type ExploreRSS struct {
	ListCmd         command.Command[command.ListExploreIdeasRequest, command.ListExploreIdeasResult]
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c ExploreRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       "Idea Feed: Explore",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "The hottest public ideas right now",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     now(),
	}

	req, err := exploreRequestFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse explore query", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	// Feed readers always get the top of the feed.
	req.Cursor = ""

	result, err := c.ListCmd.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCursor) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		logger.ErrorContext(ctx, "unable to fetch ideas for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, idea := range result.Ideas {
		id := strconv.FormatInt(idea.ID, 10)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          id,
			IsPermaLink: "false",
			Title:       idea.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/ideas/" + id},
			Description: idea.Content,
			Author:      &feeds.Author{Name: idea.Author.Name},
			Created:     idea.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/transport/web/controller"
)

// Commands holds the use cases served over HTTP.
type Commands struct {
	ListExploreIdeas  command.Command[command.ListExploreIdeasRequest, command.ListExploreIdeasResult]
	CreateIdea        command.Command[command.CreateIdeaRequest, command.CreateIdeaResult]
	SetIdeaFavorite   command.Command[command.SetIdeaFavoriteRequest, command.SetIdeaFavoriteResult]
	SetIdeaVisibility command.Command[command.SetIdeaVisibilityRequest, command.Empty]
	RecordIdeaView    command.Command[command.RecordIdeaViewRequest, command.RecordIdeaViewResult]
	GetAuthorStats    command.Command[command.GetAuthorStatsRequest, command.GetAuthorStatsResult]
	ListUserIdeas     command.Command[command.ListUserIdeasRequest, command.ListUserIdeasResult]
	ListViewHistory   command.Command[command.ListViewHistoryRequest, command.ListViewHistoryResult]
	RefreshAllHotness command.Command[command.RefreshAllHotnessRequest, command.RefreshAllHotnessResult]
}

type Options struct {
	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	ExploreCacheMaxAge time.Duration
	AdminUserIDs       []int64

	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
}

func MakeRouter(
	cmds Commands,
	opts Options,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/ideas/explore", controller.ExploreIdeasList{
		ListCmd:     cmds.ListExploreIdeas,
		CacheMaxAge: opts.ExploreCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ideas/explore/rss", controller.ExploreRSS{
		ListCmd:         cmds.ListExploreIdeas,
		FeedHostname:    opts.RSSFeedBaseURL,
		FeedPath:        "/v1/ideas/explore/rss",
		FeedAuthorName:  opts.RSSFeedAuthorName,
		FeedAuthorEmail: opts.RSSFeedAuthorEmail,
		CacheMaxAge:     opts.ExploreCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ideas/mine", requireAuthMiddleware(controller.UserIdeasList{
		ListCmd: cmds.ListUserIdeas,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/views/mine", requireAuthMiddleware(controller.ViewHistoryList{
		ListCmd: cmds.ListViewHistory,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ideas", requireAuthMiddleware(controller.IdeaCreate{
		CreateCmd: cmds.CreateIdea,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ideas/{idea_id}/favorite/{favorite}", requireAuthMiddleware(controller.IdeaFavoriteSet{
		SetFavoriteCmd: cmds.SetIdeaFavorite,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ideas/{idea_id}/public/{public}", requireAuthMiddleware(controller.IdeaVisibilitySet{
		SetVisibilityCmd: cmds.SetIdeaVisibility,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ideas/{idea_id}/view", requireAuthMiddleware(controller.IdeaViewRecord{
		RecordViewCmd: cmds.RecordIdeaView,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/stats", controller.AuthorStatsGet{
		StatsCmd:    cmds.GetAuthorStats,
		CacheMaxAge: opts.ExploreCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/admin/hotness/refresh", requireAdminMiddleware(opts.AdminUserIDs)(controller.HotnessRefreshAll{
		RefreshCmd: cmds.RefreshAllHotness,
	})).Methods(http.MethodPost, http.MethodOptions)

	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler).Methods(http.MethodGet)
	}

	return r, nil
}

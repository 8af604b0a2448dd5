package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/datasources/memory"
	"github.com/jbeshir/idea-feed/internal/datasources/mysql"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/jbeshir/idea-feed/internal/metrics"
	"github.com/jbeshir/idea-feed/internal/transport/web/router"
	"github.com/jbeshir/idea-feed/internal/transport/web/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := SetupIdeaRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up idea repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	refreshMetrics, err := metrics.NewHotnessRefresh(registry)
	if err != nil {
		return nil, fmt.Errorf("registering hotness refresh metrics: %w", err)
	}

	refreshIdeaCmd := command.NewRefreshIdeaHotness(repo)
	refreshConfig := HotnessRefreshConfig(ctx)
	refreshAllCmd := command.NewRefreshAllHotness(repo, refreshConfig, refreshMetrics)

	httpRouter, err := router.MakeRouter(
		router.Commands{
			ListExploreIdeas:  command.NewListExploreIdeas(repo, repo, repo, repo),
			CreateIdea:        command.NewCreateIdea(repo, refreshIdeaCmd),
			SetIdeaFavorite:   command.NewSetIdeaFavorite(repo, repo, refreshIdeaCmd),
			SetIdeaVisibility: command.NewSetIdeaVisibility(repo, repo, refreshIdeaCmd),
			RecordIdeaView:    command.NewRecordIdeaView(repo, repo),
			GetAuthorStats:    command.NewGetAuthorStats(repo, repo),
			ListUserIdeas:     command.NewListUserIdeas(repo),
			ListViewHistory:   command.NewListViewHistory(repo),
			RefreshAllHotness: refreshAllCmd,
		},
		router.Options{
			RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			ExploreCacheMaxAge: MustGetEnvAsDuration(ctx, "EXPLORE_CACHE_MAX_AGE"),
			AdminUserIDs:       MustGetEnvAsInt64s(ctx, "ADMIN_USER_IDS"),
			MetricsHandler:     metrics.Handler(registry),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}

	if interval := MustGetEnvAsDuration(ctx, "HOTNESS_REFRESH_INTERVAL"); interval > 0 {
		components = append(components, &HotnessRefreshJob{
			RefreshCmd: refreshAllCmd,
			Interval:   interval,
			BatchSize:  refreshConfig.DefaultBatchSize,
		})
	} else {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "in-process hotness refresh disabled")
	}

	return components, nil
}

// SetupIdeaRepository opens the store selected by STORE_DRIVER.
func SetupIdeaRepository(ctx context.Context) (datasources.IdeaRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORE_DRIVER"); driver {
	case "memory":
		return memory.New(), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}

		if MustGetEnvAsBoolean(ctx, "RUN_MIGRATIONS") {
			version, dirty, err := mysql.RunMigrations(db)
			if err != nil {
				return nil, fmt.Errorf("migrating MySQL: %w", err)
			}
			logger := domain.LoggerFromContext(ctx)
			logger.InfoContext(ctx, "schema migrated", "version", version, "dirty", dirty)
		}

		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, users datasources.UserBySubjectGetter,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators, users), nil
}

package app

import (
	"context"
	"net/http"

	"github.com/quizplease/statsboard/internal/config"
	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	"github.com/quizplease/statsboard/internal/domain/standings"
	"github.com/quizplease/statsboard/internal/domain/team"
	cacherepo "github.com/quizplease/statsboard/internal/infrastructure/repository/cache"
	"github.com/quizplease/statsboard/internal/infrastructure/repository/memory"
	"github.com/quizplease/statsboard/internal/infrastructure/repository/postgres"
	"github.com/quizplease/statsboard/internal/interfaces/httpapi"
	platformcache "github.com/quizplease/statsboard/internal/platform/cache"
	"github.com/quizplease/statsboard/internal/platform/logging"
	"github.com/quizplease/statsboard/internal/usecase"
)

// App owns the wired HTTP server and the resources behind it.
type App struct {
	Server *http.Server
	Warmup *usecase.WarmupService

	cfg    config.Config
	client *postgres.Client
	logger *logging.Logger
}

// New wires repositories, services and the HTTP router from configuration.
// The database connection is established lazily on first use, so New does
// not touch the network.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	client := postgres.NewClient(dbURL, dbNameFromURL(dbURL), logger)

	var (
		gameRepo      game.Repository      = postgres.NewGameRepository(client)
		teamRepo      team.Repository      = postgres.NewTeamRepository(client)
		standingsRepo standings.Repository = postgres.NewStandingsRepository(client)
		resultsRepo   results.Repository   = postgres.NewResultsRepository(client)
	)

	if cfg.CacheEnabled {
		store := platformcache.NewStore(cfg.CacheTTL)
		gameRepo = cacherepo.NewGameRepository(gameRepo, store)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		standingsRepo = cacherepo.NewStandingsRepository(standingsRepo, store)
		resultsRepo = cacherepo.NewResultsRepository(resultsRepo, store)
	}

	overview := usecase.NewOverviewService(gameRepo)
	teams := usecase.NewTeamService(teamRepo, resultsRepo)
	leaderboards := usecase.NewLeaderboardService(resultsRepo)
	standingsService := usecase.NewStandingsService(standingsRepo)
	comparisons := usecase.NewComparisonService(teamRepo, resultsRepo)
	sessions := usecase.NewSessionService(memory.NewSessionRepository())
	charts := usecase.NewChartService(comparisons)
	exports := usecase.NewExportService(leaderboards)

	handler := httpapi.NewHandler(
		overview,
		teams,
		leaderboards,
		standingsService,
		comparisons,
		sessions,
		charts,
		exports,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server: srv,
		Warmup: usecase.NewWarmupService(overview, teams, standingsService, logger),
		cfg:    cfg,
		client: client,
		logger: logger,
	}, nil
}

// RunWarmup pre-loads the cache once and, when an interval is configured,
// keeps refreshing it until ctx is cancelled.
func (a *App) RunWarmup(ctx context.Context) {
	if !a.cfg.WarmupEnabled {
		a.logger.InfoContext(ctx, "cache warmup disabled", "reason", "WARMUP_ENABLED=false")
		return
	}
	if a.cfg.WarmupInterval > 0 {
		a.Warmup.Run(ctx, a.cfg.WarmupPoolSize, a.cfg.WarmupInterval)
		return
	}
	a.Warmup.Warm(ctx, a.cfg.WarmupPoolSize)
}

// Close releases the database pool.
func (a *App) Close() error {
	return a.client.Close()
}

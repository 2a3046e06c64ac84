package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/khelsetu/arena/external/geodata"
	"github.com/khelsetu/arena/internal/config"
	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
	cacherepo "github.com/khelsetu/arena/internal/infrastructure/repository/cache"
	"github.com/khelsetu/arena/internal/infrastructure/repository/memory"
	"github.com/khelsetu/arena/internal/infrastructure/repository/postgres"
	"github.com/khelsetu/arena/internal/interfaces/httpapi"
	basecache "github.com/khelsetu/arena/internal/platform/cache"
	idgen "github.com/khelsetu/arena/internal/platform/id"
	"github.com/khelsetu/arena/internal/platform/logging"
	"github.com/khelsetu/arena/internal/platform/resilience"
	"github.com/khelsetu/arena/internal/usecase"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// NewHTTPServer wires repositories, services and the HTTP router from
// configuration. The returned cleanup closes the database pool and must be
// called after the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	resultRepo, accountRepo, profileRepo, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	leaderboardSvc := usecase.NewLeaderboardService(resultRepo, accountRepo, profileRepo).
		WithWorkers(cfg.LeaderboardWorkers)
	summarySvc := usecase.NewSummaryService(resultRepo)
	athleteSvc := usecase.NewAthleteService(resultRepo, accountRepo, profileRepo)
	resultSvc := usecase.NewResultService(resultRepo, accountRepo, idgen.NewRandomGenerator())

	var geoSvc httpapi.GeoService
	if cfg.GeodataEnabled {
		geoSvc = geodata.NewClient(geodata.ClientConfig{
			BaseURL: cfg.GeodataBaseURL,
			APIKey:  cfg.GeodataAPIKey,
			Timeout: cfg.GeodataTimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.GeodataCircuitEnabled,
				FailureThreshold: cfg.GeodataCircuitFailureCount,
				OpenTimeout:      cfg.GeodataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.GeodataCircuitHalfOpenMaxReq,
			},
		})
	}

	handler := httpapi.NewHandler(
		leaderboardSvc,
		summarySvc,
		athleteSvc,
		resultSvc,
		geoSvc,
		cfg.LeaderboardDefaultView,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup(context.Background())
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (
	result.Repository,
	account.Repository,
	profile.Repository,
	func(context.Context) error,
	error,
) {
	noopCleanup := func(context.Context) error { return nil }

	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty", "env", cfg.AppEnv)
		return withCache(cfg,
			memory.NewResultRepository(memory.SeedResults()),
			memory.NewAccountRepository(memory.SeedAccounts()),
			memory.NewProfileRepository(memory.SeedProfiles()),
			noopCleanup,
		)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	cleanup := func(context.Context) error { return db.Close() }
	return withCache(cfg,
		postgres.NewResultRepository(db),
		postgres.NewAccountRepository(db),
		postgres.NewProfileRepository(db),
		cleanup,
	)
}

func withCache(
	cfg config.Config,
	resultRepo result.Repository,
	accountRepo account.Repository,
	profileRepo profile.Repository,
	cleanup func(context.Context) error,
) (result.Repository, account.Repository, profile.Repository, func(context.Context) error, error) {
	if !cfg.CacheEnabled {
		return resultRepo, accountRepo, profileRepo, cleanup, nil
	}

	store := basecache.NewStore(cfg.CacheTTL)
	return cacherepo.NewResultRepository(resultRepo, store),
		cacherepo.NewAccountRepository(accountRepo, store),
		cacherepo.NewProfileRepository(profileRepo, store),
		cleanup,
		nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}

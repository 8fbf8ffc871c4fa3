package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/league-admin/internal/config"
	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/domain/team"
	cacherepo "github.com/riskibarqy/league-admin/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-admin/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/league-admin/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-admin/internal/platform/cache"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
	"github.com/riskibarqy/league-admin/internal/usecase"
	"github.com/sourcegraph/conc/pool"
)

const cacheNamespace = "league-admin"

// App wires the store, services and HTTP surface for one process.
type App struct {
	cfg    config.Config
	logger *logging.Logger

	server   *http.Server
	services httpapi.Services

	gateway *database.Gateway
	redis   *redis.Client
}

type repositories struct {
	teams         team.Repository
	players       player.Repository
	civilizations civilization.Repository
	maps          gamemap.Repository
	games         game.Repository
	health        httpapi.HealthChecker
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}

	repos, err := a.buildRepositories()
	if err != nil {
		return nil, err
	}
	if err := a.wrapWithCache(ctx, &repos); err != nil {
		a.close()
		return nil, err
	}

	a.services = httpapi.Services{
		Teams:         usecase.NewTeamService(repos.teams),
		Players:       usecase.NewPlayerService(repos.players),
		Civilizations: usecase.NewCivilizationService(repos.civilizations),
		Maps:          usecase.NewMapService(repos.maps),
		Games:         usecase.NewGameService(repos.games),
	}

	if cfg.DB.Driver == database.DriverMemory {
		if err := SeedReferenceData(ctx, a.services.Civilizations, a.services.Maps); err != nil {
			a.close()
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
	}

	handler := httpapi.NewHandler(a.services, repos.health, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildRepositories() (repositories, error) {
	if a.cfg.DB.Driver == database.DriverMemory {
		store := memory.NewStore()
		a.logger.Info("using in-memory store")
		return repositories{
			teams:         store.Teams(),
			players:       store.Players(),
			civilizations: store.Civilizations(),
			maps:          store.Maps(),
			games:         store.Games(),
		}, nil
	}

	gateway, err := database.NewGateway(a.cfg.DB, a.logger)
	if err != nil {
		return repositories{}, fmt.Errorf("build database gateway: %w", err)
	}
	a.gateway = gateway

	return repositories{
		teams:         sqlstore.NewTeamRepository(gateway),
		players:       sqlstore.NewPlayerRepository(gateway),
		civilizations: sqlstore.NewCivilizationRepository(gateway),
		maps:          sqlstore.NewMapRepository(gateway),
		games:         sqlstore.NewGameRepository(gateway),
		health:        gateway,
	}, nil
}

// wrapWithCache puts the read-mostly reference lists behind the configured
// cache backend. Players and games are left uncached because their reads
// join names from other tables.
func (a *App) wrapWithCache(ctx context.Context, repos *repositories) error {
	if !a.cfg.CacheEnabled {
		a.logger.Info("cache disabled", "reason", "CACHE_ENABLED=false")
		return nil
	}

	var backend cache.Backend
	switch a.cfg.CacheDriver {
	case config.CacheDriverRedis:
		client, err := cache.NewRedisClient(ctx, a.cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis cache: %w", err)
		}
		a.redis = client
		backend = cache.NewRedisBackend(client, cacheNamespace, a.cfg.CacheTTL)
	default:
		backend = cache.NewStore(a.cfg.CacheTTL)
	}

	c := cache.New(backend, a.logger)
	repos.teams = cacherepo.NewTeamRepository(repos.teams, c)
	repos.civilizations = cacherepo.NewCivilizationRepository(repos.civilizations, c)
	repos.maps = cacherepo.NewMapRepository(repos.maps, c)

	a.logger.Info("cache enabled", "driver", a.cfg.CacheDriver, "ttl", a.cfg.CacheTTL.String())
	return nil
}

func (a *App) Server() *http.Server {
	return a.server
}

func (a *App) Services() httpapi.Services {
	return a.services
}

// Warm loads the cached lists concurrently. Failures are logged and do not
// stop startup.
func (a *App) Warm(ctx context.Context) {
	if !a.cfg.CacheEnabled {
		return
	}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := a.services.Teams.List(ctx)
		return warmError("teams", err)
	})
	p.Go(func(ctx context.Context) error {
		_, err := a.services.Civilizations.List(ctx)
		return warmError("civilizations", err)
	})
	p.Go(func(ctx context.Context) error {
		_, err := a.services.Maps.List(ctx)
		return warmError("maps", err)
	})

	if err := p.Wait(); err != nil {
		a.logger.WarnContext(ctx, "cache warm-up incomplete", "error", err)
		return
	}
	a.logger.InfoContext(ctx, "cache warmed")
}

func warmError(name string, err error) error {
	if err != nil {
		return fmt.Errorf("warm %s: %w", name, err)
	}
	return nil
}

// Run serves HTTP until the server is shut down.
func (a *App) Run() error {
	a.logger.Info("http server starting", "addr", a.server.Addr, "db_driver", a.cfg.DB.Driver)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then releases the store and cache
// connections.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if closeErr := a.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

func (a *App) close() error {
	var errs []error
	if a.gateway != nil {
		if err := a.gateway.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

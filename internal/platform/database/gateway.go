package database

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
	"github.com/riskibarqy/league-admin/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver(string(DriverSQLite), sqlx.DOLLAR)
}

// Gateway owns the process-wide database handle. The handle is opened on
// first use; concurrent first callers share a single open attempt and a
// failed attempt is retried by the next caller.
type Gateway struct {
	cfg    Config
	logger *logging.Logger

	flight resilience.SingleFlight
	mu     sync.RWMutex
	db     *sqlx.DB
}

func NewGateway(cfg Config, logger *logging.Logger) (*Gateway, error) {
	if !cfg.Driver.SQL() {
		return nil, fmt.Errorf("gateway requires a sql driver, got %q", cfg.Driver)
	}
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("DB_URL is required for driver %s", cfg.Driver)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Gateway{cfg: cfg, logger: logger}, nil
}

func (g *Gateway) Driver() Driver {
	return g.cfg.Driver
}

const openTimeout = 30 * time.Second

// Acquire returns the shared handle, opening it when needed.
func (g *Gateway) Acquire(ctx context.Context) (*sqlx.DB, error) {
	if db := g.current(); db != nil {
		return db, nil
	}

	value, err, _ := g.flight.Do("open", func() (any, error) {
		if db := g.current(); db != nil {
			return db, nil
		}

		// Shared with every waiting caller: bounded by openTimeout, not by
		// the leader's ctx.
		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), openTimeout)
		defer cancel()

		db, err := g.open(openCtx)
		if err != nil {
			return nil, err
		}

		g.mu.Lock()
		g.db = db
		g.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*sqlx.DB), nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	db, err := g.Acquire(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}

func (g *Gateway) current() *sqlx.DB {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.db
}

func (g *Gateway) open(ctx context.Context) (*sqlx.DB, error) {
	if g.cfg.AutoMigrate {
		if err := Migrate(ctx, g.cfg, g.logger); err != nil {
			return nil, fmt.Errorf("sync schema: %w", err)
		}
	}

	opts := []otelsql.Option{
		otelsql.WithDBSystem(g.dbSystem()),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	}
	if name := dbNameFromURL(g.cfg.Driver, g.cfg.URL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open(string(g.cfg.Driver), g.cfg.DSN(), opts...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", g.cfg.Driver, err)
	}

	g.applyPool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", g.cfg.Driver, err)
	}

	g.logger.InfoContext(ctx, "database connected", "driver", g.cfg.Driver)
	return db, nil
}

func (g *Gateway) applyPool(db *sqlx.DB) {
	if g.cfg.Driver == DriverSQLite {
		// sqlite serializes writers; queries inside a tx must use the tx
		db.SetMaxOpenConns(1)
		return
	}
	if g.cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(g.cfg.MaxOpenConns)
	}
	if g.cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(g.cfg.MaxIdleConns)
	}
	if g.cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(g.cfg.ConnMaxLifetime)
	}
}

func (g *Gateway) dbSystem() string {
	if g.cfg.Driver == DriverPostgres {
		return "postgresql"
	}
	return "sqlite"
}

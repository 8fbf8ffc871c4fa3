package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/league-admin/internal/app"
	"github.com/riskibarqy/league-admin/internal/config"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
)

func main() {
	opts := options{}
	flag.IntVar(&opts.Teams, "teams", 6, "number of teams to create")
	flag.IntVar(&opts.PlayersPerTeam, "players", 4, "players per team")
	flag.IntVar(&opts.Games, "games", 20, "number of games to create")
	flag.IntVar(&opts.PlayersPerSide, "per-side", 2, "participants per side in each game")
	flag.IntVar(&opts.Workers, "workers", 4, "concurrent game writers")
	flag.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", "league-admin-seed")
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, opts, logger)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, logger *logging.Logger) error {
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return err
	}
	defer func() {
		if err := application.Shutdown(context.Background()); err != nil {
			logger.Warn("release store", "error", err)
		}
	}()

	result, err := newSeeder(application.Services(), opts.Seed, logger).run(ctx, opts)
	if err != nil {
		logger.Error("seed failed", "error", err)
		return err
	}

	logger.Info("seed complete",
		"teams", result.Teams,
		"players", result.Players,
		"civilizations", result.Civilizations,
		"maps", result.Maps,
		"games_created", result.GamesCreated,
		"games_failed", result.GamesFailed,
		"seed", opts.Seed,
		"db_driver", cfg.DB.Driver,
	)
	return nil
}

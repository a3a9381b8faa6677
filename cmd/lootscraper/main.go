package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yuridiegotech/CabalOnline/internal/bootstrap"
	"github.com/Yuridiegotech/CabalOnline/internal/config"
	"github.com/Yuridiegotech/CabalOnline/internal/discord"
	"github.com/Yuridiegotech/CabalOnline/internal/handler"
	"github.com/Yuridiegotech/CabalOnline/internal/scheduler"
	"github.com/Yuridiegotech/CabalOnline/internal/scraper"
	"github.com/Yuridiegotech/CabalOnline/internal/server"
	"github.com/Yuridiegotech/CabalOnline/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Loot scraper failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	source, err := discord.NewSource(cfg.DiscordToken, cfg.DiscordChannelID, cfg.FetchLimit)
	if err != nil {
		return err
	}

	sinks, err := bootstrap.InitializeSinks(ctx, cfg)
	if err != nil {
		return err
	}

	svc := scraper.NewService(source, sinks.List, scraper.Options{
		Lookback:        cfg.Lookback,
		DedupeCacheSize: cfg.DedupeCacheSize,
		DedupeTTL:       cfg.DedupeTTL,
	})

	if cfg.RunOnce() {
		defer sinks.Close()
		return svc.RunCycle(ctx)
	}

	pool := worker.NewPool(worker.PollWorkers, worker.PollQueueSize)
	pool.Start(ctx)

	sched := scheduler.New(pool)
	sched.Schedule("poll", cfg.PollInterval, worker.NewPollJob(svc))

	readiness := map[string]handler.HealthChecker{"scraper": svc}
	if sinks.DBPool != nil {
		readiness["database"] = handler.HealthCheckerFunc(sinks.DBPool.Ping)
	}
	srv := server.NewServer(cfg.Port, readiness)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		Sinks:      sinks,
	})

	return runErr
}

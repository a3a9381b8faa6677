package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Yuridiegotech/CabalOnline/internal/scheduler"
	"github.com/Yuridiegotech/CabalOnline/internal/server"
	"github.com/Yuridiegotech/CabalOnline/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	Sinks      *Sinks
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (no new cycles are enqueued)
// 3. Worker pool (wait for the in-flight cycle)
// 4. Sinks (release the database pool)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Sinks != nil {
		components.Sinks.Close()
	}

	slog.Info(LogMsgStopped)
}

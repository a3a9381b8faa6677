package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yuridiegotech/CabalOnline/internal/config"
	"github.com/Yuridiegotech/CabalOnline/internal/database"
	"github.com/Yuridiegotech/CabalOnline/internal/database/postgres"
	"github.com/Yuridiegotech/CabalOnline/internal/sink"
)

// Sinks holds every enabled sink in write order plus the database pool
// behind the Postgres sink, which is nil when that sink is disabled.
type Sinks struct {
	List   []sink.Sink
	DBPool *pgxpool.Pool
}

// InitializeSinks builds the sinks enabled in cfg. The JSON log is always
// written first so a local copy exists even when remote sinks fail.
func InitializeSinks(ctx context.Context, cfg *config.Config) (*Sinks, error) {
	sinks := &Sinks{
		List: []sink.Sink{sink.NewJSONLog(cfg.LootLogPath)},
	}
	slog.Info(LogMsgSinkEnabled, "sink", sink.NameJSONLog, "path", cfg.LootLogPath)

	if cfg.SheetsEnabled {
		sheetsSink, err := sink.NewSheets(ctx, cfg.GoogleCredentialsFile, cfg.GoogleSheetID, cfg.GoogleWorksheet)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateSheetsSink, err)
		}
		sinks.List = append(sinks.List, sheetsSink)
		slog.Info(LogMsgSinkEnabled, "sink", sink.NameSheets, "worksheet", cfg.GoogleWorksheet)
	}

	if cfg.PostgresSinkEnabled {
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}
		sinks.DBPool = pool
		sinks.List = append(sinks.List, sink.NewPostgres(postgres.NewLootRecordRepository(pool)))
		slog.Info(LogMsgSinkEnabled, "sink", sink.NamePostgres, "host", cfg.DBHost, "database", cfg.DBName)
	}

	return sinks, nil
}

// Close releases resources held by the sinks
func (s *Sinks) Close() {
	if s.DBPool != nil {
		s.DBPool.Close()
	}
}

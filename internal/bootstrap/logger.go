package bootstrap

import (
	"log/slog"
	"slices"

	"github.com/Yuridiegotech/CabalOnline/internal/config"
	"github.com/Yuridiegotech/CabalOnline/internal/handler"
	"github.com/Yuridiegotech/CabalOnline/internal/logger"
)

// SetupLogger initializes the application logger from cfg and logs the
// startup banner and any configuration warnings.
func SetupLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := slices.Contains(SourceLogEnvironments, cfg.Environment)

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.VersionString(),
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingScraper,
		"environment", cfg.Environment,
		"run_once", cfg.RunOnce(),
		"poll_interval", cfg.PollInterval)

	slog.Debug(LogMsgConfigurationLoaded,
		"channel_id", cfg.DiscordChannelID,
		"fetch_limit", cfg.FetchLimit,
		"lookback", cfg.Lookback,
		"loot_log_path", cfg.LootLogPath,
		"sheets_enabled", cfg.SheetsEnabled,
		"postgres_sink_enabled", cfg.PostgresSinkEnabled,
		"port", cfg.Port)

	for _, w := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}

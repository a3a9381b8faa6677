package config

import "time"

// Environment variable names
const (
	EnvDiscordToken          = "DISCORD_BOT_TOKEN"
	EnvDiscordChannelID      = "DISCORD_CHANNEL_ID"
	EnvFetchLimit            = "FETCH_LIMIT"
	EnvPollInterval          = "POLL_INTERVAL"
	EnvLookback              = "LOOKBACK"
	EnvDedupeCacheSize       = "DEDUPE_CACHE_SIZE"
	EnvDedupeTTL             = "DEDUPE_TTL"
	EnvLootLogPath           = "LOOT_LOG_PATH"
	EnvSheetsEnabled         = "SHEETS_ENABLED"
	EnvGoogleSheetID         = "GOOGLE_SHEET_ID"
	EnvGoogleCredentialsFile = "GOOGLE_CREDENTIALS_FILE"
	EnvGoogleWorksheet       = "GOOGLE_WORKSHEET"
	EnvPostgresSinkEnabled   = "POSTGRES_SINK_ENABLED"
	EnvDBUser                = "DB_USER"
	EnvDBPassword            = "DB_PASSWORD"
	EnvDBHost                = "DB_HOST"
	EnvDBPort                = "DB_PORT"
	EnvDBName                = "DB_NAME"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime     = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime     = "DB_MAX_CONN_LIFETIME"
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
)

// Defaults
const (
	DefaultFetchLimit        = 50
	DefaultDedupeCacheSize   = 1000
	DefaultDedupeTTL         = 24 * time.Hour
	DefaultLootLogPath       = "data/loot_log.json"
	DefaultCredentialsFile   = "credentials.json"
	DefaultWorksheet         = "Dados"
	DefaultDBMaxConns        = 4
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultPort              = "8080"
)

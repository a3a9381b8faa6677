package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is loaded once at startup
// and shared by pointer; nothing modifies it after Load returns.
type Config struct {
	// Discord
	DiscordToken     string `env:"DISCORD_BOT_TOKEN" validate:"required"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID" validate:"required,numeric"`
	FetchLimit       int    `env:"FETCH_LIMIT" validate:"min=1,max=100"`

	// Cycle behaviour
	PollInterval    time.Duration `env:"POLL_INTERVAL" validate:"gte=0"`
	Lookback        time.Duration `env:"LOOKBACK" validate:"gte=0"`
	DedupeCacheSize int           `env:"DEDUPE_CACHE_SIZE" validate:"min=1"`
	DedupeTTL       time.Duration `env:"DEDUPE_TTL" validate:"gt=0"`

	// JSON log sink
	LootLogPath string `env:"LOOT_LOG_PATH" validate:"required"`

	// Google Sheets sink
	SheetsEnabled         bool   `env:"SHEETS_ENABLED"`
	GoogleSheetID         string `env:"GOOGLE_SHEET_ID" validate:"required_if=SheetsEnabled true"`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" validate:"required_if=SheetsEnabled true"`
	GoogleWorksheet       string `env:"GOOGLE_WORKSHEET" validate:"required_if=SheetsEnabled true"`

	// Postgres sink
	PostgresSinkEnabled bool          `env:"POSTGRES_SINK_ENABLED"`
	DBUser              string        `env:"DB_USER" validate:"required_if=PostgresSinkEnabled true"`
	DBPassword          string        `env:"DB_PASSWORD"`
	DBHost              string        `env:"DB_HOST" validate:"required_if=PostgresSinkEnabled true"`
	DBPort              string        `env:"DB_PORT" validate:"required_if=PostgresSinkEnabled true"`
	DBName              string        `env:"DB_NAME" validate:"required_if=PostgresSinkEnabled true"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" validate:"min=1"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME"`

	// Health and metrics server, daemon mode only
	Port int `env:"PORT" validate:"min=0,max=65535"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=json text"`
	Environment string `env:"ENVIRONMENT"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:     getEnv(EnvDiscordToken, ""),
		DiscordChannelID: getEnv(EnvDiscordChannelID, ""),
		FetchLimit:       getEnvAsInt(EnvFetchLimit, DefaultFetchLimit),

		PollInterval:    getEnvAsDuration(EnvPollInterval, 0),
		Lookback:        getEnvAsDuration(EnvLookback, 0),
		DedupeCacheSize: getEnvAsInt(EnvDedupeCacheSize, DefaultDedupeCacheSize),
		DedupeTTL:       getEnvAsDuration(EnvDedupeTTL, DefaultDedupeTTL),

		LootLogPath: getEnv(EnvLootLogPath, DefaultLootLogPath),

		SheetsEnabled:         getEnvAsBool(EnvSheetsEnabled, true),
		GoogleSheetID:         getEnv(EnvGoogleSheetID, ""),
		GoogleCredentialsFile: getEnv(EnvGoogleCredentialsFile, DefaultCredentialsFile),
		GoogleWorksheet:       getEnv(EnvGoogleWorksheet, DefaultWorksheet),

		PostgresSinkEnabled: getEnvAsBool(EnvPostgresSinkEnabled, false),
		DBUser:              getEnv(EnvDBUser, "postgres"),
		DBPassword:          getEnv(EnvDBPassword, "postgres"),
		DBHost:              getEnv(EnvDBHost, "localhost"),
		DBPort:              getEnv(EnvDBPort, "5432"),
		DBName:              getEnv(EnvDBName, "cabal_loot"),
		DBMaxConns:          getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime:   getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime:   getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, "info")),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, "text")),
		Environment: getEnv(EnvEnvironment, "dev"),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RunOnce reports whether a single cycle should run instead of polling
func (c *Config) RunOnce() bool {
	return c.PollInterval == 0
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the duration value of key, or defaultValue when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool returns the boolean value of key, or defaultValue when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"coinbot"`
	Version     string `envconfig:"VERSION" default:"dev"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	Port        int    `envconfig:"PORT" default:"8080"`

	// LogDir additionally writes a session log file there when set
	LogDir string `envconfig:"LOG_DIR"`

	// TrustedProxies may set X-Forwarded-For on ops requests, comma separated
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"sqlite"`
	SQLitePath     string `envconfig:"SQLITE_PATH" default:"coins.db"`

	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBName     string `envconfig:"DB_NAME" default:"coinbot"`

	DBMaxConns        int           `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMinConns        int           `envconfig:"DB_MIN_CONNS" default:"2"`
	DBMaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBMaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`

	DiscordToken string `envconfig:"DISCORD_TOKEN"`

	// AdminIDs is the allow-list for privileged commands, comma separated
	AdminIDs []string `envconfig:"ADMIN_IDS"`

	PurchaseTimeout      time.Duration `envconfig:"PURCHASE_TIMEOUT" default:"30s"`
	MaxPendingSelections int           `envconfig:"MAX_PENDING_SELECTIONS" default:"1024"`

	// RandomSeed fixes the outcome resolver's sequence when non-zero
	RandomSeed uint64 `envconfig:"RANDOM_SEED" default:"0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.AdminIDs = normalizeIDs(cfg.AdminIDs)
	cfg.TrustedProxies = normalizeIDs(cfg.TrustedProxies)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express as tags
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s, %s or %s",
			c.StorageBackend, BackendMemory, BackendSQLite, BackendPostgres)
	}

	if c.StorageBackend == BackendSQLite && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH must be set when STORAGE_BACKEND=%s", BackendSQLite)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}

	if c.PurchaseTimeout <= 0 {
		return fmt.Errorf("PURCHASE_TIMEOUT must be positive, got %s", c.PurchaseTimeout)
	}

	if c.MaxPendingSelections <= 0 {
		return fmt.Errorf("MAX_PENDING_SELECTIONS must be positive, got %d", c.MaxPendingSelections)
	}

	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}

	return nil
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

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

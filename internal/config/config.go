package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`

	// API key for authentication; empty disables the check
	APIKey         string
	TrustedProxies []string

	StoreBackend string `validate:"oneof=file memory postgres"`
	SaveDir      string `validate:"required_if=StoreBackend file"`

	DBUser     string
	DBPassword string
	DBHost     string `validate:"required_if=StoreBackend postgres"`
	DBPort     string
	DBName     string `validate:"required_if=StoreBackend postgres"`
	DBMaxConns int    `validate:"min=1,max=100"`

	TickRate         int           `validate:"min=1,max=240"`
	MaxTickDelta     time.Duration `validate:"min=1ms,max=1m"`
	AutosaveInterval time.Duration `validate:"min=1s"`
	SnapshotInterval time.Duration `validate:"min=50ms"`
	SessionIdleTTL   time.Duration `validate:"min=1s"`
	MaxSessions      int           `validate:"min=1"`
	WorkerCount      int           `validate:"min=1,max=64"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:       getEnv(EnvLogDir, DefaultLogDir),
		Environment:  getEnv(EnvEnvironment, EnvironmentDev),
		APIKey:       getEnv(EnvAPIKey, ""),
		StoreBackend: strings.ToLower(getEnv(EnvStoreBackend, DefaultStoreBackend)),
		SaveDir:      getEnv(EnvSaveDir, DefaultSaveDir),
		DBUser:       getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:   getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:       getEnv(EnvDBHost, DefaultDBHost),
		DBPort:       getEnv(EnvDBPort, DefaultDBPort),
		DBName:       getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:   getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),

		TickRate:         getEnvAsInt(EnvTickRate, DefaultTickRate),
		MaxTickDelta:     getEnvAsDuration(EnvMaxTickDelta, DefaultMaxTickDelta),
		AutosaveInterval: getEnvAsDuration(EnvAutosaveInterval, DefaultAutosaveInterval),
		SnapshotInterval: getEnvAsDuration(EnvSnapshotInterval, DefaultSnapshotInterval),
		SessionIdleTTL:   getEnvAsDuration(EnvSessionIdleTTL, DefaultSessionIdleTTL),
		MaxSessions:      getEnvAsInt(EnvMaxSessions, DefaultMaxSessions),
		WorkerCount:      getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
	}

	if proxies := getEnv(EnvTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// PORT is the one value where a typo should stop startup rather than fall back
	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration ("30s", "15m"), falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
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

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvironmentProduction)
}

package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvStoreBackend     = "STORE_BACKEND"
	EnvSaveDir          = "SAVE_DIR"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBName           = "DB_NAME"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvTickRate         = "TICK_RATE_HZ"
	EnvMaxTickDelta     = "MAX_TICK_DELTA"
	EnvAutosaveInterval = "AUTOSAVE_INTERVAL"
	EnvSnapshotInterval = "SNAPSHOT_INTERVAL"
	EnvSessionIdleTTL   = "SESSION_IDLE_TTL"
	EnvMaxSessions      = "MAX_SESSIONS"
	EnvWorkerCount      = "WORKER_COUNT"
)

// Store backends
const (
	StoreBackendFile     = "file"
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultStoreBackend     = StoreBackendFile
	DefaultSaveDir          = "saves"
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "idle_animal_kingdom"
	DefaultDBMaxConns       = 10
	DefaultTickRate         = 30
	DefaultMaxTickDelta     = time.Second
	DefaultAutosaveInterval = 30 * time.Second
	DefaultSnapshotInterval = 500 * time.Millisecond
	DefaultSessionIdleTTL   = 15 * time.Minute
	DefaultMaxSessions      = 256
	DefaultWorkerCount      = 2
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgInvalidPort   = "invalid PORT value: %w"
	ErrMsgInvalidConfig = "invalid configuration: %s"
)

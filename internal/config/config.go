package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Grading   GradingConfig   `yaml:"grading"`
	Exercise  ExerciseConfig  `yaml:"exercise"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id,X-Session-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver     string `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"postgres"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"wordflow.db"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement server-side; 0 leaves the
	// server default in place.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"0s"`
	AutoMigrate      bool          `yaml:"auto_migrate"      env:"DATABASE_AUTO_MIGRATE"      env-default:"false"`
}

// RedisConfig holds the replay cache connection. An empty Addr disables it.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// Enabled reports whether the replay cache should be used.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// AuthConfig holds bearer token validation settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"wordflow"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// GradingConfig holds grading pipeline limits.
type GradingConfig struct {
	TxTimeout          time.Duration `yaml:"tx_timeout"           env:"GRADING_TX_TIMEOUT"           env-default:"5s"`
	ResetRecentDefault int           `yaml:"reset_recent_default" env:"GRADING_RESET_RECENT_DEFAULT" env-default:"50"`
	MaxBatchSize       int           `yaml:"max_batch_size"       env:"GRADING_MAX_BATCH_SIZE"       env-default:"20"`
	DueFeedLimit       int           `yaml:"due_feed_limit"       env:"GRADING_DUE_FEED_LIMIT"       env-default:"100"`
	ReplayTTL          time.Duration `yaml:"replay_ttl"           env:"GRADING_REPLAY_TTL"           env-default:"24h"`
}

// ExerciseConfig holds exercise generation parameters.
type ExerciseConfig struct {
	DistractorCount int `yaml:"distractor_count" env:"EXERCISE_DISTRACTOR_COUNT" env-default:"3"`
	RetryBudget     int `yaml:"retry_budget"     env:"EXERCISE_RETRY_BUDGET"     env-default:"3"`
	MatchingSize    int `yaml:"matching_size"    env:"EXERCISE_MATCHING_SIZE"    env-default:"5"`
	MatchingMin     int `yaml:"matching_min"     env:"EXERCISE_MATCHING_MIN"     env-default:"4"`
	PageProximity   int `yaml:"page_proximity"   env:"EXERCISE_PAGE_PROXIMITY"   env-default:"3"`
}

// RateLimitConfig holds the per-client request budget.
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Limit   int           `yaml:"limit"   env:"RATE_LIMIT_LIMIT"   env-default:"120"`
	Window  time.Duration `yaml:"window"  env:"RATE_LIMIT_WINDOW"  env-default:"1m"`
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	SQLite   SQLiteConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Snapshot SnapshotConfig
	Advisor  AdvisorConfig
	Reminder ReminderConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	DataDir               string
	SeedOnStart           bool
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SQLiteConfig points at the advisor audit database.
type SQLiteConfig struct {
	Path string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level       string
	Service     string
	Development bool
}

// AuthConfig defines admin token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// SnapshotConfig controls how long a loaded ticket snapshot is reused.
type SnapshotConfig struct {
	CacheTTLSeconds int
}

// AdvisorConfig locates the remote summarization service.
type AdvisorConfig struct {
	BaseURL        string
	APIToken       string
	TimeoutSeconds int
}

// ReminderConfig drives the background reminder worker.
type ReminderConfig struct {
	IntervalSeconds int
	PolicyFile      string
	EmailFrom       string
	WebhookURL      string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	appName := getEnv("APP_NAME", "sla-dashboard")
	appEnv := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:                  appName,
			Env:                   appEnv,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "5168"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			DataDir:               getEnv("DATA_DIR", "data"),
			SeedOnStart:           getEnvAsBool("SEED_ON_START", true),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "advisor_runs.db"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Service:     appName,
			Development: appEnv != "production",
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
		},
		Snapshot: SnapshotConfig{
			CacheTTLSeconds: getEnvAsInt("SNAPSHOT_CACHE_TTL_SECONDS", 30),
		},
		Advisor: AdvisorConfig{
			BaseURL:        os.Getenv("ADVISOR_BASE_URL"),
			APIToken:       os.Getenv("ADVISOR_API_TOKEN"),
			TimeoutSeconds: getEnvAsInt("ADVISOR_TIMEOUT_SECONDS", 10),
		},
		Reminder: ReminderConfig{
			IntervalSeconds: getEnvAsInt("REMINDER_INTERVAL_SECONDS", 3600),
			PolicyFile:      os.Getenv("REMINDER_POLICY_FILE"),
			EmailFrom:       getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			WebhookURL:      getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	return seconds(a.RequestTimeoutSeconds)
}

// TTL returns the snapshot cache lifetime; zero disables caching.
func (s SnapshotConfig) TTL() time.Duration {
	return seconds(s.CacheTTLSeconds)
}

// Timeout returns the per-request timeout for the advisor client.
func (a AdvisorConfig) Timeout() time.Duration {
	return seconds(a.TimeoutSeconds)
}

// Interval returns the reminder sweep period.
func (r ReminderConfig) Interval() time.Duration {
	return seconds(r.IntervalSeconds)
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

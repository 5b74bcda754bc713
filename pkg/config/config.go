package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key"

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Log       LogConfig
	Tasks     TasksConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name         string
	Port         string
	Env          string
	AllowOrigins string // comma separated CORS origins
}

type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	LogLevel   string
}

// RedisConfig backs the stats cache. An empty URL disables it.
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
	StatsTTL time.Duration
}

// NATSConfig backs task event publishing. An empty URL disables it.
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type TasksConfig struct {
	UpcomingLimit      int
	TrashRetentionDays int    // 0 keeps trashed tasks forever
	TrashPurgeCron     string // when the retention job runs
}

type RateLimitConfig struct {
	AuthMax    int
	AuthWindow time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "Taskease"),
			Port:         getEnv("APP_PORT", "8080"),
			Env:          getEnv("APP_ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "taskease"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "taskease.db"),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			StatsTTL: getEnvDuration("REDIS_STATS_TTL", time.Minute),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", defaultJWTSecret),
			TTL:    getEnvDuration("JWT_TTL", 30*24*time.Hour),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 30),
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
		},
		Tasks: TasksConfig{
			UpcomingLimit:      getEnvInt("TASKS_UPCOMING_LIMIT", 5),
			TrashRetentionDays: getEnvInt("TRASH_RETENTION_DAYS", 0),
			TrashPurgeCron:     getEnv("TRASH_PURGE_CRON", "0 3 * * *"),
		},
		RateLimit: RateLimitConfig{
			AuthMax:    getEnvInt("RATE_LIMIT_AUTH_MAX", 10),
			AuthWindow: getEnvDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.Tasks.TrashRetentionDays < 0 {
		return errors.New("TRASH_RETENTION_DAYS cannot be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return value
}

// TrashRetention is zero when the purge job is disabled.
func (c *Config) TrashRetention() time.Duration {
	return time.Duration(c.Tasks.TrashRetentionDays) * 24 * time.Hour
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

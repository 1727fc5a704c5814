package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	PunchClock PunchClockConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Session    SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	Version  string
	LogLevel string
}

// PunchClockConfig points at the remote punch clock API. Either a static
// token or OAuth2 client credentials may be set, not both.
type PunchClockConfig struct {
	BaseURL      string
	APIToken     string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
	Audience     string
	Timeout      time.Duration
	Concurrency  int
}

// DatabaseConfig is optional; without a host preferences are kept in memory.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration. An empty secret leaves the API open.
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig controls the preference cookie and how long unused
// preferences are kept.
type SessionConfig struct {
	MaxAge        time.Duration
	Secure        bool
	PruneEvery    time.Duration
	PreferenceTTL time.Duration
}

func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
		slog.Debug("No .env file found, using environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Punch clock API configuration
	timeout, err := time.ParseDuration(getEnv("PUNCHCLOCK_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCHCLOCK_TIMEOUT: %w", err)
	}
	concurrency, err := strconv.Atoi(getEnv("PUNCHCLOCK_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCHCLOCK_CONCURRENCY: %w", err)
	}

	config.PunchClock = PunchClockConfig{
		BaseURL:      getEnv("PUNCHCLOCK_BASE_URL", ""),
		APIToken:     getEnv("PUNCHCLOCK_API_TOKEN", ""),
		ClientID:     getEnv("PUNCHCLOCK_CLIENT_ID", ""),
		ClientSecret: getEnv("PUNCHCLOCK_CLIENT_SECRET", ""),
		TokenURL:     getEnv("PUNCHCLOCK_TOKEN_URL", ""),
		Scopes:       getEnvSlice("PUNCHCLOCK_SCOPES"),
		Audience:     getEnv("PUNCHCLOCK_AUDIENCE", ""),
		Timeout:      timeout,
		Concurrency:  concurrency,
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "punchclock_dashboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// JWT configuration
	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Session configuration
	sessionMaxAge, err := time.ParseDuration(getEnv("SESSION_MAX_AGE", "2160h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}
	pruneEvery, err := time.ParseDuration(getEnv("PREFERENCE_PRUNE_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREFERENCE_PRUNE_INTERVAL: %w", err)
	}

	config.Session = SessionConfig{
		MaxAge:        sessionMaxAge,
		Secure:        config.App.Env == "production",
		PruneEvery:    pruneEvery,
		PreferenceTTL: sessionMaxAge,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PunchClock.BaseURL == "" {
		return fmt.Errorf("PUNCHCLOCK_BASE_URL is required")
	}
	if u, err := url.Parse(c.PunchClock.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("PUNCHCLOCK_BASE_URL must be an absolute URL")
	}
	if c.PunchClock.APIToken != "" && c.PunchClock.ClientID != "" {
		return fmt.Errorf("set either PUNCHCLOCK_API_TOKEN or PUNCHCLOCK_CLIENT_ID, not both")
	}
	if c.PunchClock.ClientID != "" && c.PunchClock.TokenURL == "" {
		return fmt.Errorf("PUNCHCLOCK_TOKEN_URL is required with PUNCHCLOCK_CLIENT_ID")
	}
	if c.PunchClock.Timeout <= 0 {
		return fmt.Errorf("PUNCHCLOCK_TIMEOUT must be positive")
	}
	if c.PunchClock.Concurrency <= 0 {
		return fmt.Errorf("PUNCHCLOCK_CONCURRENCY must be positive")
	}
	if c.Database.Host != "" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when DB_HOST is set")
	}
	if c.Session.PruneEvery <= 0 {
		return fmt.Errorf("PREFERENCE_PRUNE_INTERVAL must be positive")
	}
	return nil
}

// DatabaseEnabled reports whether preferences are stored in PostgreSQL.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// AuthEnabled reports whether the API requires bearer tokens.
func (c *Config) AuthEnabled() bool {
	return c.JWT.Secret != ""
}

// LogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

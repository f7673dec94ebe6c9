package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Logger      LoggerConfig
	Auth        AuthConfig
	Storage     StorageConfig
	Tracing     TracingConfig
	Diagnostics DiagnosticsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	URL             string // overrides the discrete settings when set
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	AutoMigrate     bool
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds admin login and session token configuration.
type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminEmails       []string
	AdminPasswordHash string
	AdminPassword     string
}

// StorageConfig holds configuration for the product image bucket.
type StorageConfig struct {
	Enabled        bool
	Bucket         string
	Region         string
	Folder         string
	Endpoint       string // S3-compatible endpoint, empty for AWS
	PublicBaseURL  string
	UsePathStyle   bool
	MaxUploadBytes int64
}

// TracingConfig toggles the OpenTelemetry stdout exporter.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

// DiagnosticsConfig holds the metrics/pprof side server configuration.
type DiagnosticsConfig struct {
	Enabled bool
	Port    int
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 5000),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "fashionhub"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 2),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			TokenTTL:          getEnvAsDuration("TOKEN_TTL", time.Hour),
			AdminEmails:       getEnvAsList("ADMIN_EMAILS"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		},
		Storage: StorageConfig{
			Enabled:        getEnvAsBool("STORAGE_ENABLED", false),
			Bucket:         getEnv("STORAGE_BUCKET", ""),
			Region:         getEnv("STORAGE_REGION", "us-east-1"),
			Folder:         getEnv("STORAGE_FOLDER", "products"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", ""),
			PublicBaseURL:  getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			UsePathStyle:   getEnvAsBool("STORAGE_PATH_STYLE", false),
			MaxUploadBytes: int64(getEnvAsInt("STORAGE_MAX_UPLOAD_BYTES", 10<<20)),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("TRACING_ENABLED", false),
			ServiceName: getEnv("SERVICE_NAME", "fashionhub-api"),
		},
		Diagnostics: DiagnosticsConfig{
			Enabled: getEnvAsBool("DIAGNOSTICS_ENABLED", false),
			Port:    getEnvAsInt("DIAGNOSTICS_PORT", 9090),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.URL == "" {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if len(c.Auth.AdminEmails) == 0 {
		return fmt.Errorf("at least one admin email is required")
	}

	if c.Auth.AdminPasswordHash == "" && c.Auth.AdminPassword == "" {
		return fmt.Errorf("admin password or password hash is required")
	}

	if c.Auth.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Auth.AdminPasswordHash)); err != nil {
			return fmt.Errorf("invalid admin password hash: %w", err)
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Storage.Enabled {
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required when storage is enabled")
		}
		if c.Storage.Region == "" {
			return fmt.Errorf("storage region is required when storage is enabled")
		}
		if c.Storage.MaxUploadBytes < 1 {
			return fmt.Errorf("storage max upload bytes must be positive")
		}
	}

	if c.Diagnostics.Enabled && (c.Diagnostics.Port < 1 || c.Diagnostics.Port > 65535) {
		return fmt.Errorf("invalid diagnostics port: %d", c.Diagnostics.Port)
	}

	return nil
}

// PasswordHash returns the bcrypt hash of the admin password. A configured
// hash must parse as bcrypt; a plaintext password is hashed on each call, so
// callers should invoke this once at startup.
func (c *AuthConfig) PasswordHash() ([]byte, error) {
	if c.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return []byte(c.AdminPasswordHash), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return hash, nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		sslMode,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated environment variable, dropping blanks.
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

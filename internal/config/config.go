package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yigit/devacademy/internal/pkg/helpers"
	"gopkg.in/yaml.v3"
)

// Server modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// Config structure represents the application configuration.
// It is built once at start-up and treated as read-only afterwards.
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT,PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE,APP_ENV"`
		StoragePath     string `yaml:"storage_path" env:"STORAGE_PATH"`
		PublicBaseURL   string `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
		MaxUploadSize   int64  `yaml:"max_upload_size" env:"MAX_UPLOAD_SIZE"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsPath  string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
		SeedDefaults    bool   `yaml:"seed_defaults" env:"DB_SEED_DEFAULTS"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET,SECRET_KEY"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, a YAML file, a .env file
// and environment variables, in that order of precedence (last wins).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env never overrides variables already set in the process environment
	_ = godotenv.Load()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = ModeDevelopment
	config.Server.StoragePath = "uploads"
	config.Server.MaxUploadSize = 5 << 20
	config.Server.ShutdownTimeout = "10s"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "devacademy"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsPath = "migrations"
	config.Database.SeedDefaults = true

	// JWT defaults
	config.JWT.AccessTokenExpiration = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid.
// A missing JWT secret is allowed here; see Warnings.
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Server.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	return nil
}

// Warnings lists settings that allow start-up but break some endpoints.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.JWT.Secret == "" {
		warnings = append(warnings, "JWT secret is not set; login and token refresh will fail with a configuration error")
	}
	if c.IsProduction() && strings.HasPrefix(c.Server.PublicBaseURL, "http://") {
		warnings = append(warnings, "public base URL is not HTTPS while secure cookies are enabled")
	}
	return warnings
}

// IsProduction reports whether cookies should be issued with production flags
func (c *Config) IsProduction() bool {
	return c.Server.Mode == ModeProduction
}

// AccessTokenTTL returns the configured token lifetime (1h by default)
func (c *Config) AccessTokenTTL() time.Duration {
	return helpers.ParseDuration(c.JWT.AccessTokenExpiration, time.Hour)
}

// ShutdownTimeout returns how long graceful shutdown may take
func (c *Config) ShutdownTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

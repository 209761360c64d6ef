package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
	TagCacheTTL   time.Duration

	// Media storage
	S3BucketName string
	AWSRegion    string

	// Schema limits
	MinCookingTime      int
	MinIngredientAmount int
}

// lookupFunc resolves a single configuration key. Keys are the lowercase
// docker secret names; environment lookups upper-case them.
type lookupFunc func(key string) string

// configKeys lists every key LoadConfig resolves
var configKeys = []string{
	"db_driver",
	"db_host",
	"db_port",
	"db_user",
	"db_password",
	"db_name",
	"db_ssl_mode",
	"sqlite_path",
	"redis_host",
	"redis_port",
	"redis_password",
	"redis_db",
	"redis_url",
	"tag_cache_ttl",
	"s3_bucket_name",
	"aws_region",
	"min_cooking_time",
	"min_ingredient_amount",
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI from environment variables only
func loadCIConfig(cfg *Config) error {
	return apply(cfg, lookupEnv)
}

// loadDevConfig loads configuration for development and test. Docker
// secrets win; anything without a secret file falls back to the environment.
func loadDevConfig(cfg *Config) error {
	return apply(cfg, func(key string) string {
		if v := readSecret(key); v != "" {
			return v
		}
		return lookupEnv(key)
	})
}

// loadProdConfig loads configuration for production using ONLY Docker secrets
func loadProdConfig(cfg *Config) error {
	return apply(cfg, readSecret)
}

// apply fills cfg from lookup, then fills in defaults for unset values
func apply(cfg *Config, lookup lookupFunc) error {
	values := make(map[string]string, len(configKeys))
	for _, key := range configKeys {
		values[key] = lookup(key)
	}

	cfg.DBDriver = withDefault(values["db_driver"], DriverPostgres)
	cfg.DBHost = values["db_host"]
	cfg.DBPort = withDefault(values["db_port"], "5432")
	cfg.DBUser = values["db_user"]
	cfg.DBPassword = values["db_password"]
	cfg.DBName = values["db_name"]
	cfg.DBSSLMode = withDefault(values["db_ssl_mode"], "disable")
	cfg.SQLitePath = withDefault(values["sqlite_path"], "foodgram.db")
	cfg.RedisHost = values["redis_host"]
	cfg.RedisPort = withDefault(values["redis_port"], "6379")
	cfg.RedisPassword = values["redis_password"]
	cfg.RedisURL = values["redis_url"]
	cfg.S3BucketName = withDefault(values["s3_bucket_name"], "foodgram-media")
	cfg.AWSRegion = values["aws_region"]

	var err error
	if cfg.RedisDB, err = parseInt("redis_db", values["redis_db"], 0); err != nil {
		return err
	}
	if cfg.MinCookingTime, err = parseInt("min_cooking_time", values["min_cooking_time"], 1); err != nil {
		return err
	}
	if cfg.MinIngredientAmount, err = parseInt("min_ingredient_amount", values["min_ingredient_amount"], 1); err != nil {
		return err
	}

	cfg.TagCacheTTL = 10 * time.Minute
	if raw := values["tag_cache_ttl"]; raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid tag_cache_ttl %q: %w", raw, err)
		}
		cfg.TagCacheTTL = ttl
	}

	return nil
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func parseInt(key, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

func lookupEnv(key string) string {
	return strings.TrimSpace(os.Getenv(strings.ToUpper(key)))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// maxSmallInt is the upper bound of the positive small integer columns
// holding cooking_time and amount.
const maxSmallInt = 32767

// ValidateConfig checks the configuration for the current environment and
// reports every problem at once.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []error

	switch cfg.DBDriver {
	case DriverPostgres:
		required := map[string]string{
			"db_host":     cfg.DBHost,
			"db_port":     cfg.DBPort,
			"db_user":     cfg.DBUser,
			"db_password": cfg.DBPassword,
			"db_name":     cfg.DBName,
		}
		for _, field := range []string{"db_host", "db_port", "db_user", "db_password", "db_name"} {
			if required[field] == "" {
				errs = append(errs, ValidationError{Field: field, Message: "is required for the postgres driver"})
			}
		}
	case DriverSQLite:
		if env == Production {
			errs = append(errs, ValidationError{Field: "db_driver", Message: "sqlite is not allowed in production"})
		}
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "sqlite_path", Message: "is required for the sqlite driver"})
		}
	default:
		errs = append(errs, ValidationError{Field: "db_driver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.MinCookingTime < 1 || cfg.MinCookingTime > maxSmallInt {
		errs = append(errs, ValidationError{Field: "min_cooking_time", Message: fmt.Sprintf("must be between 1 and %d", maxSmallInt)})
	}
	if cfg.MinIngredientAmount < 1 || cfg.MinIngredientAmount > maxSmallInt {
		errs = append(errs, ValidationError{Field: "min_ingredient_amount", Message: fmt.Sprintf("must be between 1 and %d", maxSmallInt)})
	}
	if cfg.TagCacheTTL < 0 {
		errs = append(errs, ValidationError{Field: "tag_cache_ttl", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}

// RedisEnabled reports whether enough is configured to reach Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

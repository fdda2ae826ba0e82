package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnvOverrides lays environment variables over the file values. A
// variable that is set always wins, even when set to an empty string.
func applyEnvOverrides(c *Config) error {
	overrideString(&c.Server.Port, "SERVER_PORT")
	overrideString(&c.Server.Mode, "SERVER_MODE")

	overrideString(&c.Database.Driver, "DB_DRIVER")
	overrideString(&c.Database.Host, "DB_HOST")
	overrideString(&c.Database.Port, "DB_PORT")
	overrideString(&c.Database.User, "DB_USER")
	overrideString(&c.Database.Password, "DB_PASSWORD")
	overrideString(&c.Database.DBName, "DB_NAME")
	overrideString(&c.Database.SSLMode, "DB_SSLMODE")
	overrideString(&c.Database.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME")
	if err := overrideInt(&c.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS"); err != nil {
		return err
	}
	if err := overrideInt(&c.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS"); err != nil {
		return err
	}

	overrideString(&c.JWT.Secret, "JWT_SECRET")
	overrideString(&c.JWT.AccessTokenExpiration, "JWT_ACCESS_TOKEN_EXPIRATION")
	overrideString(&c.JWT.RefreshTokenExpiration, "JWT_REFRESH_TOKEN_EXPIRATION")
	overrideString(&c.JWT.Issuer, "JWT_ISSUER")

	overrideString(&c.Reference.BranchesPath, "REFERENCE_BRANCHES_PATH")

	overrideString(&c.Admin.Email, "ADMIN_EMAIL")
	overrideString(&c.Admin.Password, "ADMIN_PASSWORD")
	overrideString(&c.Admin.FullName, "ADMIN_FULL_NAME")

	overrideString(&c.Logging.Level, "LOG_LEVEL")
	overrideString(&c.Logging.Format, "LOG_FORMAT")

	return nil
}

func overrideString(dst *string, key string) {
	if value, exists := os.LookupEnv(key); exists {
		*dst = value
	}
}

func overrideInt(dst *int, key string) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer, got %q", key, value)
	}

	*dst = parsed
	return nil
}

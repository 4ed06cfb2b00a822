package config

import (
	"fmt"
	"net/url"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// EnvPostgresHost switches the storefront's order store from memory to PostgreSQL.
const EnvPostgresHost = "POSTGRES_HOSTNAME"

// PostgresConfig holds the connection settings of the optional order store
type PostgresConfig struct {
	Host     string `validate:"required,hostname_rfc1123|ip"`
	Port     int    `default:"5432" validate:"gt=0,lte=65535"`
	User     string `default:"postgres" validate:"required"`
	Password string `validate:"required"`
	Database string `default:"postgres" validate:"required"`
	SSLMode  string `default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// PostgresConfigured reports whether orders go to PostgreSQL
func PostgresConfigured(getenv func(string) string) bool {
	return getenv(EnvPostgresHost) != ""
}

// LoadPostgresConfig reads the POSTGRES_* variables over the defaults
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	cfg := &PostgresConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply postgres defaults: %w", err)
	}

	cfg.Host = getenv(EnvPostgresHost)
	cfg.Password = getenv("POSTGRES_PASSWORD")
	if v := getenv("POSTGRES_USER"); v != "" {
		cfg.User = v
	}
	if v := getenv("POSTGRES_DB"); v != "" {
		cfg.Database = v
	}
	if v := getenv("POSTGRES_SSLMODE"); v != "" {
		cfg.SSLMode = v
	}
	if v := getenv("POSTGRES_PORT"); v != "" {
		port, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("POSTGRES_PORT must be an integer: %w", err)
		}
		cfg.Port = port
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid postgres config: %w", err)
	}
	return cfg, nil
}

// ConnectionString returns a lib/pq URL
func (c *PostgresConfig) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

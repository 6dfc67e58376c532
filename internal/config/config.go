package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	PoolMaxConns int32
	PoolMinConns int32
}

// AdminConfig drives the admin login endpoint. AdminPasswordHash is a
// bcrypt hash; when it or the JWT secret is empty the admin routes are
// registered but every login attempt is rejected.
type AdminConfig struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:       opt("DB_HOST"),
		DBPort:       opt("DB_PORT"),
		DBName:       opt("DB_NAME"),
		DBUser:       opt("DB_USER"),
		DBPassword:   opt("DB_PASSWORD"),
		DBSSLMode:    opt("DB_SSL_MODE"),
		PoolMaxConns: int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns: int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.Admin = AdminConfig{
		Username:     opt("ADMIN_USERNAME"),
		PasswordHash: opt("ADMIN_PASSWORD_HASH"),
		JWTSecret:    opt("ADMIN_JWT_SECRET"),
		TokenTTL:     optDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

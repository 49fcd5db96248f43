package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config is the process wide configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	Port             int
	Env              string
	DatabaseURL      string
	JWTSecret        string
	JWTExpiry        time.Duration
	JWTRefreshExpiry time.Duration
	LogLevel         string
}

// Load reads a .env file if present, then resolves configuration from
// the environment with defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3000)
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("DATABASE_URL", "file:./dev.db")
	v.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	v.SetDefault("JWT_EXPIRY", "7d")
	v.SetDefault("JWT_REFRESH_EXPIRY", "30d")
	v.SetDefault("LOG_LEVEL", "info")

	env := v.GetString("APP_ENV")
	switch env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return nil, goerrors.New(
			fmt.Sprintf("invalid APP_ENV %q", env),
			goerrors.CategoryBadInput,
		)
	}

	expiry, err := ParseExpiry(v.GetString("JWT_EXPIRY"))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid JWT_EXPIRY")
	}

	// The refresh expiry shipped with the original configuration; no
	// refresh flow consumes it yet.
	refreshExpiry, err := ParseExpiry(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid JWT_REFRESH_EXPIRY")
	}

	return &Config{
		Port:             v.GetInt("PORT"),
		Env:              env,
		DatabaseURL:      v.GetString("DATABASE_URL"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTExpiry:        expiry,
		JWTRefreshExpiry: refreshExpiry,
		LogLevel:         v.GetString("LOG_LEVEL"),
	}, nil
}

// ParseExpiry parses durations like "7d", "12h" or "30m". Day suffixes
// are resolved here since time.ParseDuration has no day unit.
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q: %w", s, err)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	return time.ParseDuration(s)
}

// GetSigningKey satisfies the auth config contract.
func (c *Config) GetSigningKey() string {
	return c.JWTSecret
}

// GetTokenExpiration satisfies the auth config contract.
func (c *Config) GetTokenExpiration() time.Duration {
	return c.JWTExpiry
}

func (c *Config) IsDev() bool  { return c.Env == EnvDevelopment }
func (c *Config) IsProd() bool { return c.Env == EnvProduction }
func (c *Config) IsTest() bool { return c.Env == EnvTest }

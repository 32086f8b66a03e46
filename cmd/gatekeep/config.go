package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/gatekeep/pkg/config"
	"github.com/dmitrymomot/gatekeep/pkg/cookie"
	"github.com/dmitrymomot/gatekeep/pkg/environment"
	"github.com/dmitrymomot/gatekeep/pkg/httpserver"
	"github.com/dmitrymomot/gatekeep/pkg/logger"
	"github.com/dmitrymomot/gatekeep/pkg/mongo"
	"github.com/dmitrymomot/gatekeep/pkg/requestid"
)

// devSecret signs sessions in development when JWT_SECRET is unset.
const devSecret = "dev_secret_change_me"

// minBcryptCost is the lowest accepted BCRYPT_COST.
const minBcryptCost = 10

// Config is the process configuration. It is loaded once and read-only
// afterwards.
type Config struct {
	AppEnv            string `env:"APP_ENV" envDefault:"development"`
	AppName           string `env:"APP_NAME" envDefault:"gatekeep"`
	LogLevel          string `env:"LOG_LEVEL"`
	ClientOrigin      string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	JWTSecret         string `env:"JWT_SECRET"`
	ResetTokenDevMode bool   `env:"RESET_TOKEN_DEV_MODE" envDefault:"true"`
	BcryptCost        int    `env:"BCRYPT_COST" envDefault:"12"`

	Mongo  mongo.Config
	HTTP   httpserver.Config
	Cookie cookie.Config

	env            environment.Environment
	usingDevSecret bool
	devModeForced  bool
}

// loadConfig parses the environment and applies the startup rules.
func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := config.LoadWithOptions(&cfg, opts); err != nil {
		return Config{}, oops.Code("CONFIG_INVALID").Wrap(err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !environment.Valid(c.AppEnv) {
		return oops.Code("CONFIG_INVALID").With("APP_ENV", c.AppEnv).
			Errorf("APP_ENV must be development, staging or production")
	}
	c.env = environment.Parse(c.AppEnv)

	if c.JWTSecret == "" {
		if !c.env.IsDevelopment() {
			return oops.Code("CONFIG_INVALID").With("APP_ENV", c.AppEnv).
				Errorf("JWT_SECRET is required outside development")
		}
		c.JWTSecret = devSecret
		c.usingDevSecret = true
	}

	if c.BcryptCost < minBcryptCost || c.BcryptCost > bcrypt.MaxCost {
		return oops.Code("CONFIG_INVALID").With("BCRYPT_COST", c.BcryptCost).
			Errorf("BCRYPT_COST must be between %d and %d", minBcryptCost, bcrypt.MaxCost)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	if c.env.IsProduction() && c.ResetTokenDevMode {
		c.ResetTokenDevMode = false
		c.devModeForced = true
	}
	return nil
}

// Env is the parsed APP_ENV.
func (c Config) Env() environment.Environment { return c.env }

// newLogger builds the process logger. LOG_LEVEL overrides the
// environment default.
func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, _ := logger.ParseLevel(cfg.LogLevel)
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

// logStartupWarnings reports the adjustments validate made.
func (c Config) logStartupWarnings(log *slog.Logger) {
	if c.usingDevSecret {
		log.Warn("JWT_SECRET not set, using the development fallback secret",
			logger.Component("config"))
	}
	if c.devModeForced {
		log.Warn("RESET_TOKEN_DEV_MODE ignored in production",
			logger.Component("config"))
	}
	if c.ResetTokenDevMode {
		log.Warn(fmt.Sprintf("reset tokens are returned in API responses (%s)", c.env),
			logger.Component("config"))
	}
}

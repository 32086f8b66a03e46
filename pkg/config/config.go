// Package config loads process configuration from environment variables
// into tagged structs using github.com/caarlos0/env.
//
// A .env file in the working directory is applied once, before the first
// parse, and never overrides variables that are already set. Configuration
// is read once at startup and treated as read-only afterwards.
//
//	type Config struct {
//	    MongoURI string `env:"MONGODB_URI,required"`
//	    Port     int    `env:"PORT" envDefault:"5000"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // fail startup
//	}
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

var dotenvOnce sync.Once

// Load parses environment variables into v.
func Load[T any](v *T) error {
	return LoadWithOptions(v, env.Options{})
}

// LoadWithOptions parses environment variables into v using explicit
// parser options, e.g. a custom Environment map in tests.
func LoadWithOptions[T any](v *T, opts env.Options) error {
	dotenvOnce.Do(func() {
		// missing .env is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, opts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

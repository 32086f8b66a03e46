package config_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekeep/pkg/config"
)

type sample struct {
	URI     string        `env:"SAMPLE_URI,required"`
	Port    int           `env:"SAMPLE_PORT" envDefault:"5000"`
	Timeout time.Duration `env:"SAMPLE_TIMEOUT" envDefault:"10s"`
	Dev     bool          `env:"SAMPLE_DEV" envDefault:"true"`
}

func TestLoad(t *testing.T) {
	t.Run("applies values and defaults", func(t *testing.T) {
		t.Setenv("SAMPLE_URI", "mongodb://localhost:27017")
		t.Setenv("SAMPLE_PORT", "8081")

		var cfg sample
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "mongodb://localhost:27017", cfg.URI)
		assert.Equal(t, 8081, cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.True(t, cfg.Dev)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *sample
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("missing required variable", func(t *testing.T) {
		t.Parallel()
		var cfg sample
		err := config.LoadWithOptions(&cfg, env.Options{Environment: map[string]string{}})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Contains(t, err.Error(), "SAMPLE_URI")
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg sample
		err := config.LoadWithOptions(&cfg, env.Options{Environment: map[string]string{
			"SAMPLE_URI":  "x",
			"SAMPLE_PORT": "not-a-number",
		}})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/screenkit/pkg/config"
)

type testConfig struct {
	Addr         string        `env:"TEST_ADDR" envDefault:":8080"`
	FetchTimeout time.Duration `env:"TEST_FETCH_TIMEOUT" envDefault:"10s"`
	Endpoint     string        `env:"TEST_ENDPOINT,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_ADDR", ":9090")
	t.Setenv("TEST_FETCH_TIMEOUT", "3s")
	t.Setenv("TEST_ENDPOINT", "https://api.example.com/users")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "https://api.example.com/users", cfg.Endpoint)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("TEST_ENDPOINT", "https://api.example.com/users")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
}

func TestLoadMissingRequired(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}

func TestMustLoadSucceeds(t *testing.T) {
	t.Setenv("TEST_ENDPOINT", "https://api.example.com/users")

	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}

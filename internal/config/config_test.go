package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewConfig()

		require.NoError(t, err)
		assert.Equal(t, EnvLocal, cfg.App.Env)
		assert.Equal(t, "UTC", cfg.App.Timezone)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, "availability.busy-events", cfg.RabbitMQ.Queue)
		assert.Equal(t, 128, cfg.Timezones.CacheSize)
		assert.False(t, cfg.RabbitMQ.Enabled)
		assert.True(t, cfg.IsLocal())
		assert.False(t, cfg.IsNotLocal())
	})

	t.Run("Environment Is Lowercased", func(t *testing.T) {
		t.Setenv("APP_ENV", "PRODUCTION")

		cfg, err := NewConfig()

		require.NoError(t, err)
		assert.Equal(t, EnvProduction, cfg.App.Env)
		assert.True(t, cfg.IsNotLocal())
	})

	t.Run("Basic Clients Parsing", func(t *testing.T) {
		t.Setenv("AUTH_BASIC_CLIENTS", "alice:secret1,bob:secret2")

		cfg, err := NewConfig()

		require.NoError(t, err)
		assert.Equal(t, []ConfigBasicClient{
			{Username: "alice", Password: "secret1"},
			{Username: "bob", Password: "secret2"},
		}, cfg.Auth.BasicClients)
	})

	t.Run("Malformed Client Pairs Are Skipped", func(t *testing.T) {
		t.Setenv("AUTH_BASIC_CLIENTS", "alice:secret1,broken,bob:secret2")

		cfg, err := NewConfig()

		require.NoError(t, err)
		assert.Len(t, cfg.Auth.BasicClients, 2)
	})
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleLogger(t *testing.T) {
	t.Run("Known Timezone", func(t *testing.T) {
		consoleLogger, err := NewConsoleLogger("Europe/Moscow")

		require.NoError(t, err)
		assert.NotNil(t, consoleLogger)
	})

	t.Run("Unknown Timezone Fails", func(t *testing.T) {
		consoleLogger, err := NewConsoleLogger("Mars/Olympus")

		assert.Error(t, err)
		assert.Nil(t, consoleLogger)
	})
}

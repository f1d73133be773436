package utils

import (
	"testing"

	"merchant-dashboard-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	zl, err := NewLogger(&config.Config{Env: "production", LogLevel: "warn", AppName: "test"})
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zl.Core().Enabled(zapcore.WarnLevel))

	zl, err = NewLogger(&config.Config{LogLevel: "loud"})
	require.NoError(t, err)
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
}

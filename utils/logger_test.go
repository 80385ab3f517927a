package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uyouii/climate-indices/config"
)

func TestGetLogger(t *testing.T) {
	assert.Same(t, zap.L(), GetLogger(context.Background()))

	logger := zap.NewNop()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestInitLogger(t *testing.T) {
	previous := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(previous) })

	require.NoError(t, InitLogger(config.LoggingConfig{Level: "debug", Development: true}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(config.LoggingConfig{Level: "error"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))

	assert.Error(t, InitLogger(config.LoggingConfig{Level: "chatty"}))
}

func TestGetPanicInfo(t *testing.T) {
	assert.Contains(t, GetPanicInfo(), "TestGetPanicInfo")
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, 3, CeilDiv(7, 3))
	assert.Equal(t, 2, CeilDiv(6, 3))
	assert.Equal(t, 5, CeilDiv(5, 0))
	assert.Equal(t, 2, IntMin(2, 9))
	assert.Equal(t, -1, IntMin(4, -1))
}

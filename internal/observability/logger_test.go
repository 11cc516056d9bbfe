package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/couchcryptid/quake-map-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_UsesConfiguredLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logger := NewLogger(&config.Config{LogLevel: "warn", LogFormat: "text"})

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.Same(t, logger, slog.Default())
}

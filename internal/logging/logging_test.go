package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/brickfall/internal/config"
)

func TestNewLevels(t *testing.T) {
	for _, tc := range []struct {
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{config.LoggingConfig{Level: "chatty", Format: "console"}, zapcore.InfoLevel},
	} {
		logger, err := New(tc.cfg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, logger.Level(), "level %q", tc.cfg.Level)
	}
}

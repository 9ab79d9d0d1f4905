package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type staticEnvironment map[string]string

func (e staticEnvironment) GetString(key string) string {
	return e[key]
}

func (e staticEnvironment) GetBool(key string) (bool, error) {
	return e[key] == "true", nil
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "", want: zapcore.InfoLevel},
		{level: "info", want: zapcore.InfoLevel},
		{level: "DEBUG", want: zapcore.DebugLevel},
		{level: "warning", want: zapcore.WarnLevel},
		{level: "error", want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("verbose")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestProvideLogger_UsesConfiguredLevel(t *testing.T) {
	logger, err := ProvideLogger(staticEnvironment{LevelKey: "error"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}

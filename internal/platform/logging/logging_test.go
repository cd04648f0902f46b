package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, LevelFromString("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, LevelFromString(" warning "))
	assert.Equal(t, zapcore.ErrorLevel, LevelFromString("error"))
	assert.Equal(t, zapcore.InfoLevel, LevelFromString(""))
	assert.Equal(t, zapcore.InfoLevel, LevelFromString("verbose"))
}

func TestNew(t *testing.T) {
	l, err := New("dev", "debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("prod", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

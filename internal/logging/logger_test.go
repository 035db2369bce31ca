package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, GetLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, GetLevel(" WARN "))
	assert.Equal(t, zapcore.ErrorLevel, GetLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, GetLevel("chatty"))
	assert.Equal(t, zapcore.InfoLevel, GetLevel(""))
}

func TestNew_StderrLevels(t *testing.T) {
	quiet := New(Params{})
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))

	verbose := New(Params{Verbose: true, JSON: true})
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapty")

	logger := New(Params{Level: "info", File: path})
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel), "file takes info")

	logger.Info("workout created", zap.String("id", "abc"))
	logger.Debug("not written")
	_ = logger.Sync()

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"workout created"`)
	assert.Contains(t, string(data), `"id":"abc"`)
	assert.NotContains(t, string(data), "not written")
}

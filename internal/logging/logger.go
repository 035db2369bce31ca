// Package logging builds the zap logger shared by every command.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	Level   string // Level of the log file.
	File    string // Rotated log file, empty for none.
	JSON    bool   // JSON lines on stderr instead of the console encoder.
	Verbose bool   // Show debug logs on stderr.
}

// New logs warnings and errors to stderr, everything down to debug with
// Verbose, and Level and up to File when one is set.
func New(p Params) *zap.Logger {
	stderrLevel := zapcore.WarnLevel
	if p.Verbose {
		stderrLevel = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var stderrEncoder zapcore.Encoder
	if p.JSON {
		stderrEncoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		stderrEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	cores := []zapcore.Core{
		zapcore.NewCore(stderrEncoder, zapcore.Lock(os.Stderr), stderrLevel),
	}

	if p.File != "" {
		fileName := p.File
		if !strings.HasSuffix(fileName, ".log") {
			fileName += ".log"
		}
		lumberJackLogger := &lumberjack.Logger{
			Filename:   fileName,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(lumberJackLogger),
			GetLevel(p.Level),
		))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// GetLevel parses a level name, falling back to info.
func GetLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

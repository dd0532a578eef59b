package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps a successful run silent
const DefaultLevel = "warn"

// New builds a console logger writing to w. Unknown or empty levels fall back
// to DefaultLevel.
func New(w io.Writer, levelStr string) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if levelStr == "" {
		levelStr = DefaultLevel
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zap.WarnLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// NewStderr is New writing to standard error, which is where every
// diagnostic of the command goes.
func NewStderr(levelStr string) *zap.SugaredLogger {
	return New(os.Stderr, levelStr)
}

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's sugared logger so commands can log structured
// key/value pairs without importing zap directly.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. verbose lowers the
// level to debug.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return &Logger{zap.Must(cfg.Build()).Sugar()}
}

package logger_i

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/gitalabs/GitaAPI/internal/config"
)

type Logger struct {
	inner *slog.Logger
}

func Init() {
	InitTo(os.Stdout)
}

// InitTo lets processes that own stdout for a protocol (the MCP stdio server)
// send logs elsewhere.
func InitTo(w io.Writer) {
	options := &slog.HandlerOptions{
		Level: levelFromEnv(),
	}

	var handler slog.Handler
	if config.IS_PROD {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	newLogger := slog.New(handler)
	slog.SetDefault(newLogger)
}

// levelFromEnv resolves the log level. LOG_LEVEL wins when set, otherwise
// prod runs at its configured level and everything else logs debug.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if config.IS_PROD {
		return config.LOG_LEVEL_PROD
	}
	return slog.LevelDebug
}

func NewLogger(section string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", section),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logWithSource(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logWithSource(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logWithSource(slog.LevelDebug, msg, args...)
}

func (l *Logger) logWithSource(level slog.Level, msg string, args ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	// Skip 3 levels: runtime.Callers, logWithSource, and Err/Dbg wrapper - this looks at GO's stack trace
	runtime.Callers(3, pcs[:])
	l.inner.Log(context.Background(), level, msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}

// Package logger builds the service's slog logger and the attribute helpers
// every package uses for scoped, structured log lines.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

// EnvironmentVar names the deployment environment variable.
const EnvironmentVar = "ENVIRONMENT"

// Module provides *slog.Logger to the fx graph.
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates the root logger.
//
// LOG_LEVEL selects the level (debug, info, warn/warning, error; case
// insensitive, info when unset or unknown). ENVIRONMENT=production, the same
// variable that config.Config.IsProduction reads, switches to the JSON
// handler; anything else logs human readable text.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv(EnvironmentVar), "production") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags a log line with the component that produced it.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error wraps err as an attribute. A nil error is kept as-is.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Discard returns a logger that drops everything. Used by tests and one-shot
// CLI commands that print their own output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

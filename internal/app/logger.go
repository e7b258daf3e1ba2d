package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/httplog/v2"

	"github.com/vadimbarashkov/utmka/internal/config"
)

const serviceName = "utmka"

// NewLogger builds the request-aware logger shared by the router and the use cases.
// Level is one of debug, info, warn, error (case-insensitive) and defaults to info.
func NewLogger(cfg config.Log, w io.Writer) *httplog.Logger {
	return httplog.NewLogger(serviceName, httplog.Options{
		LogLevel: parseLevel(cfg.Level),
		JSON:     cfg.JSON,
		Concise:  cfg.Concise,
		Writer:   w,
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

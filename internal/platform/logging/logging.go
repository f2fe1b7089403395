// Package logging builds the process logger: JSON slog records in the ECS layout used by
// the request logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/httplog/v3"
)

type Options struct {
	Level       string
	Environment string
	Version     string
}

func New(w io.Writer, opts Options) *slog.Logger {
	schema := httplog.SchemaECS.Concise(!strings.EqualFold(opts.Environment, "production"))
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(opts.Level),
		ReplaceAttr: schema.ReplaceAttr,
	})
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return slog.New(handler).With(
		slog.String("app", "backoffice"),
		slog.String("version", version),
		slog.String("env", opts.Environment),
	)
}

// ParseLevel maps debug, info, warn and error to slog levels; anything else is info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

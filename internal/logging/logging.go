package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

// Init installs the global slog logger writing to stderr.
// levelStr: "debug", "info", "warn", "error" (default "info").
// format: "text" or "json" (default "text").
func Init(levelStr, format string) {
	InitTo(os.Stderr, levelStr, format)
}

// InitTo is Init with an explicit destination. The shell uses it to keep log
// lines off the terminal it is drawing on.
func InitTo(w io.Writer, levelStr, format string) {
	lvl, _ := ParseLevel(levelStr)
	level.Set(lvl)

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// For returns a logger tagged with component. It resolves slog.Default() on
// every call, so package-level loggers follow Init and CaptureForTest.
func For(component string) *slog.Logger {
	return slog.New(&componentHandler{component: component})
}

// SetLevel changes the log level at runtime.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps a level name to a slog.Level. Unknown or empty names
// yield slog.LevelInfo and ok=false (empty counts as ok).
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

type componentHandler struct {
	component string
	attrs     []slog.Attr
}

func (h *componentHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return slog.Default().Handler().Enabled(ctx, l)
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String("component", h.component))
	r.AddAttrs(h.attrs...)
	return slog.Default().Handler().Handle(ctx, r)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &componentHandler{component: h.component, attrs: merged}
}

// Groups are flattened; scribe does not log grouped attributes.
func (h *componentHandler) WithGroup(string) slog.Handler {
	return h
}

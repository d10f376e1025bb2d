// Package logger はslogのデフォルトロガーを設定します。
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel はLOG_LEVELの値をslog.Levelに変換します。不明な値はInfoです。
func ParseLevel(s string) slog.Level {
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

// New はformat（json|text）とlevelに従ったロガーを生成します。
func New(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Setup はロガーを生成してデフォルトに設定します。
func Setup(w io.Writer, format, level string) *slog.Logger {
	l := New(w, format, level)
	slog.SetDefault(l)
	return l
}

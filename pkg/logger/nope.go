package logger

import "log/slog"

// NewNope returns a logger that drops every record.
// Components use it when no logger is injected.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

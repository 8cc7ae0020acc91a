package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func extractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("invocation_id", v), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNewWithWriter_AppliesExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, extractor, nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "inv-1")
	log.InfoContext(ctx, "email sent", slog.String("message_id", "abc123"))

	m := decode(t, &buf)
	require.Equal(t, "email sent", m["msg"])
	require.Equal(t, "abc123", m["message_id"])
	require.Equal(t, "inv-1", m["invocation_id"])
}

func TestNewWithWriter_SkipsMissingValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, extractor)
	log.With(slog.String("tool", "resend_send_email")).InfoContext(context.Background(), "ok")

	m := decode(t, &buf)
	require.NotContains(t, m, "invocation_id")
	require.Equal(t, "resend_send_email", m["tool"])
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)
	log.Info("dropped")

	require.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithSentry_FallsBackWithoutDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newWithSentry(&buf, Config{Level: "debug"}, extractor)
	log.Debug("visible")

	require.Equal(t, "visible", decode(t, &buf)["msg"])
}

func TestMultiHandler_FansOut(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	log.Info("info")
	require.NotZero(t, a.Len())
	require.Zero(t, b.Len())

	log.Error("error")
	require.NotZero(t, b.Len())
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error { return errBroken }

var errBroken = errors.New("broken handler")

func TestMultiHandler_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newMultiHandler(
		failingHandler{slog.DiscardHandler},
		slog.NewJSONHandler(&buf, nil),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0)
	err := h.Handle(context.Background(), rec)
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, "still written", decode(t, &buf)["msg"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { NewNope().Error("discarded") })
}

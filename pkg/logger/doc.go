// Package logger provides structured logging with context extraction and Sentry integration.
//
// Loggers write JSON to stderr. Stdout is reserved for the MCP stdio
// transport, and a stray log line there would corrupt the protocol stream.
//
// # Basic Usage
//
//	log := logger.New(sendemail.InvocationIDExtractor())
//	log.InfoContext(ctx, "email sent", slog.String("message_id", id))
//	// {"level":"INFO","msg":"email sent","message_id":"...","invocation_id":"..."}
//
// # Context Extractors
//
// A ContextExtractor pulls a log attribute from context on every log call,
// so values scoped to one tool call (such as the invocation id) appear on
// every record emitted while handling it.
//
// # Sentry Integration
//
// NewWithSentry forwards errors (as Issues) and warnings (as logs) to Sentry
// when SENTRY_DSN is set. With an empty DSN, or when initialization fails,
// it falls back to stderr only. Call Flush before the process exits.
package logger

package resendmcp

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/resend-mcp/internal/sendemail"
	"github.com/dmitrymomot/resend-mcp/pkg/health"
	"github.com/dmitrymomot/resend-mcp/pkg/mailer"
)

// Option configures the application.
type Option func(*App)

// WithContext sets a custom base context for signal handling.
// Useful for testing or when integrating with existing context hierarchies.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.baseCtx = ctx
		}
	}
}

// WithLogger sets the application logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithSender sets the email provider used by the tool.
func WithSender(s mailer.Sender) Option {
	return func(a *App) {
		if s != nil {
			a.sender = s
		}
	}
}

// WithDefaults sets the sender and reply-to hints advertised in the tool schema.
// They are never substituted into requests.
func WithDefaults(d sendemail.Defaults) Option {
	return func(a *App) {
		a.defaults = d
	}
}

// WithImplementation sets the server name and version reported during initialization.
func WithImplementation(name, version string) Option {
	return func(a *App) {
		if name != "" {
			a.name = name
		}
		if version != "" {
			a.version = version
		}
	}
}

// WithTransport selects the transport: "stdio" (default) or "http".
func WithTransport(t Transport) Option {
	return func(a *App) {
		if t != "" {
			a.transport = Transport(strings.ToLower(string(t)))
		}
	}
}

// WithAddress sets the HTTP listen address for the http transport.
// Defaults to ":8080".
func WithAddress(addr string) Option {
	return func(a *App) {
		if addr != "" {
			a.address = addr
		}
	}
}

// WithSendTimeout bounds each call to the email provider.
// Defaults to 30 seconds.
func WithSendTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.sendTimeout = d
		}
	}
}

// WithShutdownTimeout sets the timeout for graceful shutdown of the http transport.
// Defaults to 10 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithReadinessCheck adds a named check to the /health/ready probe.
//
// Example:
//
//	resendmcp.WithReadinessCheck("resend", sender.Healthcheck)
func WithReadinessCheck(name string, fn health.CheckFunc) Option {
	return func(a *App) {
		if name != "" && fn != nil {
			a.readinessChecks[name] = fn
		}
	}
}

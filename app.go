package resendmcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dmitrymomot/resend-mcp/internal/sendemail"
	"github.com/dmitrymomot/resend-mcp/pkg/health"
	"github.com/dmitrymomot/resend-mcp/pkg/logger"
	"github.com/dmitrymomot/resend-mcp/pkg/mailer"
)

// Transport selects how the server talks to its MCP client.
type Transport string

const (
	// TransportStdio serves a single session over stdin/stdout.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves MCP streamable HTTP sessions.
	TransportHTTP Transport = "http"
)

// Defaults (opinionated).
const (
	defaultName              = "resend-mcp-server"
	defaultVersion           = "1.0.0"
	defaultAddress           = ":8080"
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultIdleTimeout       = 120 * time.Second

	mcpPath = "/mcp"
)

// App is an MCP server exposing the resend_send_email tool.
// App is immutable after creation - all configuration is done via New().
type App struct {
	// Base context for signal handling (defaults to context.Background())
	baseCtx context.Context

	logger   *slog.Logger
	sender   mailer.Sender
	defaults sendemail.Defaults

	name    string
	version string

	transport       Transport
	address         string
	sendTimeout     time.Duration
	shutdownTimeout time.Duration
	readinessChecks health.Checks

	server  *mcp.Server
	handler *sendemail.Handler
}

// New creates an App. A sender is required.
//
// Example:
//
//	sender, _ := resend.New(cfg.Resend)
//	app, err := resendmcp.New(
//	    resendmcp.WithSender(sender),
//	    resendmcp.WithDefaults(sendemail.Defaults{From: cfg.Resend.DefaultFrom}),
//	    resendmcp.WithLogger(log),
//	)
func New(opts ...Option) (*App, error) {
	a := &App{
		logger:          logger.NewNope(),
		name:            defaultName,
		version:         defaultVersion,
		transport:       TransportStdio,
		address:         defaultAddress,
		sendTimeout:     sendemail.DefaultTimeout,
		shutdownTimeout: defaultShutdownTimeout,
		readinessChecks: health.Checks{},
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.sender == nil {
		return nil, ErrNoSender
	}
	switch a.transport {
	case TransportStdio, TransportHTTP:
	default:
		return nil, ErrUnknownTransport
	}

	a.handler = sendemail.NewHandler(a.sender,
		sendemail.WithLogger(a.logger),
		sendemail.WithTimeout(a.sendTimeout),
	)

	a.server = mcp.NewServer(
		&mcp.Implementation{Name: a.name, Version: a.version},
		&mcp.ServerOptions{Logger: a.logger},
	)
	a.server.AddReceivingMiddleware(loggingMiddleware(a.logger))
	a.server.AddTool(sendemail.Tool(a.defaults), a.handler.ToolHandler())

	return a, nil
}

// Server returns the underlying MCP server.
// Useful for serving the app over a custom transport.
func (a *App) Server() *mcp.Server {
	return a.server
}

// Router returns the HTTP handler used by the http transport:
// MCP streamable HTTP at /mcp plus liveness and readiness probes.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	mcpHandler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return a.server },
		&mcp.StreamableHTTPOptions{Logger: a.logger},
	)
	r.Handle(mcpPath, mcpHandler)
	r.Handle(mcpPath+"/*", mcpHandler)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(a.readinessChecks, health.WithLogger(a.logger)))

	return r
}

// loggingMiddleware logs every MCP method handled by the server.
func loggingMiddleware(l *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			res, err := next(ctx, method, req)

			attrs := []any{
				slog.String("method", method),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.WarnContext(ctx, "mcp request failed", append(attrs, slog.String("error", err.Error()))...)
				return res, err
			}
			l.DebugContext(ctx, "mcp request handled", attrs...)
			return res, nil
		}
	}
}

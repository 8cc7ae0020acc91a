package resendmcp

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

// Run serves the configured transport and blocks until shutdown.
// It handles SIGINT and SIGTERM for graceful shutdown.
//
// Returns nil on clean shutdown (signal, or the stdio client closing the stream),
// or an error if the transport fails to start or stops unexpectedly.
func (a *App) Run() error {
	baseCtx := a.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if a.transport == TransportHTTP {
		return a.runHTTP(ctx)
	}
	return a.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs a single MCP session over t until the peer disconnects or ctx is done.
func (a *App) Serve(ctx context.Context, t mcp.Transport) error {
	a.logger.InfoContext(ctx, "resend MCP server running",
		slog.String("name", a.name),
		slog.String("version", a.version),
	)

	err := a.server.Run(ctx, t)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info("resend MCP server stopped")
	return nil
}

func (a *App) runHTTP(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.address)
	if err != nil {
		return err
	}
	return a.serveHTTP(ctx, ln)
}

func (a *App) serveHTTP(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server starting", slog.String("address", ln.Addr().String()), slog.String("path", mcpPath))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		a.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

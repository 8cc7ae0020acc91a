// Command resend-mcp runs an MCP server that sends email through Resend.
//
// Configuration is read from the environment (and an optional .env file):
//
//	RESEND_API_KEY           Resend API key (required)
//	RESEND_DEFAULT_FROM      default sender shown to clients as a schema hint
//	RESEND_DEFAULT_REPLY_TO  default reply-to shown to clients as a schema hint
//	RESEND_BASE_URL          API base URL override
//	RESEND_TIMEOUT           provider call timeout (default 30s)
//	MCP_TRANSPORT            stdio (default) or http
//	MCP_HTTP_ADDRESS         listen address for the http transport (default :8080)
//	MCP_SHUTDOWN_TIMEOUT     graceful shutdown timeout (default 10s)
//	LOG_LEVEL                debug, info, warn or error (default info)
//	SENTRY_DSN               enables error reporting to Sentry
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	resendmcp "github.com/dmitrymomot/resend-mcp"
	"github.com/dmitrymomot/resend-mcp/internal/sendemail"
	"github.com/dmitrymomot/resend-mcp/pkg/logger"
	"github.com/dmitrymomot/resend-mcp/pkg/mailer/resend"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	envFile := flag.String("env-file", ".env", "dotenv file to load if present")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if err := run(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal error:", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	if err := loadDotenv(envFile); err != nil {
		return err
	}

	cfg, err := parseConfig(nil)
	if err != nil {
		return err
	}
	cfg.Logger.Sentry.Release = version

	log := logger.NewWithSentry(cfg.Logger, sendemail.InvocationIDExtractor())
	defer logger.Flush(2 * time.Second)

	sender, err := resend.New(cfg.Resend)
	if err != nil {
		return err
	}

	app, err := resendmcp.New(
		resendmcp.WithLogger(log),
		resendmcp.WithSender(sender),
		resendmcp.WithDefaults(sendemail.Defaults{
			From:    cfg.Resend.DefaultFrom,
			ReplyTo: cfg.Resend.DefaultReplyTo,
		}),
		resendmcp.WithImplementation("resend-mcp-server", version),
		resendmcp.WithSendTimeout(cfg.Resend.Timeout),
		resendmcp.WithTransport(resendmcp.Transport(cfg.Server.Transport)),
		resendmcp.WithAddress(cfg.Server.Address),
		resendmcp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		resendmcp.WithReadinessCheck("resend", sender.Healthcheck),
	)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

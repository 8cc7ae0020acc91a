// Package resendmcp is an MCP (Model Context Protocol) server that lets an AI
// assistant send transactional email through Resend.
//
// The server advertises exactly one tool, resend_send_email. A call is
// validated, forwarded to the Resend API and answered with a text content
// block: "Email sent successfully! ID: <id>" or, with the error flag set,
// "Failed to send email: <reason>". Only calling an unknown tool produces a
// protocol-level error.
//
// # Quick Start
//
//	sender, err := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app, err := resendmcp.New(
//	    resendmcp.WithSender(sender),
//	    resendmcp.WithDefaults(sendemail.Defaults{From: "team@example.com"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Transports
//
// The default transport is stdio: one session over stdin/stdout, which is
// how editors and desktop assistants launch MCP servers. Everything the
// server logs goes to stderr.
//
// WithTransport(TransportHTTP) serves MCP streamable HTTP at /mcp on the
// configured address, alongside /health/live and /health/ready probes.
// SIGINT and SIGTERM trigger a graceful shutdown bounded by
// WithShutdownTimeout.
//
// # Tool Defaults
//
// WithDefaults surfaces a default sender and reply-to address as schema
// hints. They are advisory: a call without "from" is rejected rather than
// silently filled in.
package resendmcp

package resendmcp

import "errors"

var (
	// ErrNoSender is returned by New when no mailer.Sender is configured.
	ErrNoSender = errors.New("resendmcp: sender is required")

	// ErrUnknownTransport is returned by New for a transport other than stdio or http.
	ErrUnknownTransport = errors.New("resendmcp: unknown transport")
)

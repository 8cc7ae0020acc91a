package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have text or HTML content")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)

// ProviderError wraps a failure reported by an email provider.
// Error returns the provider's message unchanged so it can be shown to callers as is.
type ProviderError struct {
	Provider string
	Err      error
}

// NewProviderError wraps err as a ProviderError. Returns nil for a nil err.
func NewProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: provider, Err: err}
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports ErrSendFailed as a match so callers can classify any provider failure.
func (e *ProviderError) Is(target error) bool {
	return target == ErrSendFailed
}

package sendemail

import "errors"

// Failure messages returned to callers verbatim.
const (
	MsgMissingRequired = "Missing required fields: to, from, and subject are required"
	MsgMissingContent  = "Either text or html content is required"
	MsgInternal        = "unexpected internal error"
)

var (
	// ErrUnknownCapability is returned when a tool other than resend_send_email is invoked.
	ErrUnknownCapability = errors.New("unknown tool")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// ValidationCode identifies which validation rule rejected a request.
type ValidationCode string

const (
	CodeInvalidArguments ValidationCode = "invalid_arguments"
	CodeMissingRequired  ValidationCode = "missing_required_fields"
	CodeMissingContent   ValidationCode = "missing_content"
)

// ValidationError reports a request rejected before the provider was called.
type ValidationError struct {
	Err     error
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(code ValidationCode, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

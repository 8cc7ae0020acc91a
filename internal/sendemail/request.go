package sendemail

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/resend-mcp/pkg/mailer"
)

// AddressList is a list of email addresses.
// It decodes from either a JSON array of strings or a single string.
type AddressList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *AddressList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = AddressList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errors.New("expected a string or an array of strings")
	}
	*l = many
	return nil
}

// Request holds the arguments of a resend_send_email call.
// Empty strings and empty lists are treated as absent.
type Request struct {
	From        string      `json:"from"`
	Subject     string      `json:"subject"`
	Text        string      `json:"text,omitempty"`
	HTML        string      `json:"html,omitempty"`
	ScheduledAt string      `json:"scheduledAt,omitempty"`
	To          AddressList `json:"to"`
	CC          AddressList `json:"cc,omitempty"`
	BCC         AddressList `json:"bcc,omitempty"`
	ReplyTo     AddressList `json:"replyTo,omitempty"`
}

// DecodeRequest parses raw tool arguments.
// Missing arguments decode to an empty Request, which then fails Validate.
func DecodeRequest(raw json.RawMessage) (*Request, error) {
	req := &Request{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return req, nil
	}
	if err := json.Unmarshal(trimmed, req); err != nil {
		return nil, &ValidationError{
			Err:     err,
			Code:    CodeInvalidArguments,
			Message: "Invalid arguments: " + err.Error(),
		}
	}
	return req, nil
}

// Validate applies the request rules in order; the first failing rule wins.
func (r *Request) Validate() error {
	if len(r.To) == 0 || r.From == "" || r.Subject == "" {
		return newValidationError(CodeMissingRequired, MsgMissingRequired)
	}
	if r.Text == "" && r.HTML == "" {
		return newValidationError(CodeMissingContent, MsgMissingContent)
	}
	return nil
}

// Email converts the request into a provider-neutral email.
// Only values supplied by the caller are carried over; no defaults are applied.
func (r *Request) Email() *mailer.Email {
	return &mailer.Email{
		From:        r.From,
		To:          r.To,
		Subject:     r.Subject,
		Text:        r.Text,
		HTML:        r.HTML,
		CC:          r.CC,
		BCC:         r.BCC,
		ReplyTo:     r.ReplyTo,
		ScheduledAt: r.ScheduledAt,
	}
}

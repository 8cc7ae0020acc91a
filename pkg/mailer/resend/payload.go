package resend

import "github.com/dmitrymomot/resend-mcp/pkg/mailer"

// Outbound payload keys as expected by the Resend send-email endpoint.
const (
	keyFrom        = "from"
	keyTo          = "to"
	keySubject     = "subject"
	keyText        = "text"
	keyHTML        = "html"
	keyCC          = "cc"
	keyBCC         = "bcc"
	keyReplyTo     = "reply_to"
	keyScheduledAt = "scheduled_at"
)

// Payload is the JSON body sent to the Resend API.
// It only ever holds keys whose value was supplied.
type Payload map[string]any

// payloadBuilder writes a field only when it carries a value.
type payloadBuilder struct {
	p Payload
}

func (b payloadBuilder) str(key, v string) payloadBuilder {
	if v != "" {
		b.p[key] = v
	}
	return b
}

func (b payloadBuilder) list(key string, v []string) payloadBuilder {
	if len(v) > 0 {
		b.p[key] = v
	}
	return b
}

// BuildPayload converts an email into the provider payload,
// renaming fields to Resend's snake_case keys and omitting absent ones.
func BuildPayload(email *mailer.Email) Payload {
	b := payloadBuilder{p: make(Payload, 9)}
	b.str(keyFrom, email.From).
		list(keyTo, email.To).
		str(keySubject, email.Subject).
		str(keyText, email.Text).
		str(keyHTML, email.HTML).
		list(keyCC, email.CC).
		list(keyBCC, email.BCC).
		list(keyReplyTo, email.ReplyTo).
		str(keyScheduledAt, email.ScheduledAt)
	return b.p
}

package mailer

// Email represents a fully-prepared email message ready for sending.
// Zero-valued optional fields are treated as absent by providers.
type Email struct {
	From        string   // Sender address (required)
	Subject     string   // Email subject (required)
	Text        string   // Plain text body
	HTML        string   // HTML body
	ScheduledAt string   // ISO 8601 timestamp for scheduled delivery
	To          []string // Recipients (at least one required)
	CC          []string // Carbon copy recipients
	BCC         []string // Blind carbon copy recipients
	ReplyTo     []string // Reply-to addresses
}

// Validate checks the minimal invariants every provider relies on.
func (e *Email) Validate() error {
	if e == nil || len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.From == "" {
		return ErrNoSender
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.Text == "" && e.HTML == "" {
		return ErrNoContent
	}
	return nil
}

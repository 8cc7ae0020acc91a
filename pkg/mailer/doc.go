// Package mailer defines the provider-neutral email model used by the server.
//
// The package separates what is sent (Email) from how it is delivered
// (Sender), so the tool layer never depends on a concrete provider SDK.
//
// # Usage
//
// Basic usage with the built-in Resend provider:
//
//	sender, err := resend.New(resend.Config{
//		APIKey:  os.Getenv("RESEND_API_KEY"),
//		Timeout: 30 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	id, err := sender.Send(ctx, &mailer.Email{
//		From:    "team@example.com",
//		To:      []string{"user@example.com"},
//		Subject: "Welcome",
//		Text:    "Hello!",
//	})
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) (string, error) {
//		// Send email using your provider's API
//		return "message-id", nil
//	}
//
// SenderFunc adapts a plain function, which is handy in tests.
//
// # Errors
//
// Validation sentinels (ErrNoRecipient, ErrNoSender, ErrNoSubject,
// ErrNoContent) report malformed messages. Provider failures are wrapped in
// *ProviderError, which keeps the provider's message text intact and matches
// ErrSendFailed with errors.Is.
package mailer

package resend

import "time"

// DefaultTimeout bounds a single send request when Config.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey         string        `env:"RESEND_API_KEY,required"`
	DefaultFrom    string        `env:"RESEND_DEFAULT_FROM"`
	DefaultReplyTo string        `env:"RESEND_DEFAULT_REPLY_TO"`
	BaseURL        string        `env:"RESEND_BASE_URL"`
	Timeout        time.Duration `env:"RESEND_TIMEOUT" envDefault:"30s"`
}

package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/resend-mcp/pkg/mailer"
)

const (
	providerName = "resend"
	emailsPath   = "emails"

	// resend-go prefixes API error messages with this marker.
	apiErrorPrefix = "[ERROR]: "
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("resend: api key is required")

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// Option configures a Sender.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// New creates a new Resend sender.
// The API key is the only required setting; BaseURL overrides the API endpoint.
func New(cfg Config, opts ...Option) (*Sender, error) {
	key := strings.Trim(strings.TrimSpace(cfg.APIKey), "'")
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	o := &options{httpClient: &http.Client{Timeout: cfg.Timeout}}
	for _, opt := range opts {
		opt(o)
	}

	client := resend.NewCustomClient(o.httpClient, key)
	if cfg.BaseURL != "" {
		base, err := parseBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = base
	}

	return &Sender{client: client}, nil
}

// Send implements mailer.Sender.
// The email is forwarded exactly as given: no configured defaults are applied.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	req, err := s.client.NewRequest(ctx, http.MethodPost, emailsPath, BuildPayload(email))
	if err != nil {
		return "", fmt.Errorf("resend: build request: %w", err)
	}

	resp := new(resend.SendEmailResponse)
	if _, err := s.client.Perform(req, resp); err != nil {
		return "", mailer.NewProviderError(providerName, apiError(err))
	}

	return resp.Id, nil
}

// Healthcheck reports whether the sender is usable.
// New already rejects an empty key, so this only fails for a zero-value or nil
// Sender. It does not call the API: Resend has no side-effect free probe for
// send-only keys.
func (s *Sender) Healthcheck(context.Context) error {
	if s == nil || s.client == nil || s.client.ApiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// apiError strips the resend-go marker from API error responses, leaving the
// provider's message. Typed errors such as *resend.RateLimitError pass through.
func apiError(err error) error {
	var rateLimit *resend.RateLimitError
	if errors.As(err, &rateLimit) {
		return err
	}
	if msg, ok := strings.CutPrefix(err.Error(), apiErrorPrefix); ok {
		return errors.New(msg)
	}
	return err
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("resend: invalid base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("resend: invalid base url %q: scheme and host are required", raw)
	}
	return u, nil
}

package sendemail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dmitrymomot/resend-mcp/pkg/logger"
	"github.com/dmitrymomot/resend-mcp/pkg/mailer"
)

// DefaultTimeout bounds a provider call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Handler validates resend_send_email invocations and forwards them to a mailer.Sender.
// It keeps no per-call state and is safe for concurrent use.
type Handler struct {
	sender  mailer.Sender
	logger  *slog.Logger
	newID   func() string
	timeout time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTimeout bounds each provider call.
// Defaults to 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithIDGenerator overrides the invocation id generator.
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// NewHandler creates a Handler delivering through sender.
func NewHandler(sender mailer.Sender, opts ...Option) *Handler {
	h := &Handler{
		sender:  sender,
		logger:  logger.NewNope(),
		newID:   newInvocationID,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Invoke runs a tool call. Only an unknown tool name yields an error;
// every other failure is reported through the returned Result.
func (h *Handler) Invoke(ctx context.Context, name string, args json.RawMessage) (Result, error) {
	if name != ToolName {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
	}

	ctx = WithInvocationID(ctx, h.newID())
	res := h.send(ctx, args)
	log := h.logger.With(slog.String("tool", name))
	if res.Failed() {
		log.WarnContext(ctx, "email not sent", slog.String("reason", res.Message))
	} else {
		log.InfoContext(ctx, "email sent", slog.String("message_id", res.ID))
	}
	return res, nil
}

// ToolHandler adapts Invoke to the MCP SDK's raw tool handler.
func (h *Handler) ToolHandler() mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var (
			name string
			args json.RawMessage
		)
		if req != nil && req.Params != nil {
			name, args = req.Params.Name, req.Params.Arguments
		}

		res, err := h.Invoke(ctx, name, args)
		if err != nil {
			return nil, err
		}
		return res.CallToolResult(), nil
	}
}

// send is the single error-to-result boundary of a tool call.
func (h *Handler) send(ctx context.Context, args json.RawMessage) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(ctx, "panic while sending email", slog.Any("panic", r))
			res = Failure(MsgInternal)
		}
	}()

	req, err := DecodeRequest(args)
	if err != nil {
		return failure(err)
	}
	if err := req.Validate(); err != nil {
		return failure(err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	id, err := h.sender.Send(sendCtx, req.Email())
	if err != nil {
		if isTimeout(err) && ctx.Err() == nil {
			return Failure(fmt.Sprintf("request to email provider timed out after %s", h.timeout))
		}
		h.logger.ErrorContext(ctx, "email provider call failed", slog.String("error", err.Error()))
		return failure(err)
	}
	return Success(id)
}

func failure(err error) Result {
	if msg := err.Error(); msg != "" {
		return Failure(msg)
	}
	return Failure(MsgInternal)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func newInvocationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

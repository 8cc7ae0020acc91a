package sendemail

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// ToolName is the only tool this server implements.
	ToolName = "resend_send_email"

	toolDescription = "Send an email using the Resend API."
)

// Defaults are process-configured values surfaced to callers as schema hints.
// The adapter never substitutes them into a request.
type Defaults struct {
	From    string
	ReplyTo string
}

// Tool returns the resend_send_email descriptor advertised through tools/list.
func Tool(defaults Defaults) *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolName,
		Description: toolDescription,
		InputSchema: InputSchema(defaults),
	}
}

// InputSchema describes the Request shape.
// The oneOf constraint allows text, html, or both; the handler only checks
// that at least one of them is present.
func InputSchema(defaults Defaults) *jsonschema.Schema {
	replyTo := []string{}
	if defaults.ReplyTo != "" {
		replyTo = []string{defaults.ReplyTo}
	}

	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"to":      stringList("Email recipient(s)"),
			"from":    withDefault(str("Sender email address (must be verified in Resend)"), defaults.From),
			"subject": str("Email subject line"),
			"text":    str("Plain text content of the email"),
			"html":    str("HTML content of the email (optional)"),
			"cc":      stringList("CC recipients (optional)"),
			"bcc":     stringList("BCC recipients (optional)"),
			"replyTo": withDefault(stringList("Reply-to email addresses (optional)"), replyTo),
			"scheduledAt": {
				Type:        "string",
				Description: "ISO 8601 date string to schedule the email (optional)",
			},
		},
		Required: []string{"to", "from", "subject"},
		OneOf: []*jsonschema.Schema{
			{Required: []string{"text"}},
			{Required: []string{"html"}},
			{Required: []string{"text", "html"}},
		},
	}
}

func str(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func stringList(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Items:       &jsonschema.Schema{Type: "string"},
		Description: desc,
	}
}

func withDefault(s *jsonschema.Schema, v any) *jsonschema.Schema {
	raw, err := json.Marshal(v)
	if err == nil {
		s.Default = raw
	}
	return s
}

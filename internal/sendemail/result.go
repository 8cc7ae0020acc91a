package sendemail

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Result is the outcome of a single send: a provider message id on success,
// or a human-readable message on failure.
type Result struct {
	ID      string
	Message string
	failed  bool
}

// Success returns a successful Result carrying the provider id.
func Success(id string) Result {
	return Result{ID: id}
}

// Failure returns a failed Result carrying msg.
func Failure(msg string) Result {
	return Result{Message: msg, failed: true}
}

// Failed reports whether the send failed.
func (r Result) Failed() bool {
	return r.failed
}

// Text renders the message shown to the calling agent.
func (r Result) Text() string {
	if r.failed {
		return "Failed to send email: " + r.Message
	}
	return "Email sent successfully! ID: " + r.ID
}

// CallToolResult wraps the result into an MCP content-block response.
// Failures set IsError so the agent can react without a protocol error.
func (r Result) CallToolResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: r.Text()}},
		IsError: r.failed,
	}
}

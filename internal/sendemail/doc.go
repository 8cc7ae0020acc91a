// Package sendemail implements the resend_send_email MCP tool.
//
// It holds three pieces: the tool descriptor advertised through tools/list,
// the request adapter that validates arguments and calls a mailer.Sender,
// and the mapping from the adapter's Result to an MCP content-block response.
//
// Validation runs in a fixed order and the first failing rule wins:
//
//  1. unknown tool name: ErrUnknownCapability, surfaced as a protocol error
//  2. malformed arguments: failure result
//  3. missing to, from or subject: failure result
//  4. neither text nor html: failure result
//
// Everything after the tool name check is reported as a failure Result with
// the error flag set, never as a protocol error, so the calling agent can see
// what went wrong and retry with corrected arguments.
package sendemail

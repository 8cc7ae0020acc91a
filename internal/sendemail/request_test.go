package sendemail

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	t.Parallel()

	req, err := DecodeRequest(json.RawMessage(`{
		"to": ["a@x.com"],
		"from": "b@x.com",
		"subject": "Hi",
		"text": "hello",
		"cc": "cc@x.com",
		"replyTo": ["r@x.com"],
		"scheduledAt": "2026-11-01T09:00:00Z"
	}`))

	require.NoError(t, err)
	require.Equal(t, AddressList{"a@x.com"}, req.To)
	require.Equal(t, AddressList{"cc@x.com"}, req.CC)
	require.Equal(t, AddressList{"r@x.com"}, req.ReplyTo)
	require.Nil(t, req.BCC)
	require.Equal(t, "2026-11-01T09:00:00Z", req.ScheduledAt)
}

func TestDecodeRequest_Empty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "null", "  "} {
		req, err := DecodeRequest(json.RawMessage(raw))
		require.NoError(t, err)
		require.Equal(t, &Request{}, req)
	}
}

func TestDecodeRequest_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not an object":  `["a@x.com"]`,
		"wrong type":     `{"from": 42}`,
		"bad recipients": `{"to": [1, 2]}`,
		"malformed json": `{"to": `,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeRequest(json.RawMessage(raw))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, CodeInvalidArguments, verr.Code)
			require.Contains(t, verr.Error(), "Invalid arguments: ")
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Request {
		return Request{
			To:      AddressList{"a@x.com"},
			From:    "b@x.com",
			Subject: "Hi",
			Text:    "hello",
		}
	}

	tests := []struct {
		name   string
		mutate func(r *Request)
		code   ValidationCode
		msg    string
	}{
		{name: "missing to", mutate: func(r *Request) { r.To = nil }, code: CodeMissingRequired, msg: MsgMissingRequired},
		{name: "empty to", mutate: func(r *Request) { r.To = AddressList{} }, code: CodeMissingRequired, msg: MsgMissingRequired},
		{name: "missing from", mutate: func(r *Request) { r.From = "" }, code: CodeMissingRequired, msg: MsgMissingRequired},
		{name: "missing subject", mutate: func(r *Request) { r.Subject = "" }, code: CodeMissingRequired, msg: MsgMissingRequired},
		{name: "missing body", mutate: func(r *Request) { r.Text = "" }, code: CodeMissingContent, msg: MsgMissingContent},
		{
			name:   "required fields checked first",
			mutate: func(r *Request) { r.Subject = ""; r.Text = "" },
			code:   CodeMissingRequired,
			msg:    MsgMissingRequired,
		},
		{name: "html only", mutate: func(r *Request) { r.Text = ""; r.HTML = "<p>hi</p>" }},
		{name: "text and html", mutate: func(r *Request) { r.HTML = "<p>hi</p>" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid()
			tt.mutate(&r)
			err := r.Validate()

			if tt.code == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.code, verr.Code)
			require.EqualError(t, err, tt.msg)
		})
	}
}

func TestRequest_Email(t *testing.T) {
	t.Parallel()

	r := Request{
		To:          AddressList{"a@x.com"},
		From:        "b@x.com",
		Subject:     "Hi",
		HTML:        "<p>hi</p>",
		BCC:         AddressList{"bcc@x.com"},
		ReplyTo:     AddressList{"r@x.com"},
		ScheduledAt: "in 1 hour",
	}

	e := r.Email()

	require.Equal(t, []string{"a@x.com"}, e.To)
	require.Equal(t, "b@x.com", e.From)
	require.Equal(t, "<p>hi</p>", e.HTML)
	require.Empty(t, e.Text)
	require.Nil(t, e.CC)
	require.Equal(t, []string{"bcc@x.com"}, e.BCC)
	require.Equal(t, []string{"r@x.com"}, e.ReplyTo)
	require.Equal(t, "in 1 hour", e.ScheduledAt)
}

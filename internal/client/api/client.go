// Package api is the client's HTTP transport: it builds authenticated
// requests against the Poken backend, normalizes error bodies, and wraps
// every call in a busy/idle status notification for the UI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// Status messages shown while a request is in flight.
const (
	BusyDefaultMessage  = "処理中です…"
	LoginStatusMessage  = "ログインしています…"
	SignupStatusMessage = "アカウントを作成しています…"
	FetchProfileStatus  = "プロフィールを取得しています…"
	UpdateProfileStatus = "プロフィールを保存しています…"
)

// TokenSource supplies the current bearer credential. An empty string means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StatusNotifier receives the transient busy/idle signals surrounding each
// request. SetStatus(msg, true) fires before dispatch, SetStatus("", false)
// after completion or failure — exactly once each per call.
type StatusNotifier interface {
	SetStatus(message string, busy bool)
}

// RequestOptions controls a single Request call.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body, when non-nil, is JSON-encoded. Mutually exclusive with RawBody.
	Body any
	// RawBody is sent as-is; the caller sets its Content-Type via Headers.
	RawBody []byte
	// Headers are extra request headers. A caller-supplied Content-Type
	// suppresses the automatic application/json.
	Headers map[string]string
	// SkipStatus suppresses the busy/idle notification for this call.
	SkipStatus bool
	// StatusMessage overrides BusyDefaultMessage while the call runs.
	StatusMessage string
}

// Error is a transport failure: network error, non-2xx response, or an
// unparsable success body. It always carries a single message string; for
// non-2xx responses the message comes from the server's `detail` field when
// one is present, else from the HTTP status text.
type Error struct {
	StatusCode int // zero when the request never reached the server
	Message    string
}

func (e *Error) Error() string { return e.Message }

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	status  StatusNotifier
	// attempts >1 enables transport-level retry (config surface; default 1
	// keeps the "never retried automatically" behavior).
	attempts uint64
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (timeouts, transport).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetryAttempts sets the total number of dispatch attempts for network
// failures. Values below 1 are treated as 1. Non-2xx responses are never
// retried.
func WithRetryAttempts(n int) Option {
	return func(c *Client) {
		if n < 1 {
			n = 1
		}
		c.attempts = uint64(n)
	}
}

func New(baseURL string, tokens TokenSource, status StatusNotifier, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		tokens:   tokens,
		status:   status,
		attempts: 1,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Request performs one API call and returns the raw JSON body, nil for an
// empty (or 204) success. Callers validate the shape; no schema checking
// happens here.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	if !opts.SkipStatus {
		msg := opts.StatusMessage
		if msg == "" {
			msg = BusyDefaultMessage
		}
		c.status.SetStatus(msg, true)
		defer c.status.SetStatus("", false)
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var payload []byte
	switch {
	case opts.RawBody != nil:
		payload = opts.RawBody
	case opts.Body != nil:
		var err error
		payload, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
	}

	resp, err := c.dispatch(ctx, method, path, opts, payload)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, &Error{StatusCode: resp.StatusCode, Message: "invalid JSON in response body"}
	}
	return json.RawMessage(body), nil
}

// dispatch builds and sends the HTTP request, retrying network-level
// failures when retry is configured. A response, any response, ends the
// retry loop.
func (c *Client) dispatch(ctx context.Context, method, path string, opts RequestOptions, payload []byte) (*http.Response, error) {
	send := func(ctx context.Context) (*http.Response, error) {
		var r io.Reader
		if payload != nil {
			r = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
		if err != nil {
			return nil, err
		}
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
		if req.Header.Get("Content-Type") == "" && opts.Body != nil && opts.RawBody == nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		return c.http.Do(req)
	}

	if c.attempts <= 1 {
		return send(ctx)
	}

	var resp *http.Response
	backoff := retry.WithMaxRetries(c.attempts-1, retry.NewFibonacci(250*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		resp, err = send(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	return resp, err
}

// errorMessage extracts the human-readable detail string from an error
// body, falling back to the transport-level status text.
func errorMessage(statusCode int, body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return http.StatusText(statusCode)
}

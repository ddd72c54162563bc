package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fundunity/cmsdash/internal/common"
)

// TokenSource yields the current bearer token; "" means anonymous.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// bearerTransport sets the Authorization header from a TokenSource.
type bearerTransport struct {
	tokens TokenSource
	base   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := ""
	if t.tokens != nil {
		token = t.tokens.Token()
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return t.base.RoundTrip(r)
}

// HTTPClient is the shared transport of all API clients.
//
// Every request passes through a bearer RoundTripper that asks the
// TokenSource for the current token, so a login or logout takes effect on
// the next call without rebuilding any client. Requests carry the caller's
// context; nothing is retried.
type HTTPClient struct {
	hc *http.Client
}

// NewHTTPClient builds a client reading its token from tokens on every
// request. timeout 0 means no timeout.
func NewHTTPClient(tokens TokenSource, timeout time.Duration) *HTTPClient {
	return NewHTTPClientWithTransport(tokens, timeout, http.DefaultTransport)
}

// NewHTTPClientWithTransport is NewHTTPClient over a custom base transport,
// for example an httptest server's client transport.
func NewHTTPClientWithTransport(tokens TokenSource, timeout time.Duration, base http.RoundTripper) *HTTPClient {
	return &HTTPClient{
		hc: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{tokens: tokens, base: base},
		},
	}
}

// do sends the request and decodes a 2xx JSON body into out when out is
// non-nil. An empty body leaves out untouched.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL, err)
	}
	return nil
}

// doJSON marshals in (when non-nil) as the request body and decodes the
// answer into out.
func (c *HTTPClient) doJSON(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

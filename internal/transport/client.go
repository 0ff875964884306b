// Package transport provides the HTTP fetch primitive used by the
// extractors: GET a URL as JSON or text, plus a HEAD-equivalent
// existence probe, all with a fixed per-call timeout and a client-side
// rate limiter for the GitHub contents API.
package transport

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/printdex/printdex/pkg/constants"
	"github.com/printdex/printdex/pkg/errors"
)

// Client wraps an http.Client with rate limiting and response decoding.
type Client struct {
	http    *http.Client
	probe   *http.Client
	limiter *rate.Limiter
	source  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Used by tests and
// by callers that need a custom timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the
// limiter.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			c.limiter = nil
		}
	}
}

// New creates a transport client for the named upstream source.
func New(source string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		probe:   &http.Client{Timeout: constants.ProbeTimeout},
		limiter: rate.NewLimiter(rate.Limit(constants.GitHubRequestsPerSecond), 1),
		source:  source,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a rate-limited GET and returns the response body. The
// caller owns the returned bytes; non-2xx statuses become APIErrors so
// callers can branch on errors.IsNotFound for fallback lookups.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.WrapAPI(c.source, 0, classify(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapAPI(c.source, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.APIError{
			Source:   c.source,
			Endpoint: url,
			Message:  "request failed",
			Err:      classify(err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &errors.APIError{
			Source:     c.source,
			Endpoint:   url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.APIError{
			Source:   c.source,
			Endpoint: url,
			Message:  "reading response body",
			Err:      err,
		}
	}
	return body, nil
}

// classify maps low-level transport failures onto the package
// sentinels so callers can branch with errors.IsTimeout and
// errors.IsCanceled without inspecting net internals.
func classify(err error) error {
	var nerr net.Error
	switch {
	case stderrors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", errors.ErrCanceled, err)
	case stderrors.Is(err, context.DeadlineExceeded),
		stderrors.As(err, &nerr) && nerr.Timeout():
		return fmt.Errorf("%w: %v", errors.ErrTimeout, err)
	}
	return err
}

// GetJSON fetches a URL and decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.NewParseError("json", url, err.Error(), err)
	}
	return nil
}

// GetText fetches a URL and returns the response body as a string.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Exists performs a HEAD probe against a URL and reports whether it
// answered 200. Probe failures count as absence; this is best-effort
// and never returns an error.
func (c *Client) Exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.probe.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

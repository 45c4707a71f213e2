package jsonrpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 30 * time.Second

type HTTPOptions struct {
	Timeout time.Duration
	Client  *http.Client
}

// HTTPTransport posts each request on its own round trip.
type HTTPTransport struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

func NewHTTPTransport(url string, opts HTTPOptions) *HTTPTransport {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	return &HTTPTransport{
		url:     url,
		timeout: opts.Timeout,
		client:  opts.Client,
	}
}

func (t *HTTPTransport) Request(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request %s: %w", req.Method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request %s: %w", req.Method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, t.wrapErr(ctx, req, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrHTTPStatus, t.url, resp.StatusCode, string(b))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctx.Err() != nil {
			return nil, t.wrapErr(ctx, req, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, req.Method, err)
	}
	return &out, nil
}

func (t *HTTPTransport) wrapErr(ctx context.Context, req *Request, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", ErrTimeout, req.Method, t.timeout)
	}
	return fmt.Errorf("post %s to %s: %w", req.Method, t.url, err)
}

// Close is a no-op, HTTP requests hold no shared connection state.
func (t *HTTPTransport) Close() error {
	return nil
}

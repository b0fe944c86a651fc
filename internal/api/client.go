// Package api binds the bookstore REST endpoints. Every response arrives in
// a {success, message, data} envelope; bindings unwrap data or return an
// *Error carrying the server's display message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 10 << 20
)

// EmptyResponseMessage is the display text for a success without a body.
const EmptyResponseMessage = "Empty response from server"

// ErrEmptyResponse is returned when a 2xx response has no body or no data
// where data is required.
var ErrEmptyResponse = errors.New("empty response from server")

// TokenSource yields the current bearer token, "" when signed out.
type TokenSource interface {
	Token() string
}

// Error is a non-2xx response.
type Error struct {
	StatusCode int
	// Status is the transport status text, e.g. "Internal Server Error".
	Status string
	// Message is the server-provided message, if the body carried one.
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. Its transport is still
// wrapped so bearer tokens and request ids are injected.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.http
	hc.Transport = newBearerTransport(hc.Transport, tokens, c.logger.With("component", "api_client"))
	c.http = &hc

	return c, nil
}

func (c *Client) Auth() *AuthAPI      { return &AuthAPI{c: c} }
func (c *Client) Books() *BookAPI     { return &BookAPI{c: c} }
func (c *Client) Cart() *CartAPI      { return &CartAPI{c: c} }
func (c *Client) Orders() *OrderAPI   { return &OrderAPI{c: c} }
func (c *Client) Reviews() *ReviewAPI { return &ReviewAPI{c: c} }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) hasData() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// call performs one request and returns the decoded envelope of a 2xx
// response. A 2xx without a body yields ErrEmptyResponse.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, in any) (envelope, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return envelope{}, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return envelope{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelope{}, &Error{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Message:    serverMessage(raw),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return envelope{}, ErrEmptyResponse
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}
	return env, nil
}

// serverMessage extracts a display message from an error body. Plain text
// bodies are used as-is when short enough to show.
func serverMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		return body.Error
	}

	if len(raw) <= 200 && raw[0] != '<' {
		return string(raw)
	}
	return ""
}

// fetch runs a request whose envelope must carry data of type T.
func fetch[T any](ctx context.Context, c *Client, method, path string, query url.Values, in any) (T, error) {
	var out T

	env, err := c.call(ctx, method, path, query, in)
	if err != nil {
		return out, err
	}
	if !env.hasData() {
		return out, ErrEmptyResponse
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode data: %w", err)
	}
	return out, nil
}

// send runs a request whose envelope carries only a message.
func send(ctx context.Context, c *Client, method, path string) (string, error) {
	env, err := c.call(ctx, method, path, nil, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

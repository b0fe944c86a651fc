package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/bookstore/internal/requestid"
)

// bearerTransport reads the token holder on every request, so a logout takes
// effect for the very next call.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	logger *slog.Logger
}

func newBearerTransport(base http.RoundTripper, tokens TokenSource, logger *slog.Logger) *bearerTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &bearerTransport{base: base, tokens: tokens, logger: logger}
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}

	id := requestid.FromContext(r.Context())
	if id == "" {
		id = requestid.New()
	}
	r.Header.Set(requestid.Header, id)

	start := time.Now()
	resp, err := t.base.RoundTrip(r)
	if err != nil {
		t.logger.DebugContext(r.Context(), "api request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", id,
			"error", err,
		)
		return nil, err
	}

	t.logger.DebugContext(r.Context(), "api request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", id,
	)
	return resp, nil
}

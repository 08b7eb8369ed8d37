package routerhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitalvas/waypoint/router"
)

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored in the request context
// by the RequestID node. Returns an empty string if no ID is present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// RequestIDOf returns the request ID stored on the dispatch context by the
// RequestID node. It also works for dispatches without an HTTP request.
func RequestIDOf(c *router.Context) string {
	if id, ok := c.Get(requestIDKey{}); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

// RequestIDConfig configures the RequestID node.
type RequestIDConfig struct {
	// HeaderName overrides the header used to propagate the request ID.
	// Defaults to "X-Request-ID" when empty.
	HeaderName string

	// GenerateFunc is an optional callback that returns a new unique ID.
	// The request is nil for dispatches without HTTP transport. Defaults to
	// GenerateUUIDv4.
	GenerateFunc func(r *http.Request) string

	// TrustIncoming, when true, reuses an existing request ID from the
	// incoming request header instead of generating a new one.
	TrustIncoming bool
}

type requestID struct {
	router.Link
	headerName    string
	generate      func(r *http.Request) string
	trustIncoming bool
}

// RequestID returns a node that generates or propagates a request ID. The
// ID is stored on the dispatch context and, for HTTP dispatches, set on the
// request header, the request context and the response header.
func RequestID(cfg RequestIDConfig) router.Middleware {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	return &requestID{
		headerName:    headerName,
		generate:      generate,
		trustIncoming: cfg.TrustIncoming,
	}
}

func (m *requestID) Call(c *router.Context) error {
	r := c.Request

	id := ""
	if m.trustIncoming && r != nil {
		id = r.Header.Get(m.headerName)
	}

	if id == "" {
		id = m.generate(r)
	}

	if id != "" {
		c.Set(requestIDKey{}, id)

		if r != nil {
			r.Header.Set(m.headerName, id)
			c.Request = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
		}
		if c.Writer != nil {
			c.Writer.Header().Set(m.headerName, id)
		}
	}

	return m.CallNext(c)
}

// GenerateUUIDv4 returns a new UUID v4 string.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.4
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new UUID v7 string. UUIDs are time-ordered:
// IDs generated later sort lexicographically after earlier ones.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateUUIDv7(_ *http.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}

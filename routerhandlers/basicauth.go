package routerhandlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/vitalvas/waypoint/router"
)

// ErrNoAuthSource is returned when BasicAuthConfig has neither ValidateFunc
// nor Credentials configured.
var ErrNoAuthSource = errors.New("basic auth: at least one of ValidateFunc or Credentials must be set")

// BasicAuthConfig configures the BasicAuth node.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc7617
type BasicAuthConfig struct {
	// Realm is the authentication realm sent in the WWW-Authenticate header.
	// Defaults to "Restricted" when empty.
	Realm string

	// ValidateFunc is called to validate credentials dynamically.
	// Takes priority over Credentials when both are set.
	ValidateFunc func(username, password string) bool

	// Credentials is a static map of username -> password pairs, compared
	// in constant time.
	Credentials map[string]string
}

type basicAuth struct {
	router.Link
	wwwAuthenticate string
	validate        func(username, password string) bool
	credentials     map[string]string
}

// BasicAuth returns a node that implements HTTP Basic Authentication. When
// credentials are missing or invalid it answers 401 Unauthorized and stops
// the chain; the route handler does not run. Dispatches without an HTTP
// request are always rejected.
//
// It returns ErrNoAuthSource if both ValidateFunc and Credentials are nil/empty.
func BasicAuth(cfg BasicAuthConfig) (router.Middleware, error) {
	if cfg.ValidateFunc == nil && len(cfg.Credentials) == 0 {
		return nil, ErrNoAuthSource
	}

	realm := cfg.Realm
	if realm == "" {
		realm = "Restricted"
	}

	return &basicAuth{
		wwwAuthenticate: fmt.Sprintf("Basic realm=%q", realm),
		validate:        cfg.ValidateFunc,
		credentials:     cfg.Credentials,
	}, nil
}

func (m *basicAuth) Call(c *router.Context) error {
	if !m.authorized(c.Request) {
		if c.Writer != nil {
			c.Writer.Header().Set("WWW-Authenticate", m.wwwAuthenticate)
			c.Writer.WriteHeader(http.StatusUnauthorized)
		}
		return nil
	}

	return m.CallNext(c)
}

func (m *basicAuth) authorized(r *http.Request) bool {
	if r == nil {
		return false
	}

	username, password, ok := r.BasicAuth()
	if !ok {
		return false
	}

	if m.validate != nil {
		return m.validate(username, password)
	}

	expectedPassword, exists := m.credentials[username]
	// Always compare so timing does not reveal whether the user exists.
	passwordMatch := constantTimeEqual(password, expectedPassword)

	return exists && passwordMatch
}

// constantTimeEqual compares two strings in constant time by first hashing
// them with SHA-256, which also hides length differences.
func constantTimeEqual(a, b string) bool {
	aHash := sha256.Sum256([]byte(a))
	bHash := sha256.Sum256([]byte(b))

	return subtle.ConstantTimeCompare(aHash[:], bHash[:]) == 1
}

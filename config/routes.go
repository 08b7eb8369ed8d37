package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/vitalvas/waypoint/router"
)

// Route is one route of the manifest. Exactly one of Respond and Redirect
// must be set.
type Route struct {
	// Methods is a pipe-separated method list, e.g. "GET|HEAD".
	Methods  string    `yaml:"methods"`
	Pattern  string    `yaml:"pattern"`
	Name     string    `yaml:"name,omitempty"`
	Respond  *Respond  `yaml:"respond,omitempty"`
	Redirect *Redirect `yaml:"redirect,omitempty"`
}

// Respond answers with a static response. In Body, $1 to $9 (or ${n}) are
// replaced with the positional route params, $method and $path with the
// request method and path.
type Respond struct {
	Status      int    `yaml:"status,omitempty"`
	ContentType string `yaml:"content_type,omitempty"`
	Body        string `yaml:"body"`
}

// Redirect answers with a redirect. To is expanded like Respond.Body.
type Redirect struct {
	To     string `yaml:"to"`
	Status int    `yaml:"status,omitempty"`
}

func (r Route) validate() error {
	var errs []error

	if strings.Trim(r.Methods, "| ") == "" {
		errs = append(errs, errors.New("methods is required"))
	}
	if r.Pattern == "" {
		errs = append(errs, errors.New("pattern is required"))
	}

	switch {
	case r.Respond == nil && r.Redirect == nil:
		errs = append(errs, errors.New("one of respond or redirect is required"))
	case r.Respond != nil && r.Redirect != nil:
		errs = append(errs, errors.New("respond and redirect are mutually exclusive"))
	case r.Respond != nil:
		if s := r.Respond.Status; s != 0 && (s < 100 || s > 599) {
			errs = append(errs, fmt.Errorf("respond.status %d out of range", s))
		}
	case r.Redirect != nil:
		if r.Redirect.To == "" {
			errs = append(errs, errors.New("redirect.to is required"))
		}
		if s := r.Redirect.Status; s != 0 && (s < 300 || s > 399) {
			errs = append(errs, fmt.Errorf("redirect.status %d is not a redirect", s))
		}
	}

	return errors.Join(errs...)
}

// Handler returns the handler serving the route.
func (r Route) Handler() router.HandlerFunc {
	if r.Redirect != nil {
		to, status := r.Redirect.To, r.Redirect.Status
		return func(c *router.Context, params ...string) error {
			return router.RedirectHandler(expand(to, c, params), status)(c)
		}
	}

	resp := Respond{}
	if r.Respond != nil {
		resp = *r.Respond
	}
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}

	return func(c *router.Context, params ...string) error {
		return c.Text(resp.Status, resp.ContentType, expand(resp.Body, c, params))
	}
}

// expand substitutes $n, $method and $path in s.
func expand(s string, c *router.Context, params []string) string {
	return os.Expand(s, func(key string) string {
		switch key {
		case "method":
			return c.Method()
		case "path":
			return c.Path()
		}

		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(params) {
			return ""
		}
		return params[n-1]
	})
}

// Register adds every manifest route to r, in manifest order.
func (c *Config) Register(r *router.Router) error {
	var errs []error

	for i, rt := range c.Routes {
		route := r.Match(rt.Methods, rt.Pattern, rt.Handler())
		if rt.Name != "" {
			route.Name(rt.Name)
		}
		if err := route.Err(); err != nil {
			errs = append(errs, fmt.Errorf("config: routes[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

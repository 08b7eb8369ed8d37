package router

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// RedirectHandler returns a handler that answers with a Location header set
// to to and the given status. A zero status means 302 Found.
func RedirectHandler(to string, status int) HandlerFunc {
	if status == 0 {
		status = http.StatusFound
	}
	return func(c *Context, _ ...string) error {
		if c.Writer == nil {
			return ErrNoResponseWriter
		}
		c.Writer.Header().Set("Location", to)
		c.Writer.WriteHeader(status)
		return nil
	}
}

// Redirect registers a GET route on from that redirects to to.
func (r *Router) Redirect(from, to string, status int) *Route {
	return r.Get(from, RedirectHandler(to, status))
}

// Push redirects the current response to target with 302 Found. A non-empty
// query is encoded and appended to the target.
func (r *Router) Push(c *Context, target string, query url.Values) error {
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return RedirectHandler(target, http.StatusFound)(c)
}

// PushRoute is like Push but redirects to the path of the route registered
// under name. The named pattern must not have placeholders; use URL to
// build a path for parameterized routes.
func (r *Router) PushRoute(c *Context, name string, query url.Values) error {
	r.mu.RLock()
	target, err := r.resolveName(name)
	r.mu.RUnlock()
	if err != nil {
		return r.warn(err, zap.String("route", name))
	}

	return r.Push(c, target, query)
}

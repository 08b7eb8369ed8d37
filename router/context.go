package router

import (
	"net/http"
	"strings"
)

// Context carries the state of a single dispatch: the request method and
// path the router matches against, the positional params of the handler
// being invoked, and a small value store shared by middleware, hooks and
// handlers.
//
// Contexts created by ServeHTTP also expose the ResponseWriter and Request.
// Contexts created with NewContext leave both nil.
type Context struct {
	// Writer is the response sink of an HTTP dispatch, nil otherwise.
	Writer http.ResponseWriter

	// Request is the incoming HTTP request, nil outside ServeHTTP.
	Request *http.Request

	method string
	path   string
	params []string
	values map[any]any

	// proceed resumes the dispatch pipeline once the last global middleware
	// node calls CallNext.
	proceed func() error
}

// Method returns the request method the context dispatches.
func (c *Context) Method() string {
	return c.method
}

// Path returns the normalized request path: query stripped, router prefix
// removed, a single leading slash and no trailing slash.
func (c *Context) Path() string {
	return c.path
}

// Params returns the positional params of the handler currently running.
func (c *Context) Params() []string {
	return c.params
}

// Param returns the i-th positional param, or "" when out of range.
func (c *Context) Param(i int) string {
	if i < 0 || i >= len(c.params) {
		return ""
	}
	return c.params[i]
}

// Set stores a value on the context.
func (c *Context) Set(key, value any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = value
}

// Get returns a value previously stored with Set.
func (c *Context) Get(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// callNext resumes the pipeline from the end of the middleware chain.
func (c *Context) callNext() error {
	if c.proceed == nil {
		return nil
	}
	return c.proceed()
}

// NewContext returns a context for dispatching method and uri without an HTTP
// transport. The uri is normalized the same way ServeHTTP normalizes request
// paths, including removal of the configured path prefix.
func (r *Router) NewContext(method, uri string) *Context {
	return &Context{
		method: strings.ToUpper(method),
		path:   normalizePath(uri, r.config.PathPrefix),
	}
}

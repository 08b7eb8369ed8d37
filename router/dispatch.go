package router

import "strings"

// handle matches path against entries in order and invokes the handler of
// every matching entry, or only the first one when stopAfterFirst is set.
// It returns the number of handlers invoked; zero means nothing matched.
//
// A handler error stops the loop and is returned together with the count,
// which includes the failing handler.
func (r *Router) handle(c *Context, entries []*entry, stopAfterFirst bool, path string) (int, error) {
	var handled int

	for _, e := range entries {
		params, ok := e.pattern.match(path)
		if !ok {
			continue
		}

		c.params = params
		handled++

		if err := e.handler.invoke(r, c, params); err != nil {
			return handled, err
		}

		if stopAfterFirst {
			break
		}
	}

	return handled, nil
}

// HandleURL dispatches method and uri against the route table only: no
// hooks, middleware or not-found handling run. It returns the number of
// routes invoked, at most one.
func (r *Router) HandleURL(c *Context, method, uri string) (int, error) {
	c.method = strings.ToUpper(method)
	c.path = normalizePath(uri, "")

	r.mu.RLock()
	entries := r.routes[c.method]
	r.mu.RUnlock()

	return r.handle(c, entries, true, c.path)
}

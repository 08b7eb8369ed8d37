package router

import (
	"fmt"

	"go.uber.org/zap"
)

// entry is one row of a method bucket: a compiled pattern and its target.
// Routes registered under several methods share the *Route descriptor but
// get one entry per method.
type entry struct {
	pattern *pattern
	handler Handler
	route   *Route
}

// Route describes a registered route. It is returned by the registration
// methods so the route can be named or given scoped middleware:
//
//	r.Get("/users/{id}", show).Name("users.show")
type Route struct {
	router  *Router
	methods []string
	pattern string
	handler Handler
	name    string
	err     error
}

// Name records the route in the named-route index, used by URL, BeforeRoute
// and PushRoute. A route can be named once.
func (r *Route) Name(name string) *Route {
	if r.err != nil {
		return r
	}
	if r.name != "" {
		r.err = fmt.Errorf("router: route already has name %q, can't set %q", r.name, name)
		return r
	}

	rt := r.router
	rt.mu.Lock()
	_, exists := rt.namedRoutes[name]
	if exists {
		if err := rt.warn(fmt.Errorf("%w: %q", ErrDuplicateRouteName, name), zap.String("route", name)); err != nil {
			rt.mu.Unlock()
			r.err = err
			return r
		}
	}
	rt.namedRoutes[name] = r.pattern
	rt.mu.Unlock()

	r.name = name

	return r
}

// Middleware registers fn as scoped before-middleware for the route's
// methods and pattern.
func (r *Route) Middleware(fn HandlerFunc) *Route {
	if r.err != nil {
		return r
	}

	rt := r.router
	rt.mu.Lock()
	defer rt.mu.Unlock()

	r.err = rt.addScoped(r.methods, r.pattern, fn)

	return r
}

// Methods returns the methods the route is registered under.
func (r *Route) Methods() []string {
	return r.methods
}

// Pattern returns the full route pattern, group prefix included.
func (r *Route) Pattern() string {
	return r.pattern
}

// Handler returns the route target.
func (r *Route) Handler() Handler {
	return r.handler
}

// GetName returns the route name, if any.
func (r *Route) GetName() string {
	return r.name
}

// Err returns the error recorded while registering or configuring the route.
func (r *Route) Err() error {
	return r.err
}

// Match registers handler for pattern under every method of the
// pipe-separated methods list, e.g. "GET|POST". The active group prefix is
// applied to the pattern and the active namespace to Action targets.
//
// Routes are tried in registration order; the first match wins.
func (r *Router) Match(methods, pattern string, handler Handler) *Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := handler.(Action); ok {
		handler = a.qualify(r.namespace)
	}

	route := &Route{
		router:  r,
		methods: splitMethods(methods),
		pattern: r.applyPrefix(pattern),
		handler: handler,
	}

	if handler == nil {
		route.err = fmt.Errorf("router: nil handler for %q", route.pattern)
		r.logger.Error("router: route rejected", zap.String("pattern", route.pattern), zap.Error(route.err))
		return route
	}

	p, err := compilePattern(route.pattern)
	if err != nil {
		route.err = err
		r.logger.Error("router: route rejected", zap.String("pattern", route.pattern), zap.Error(err))
		return route
	}

	for _, m := range route.methods {
		r.routes[m] = append(r.routes[m], &entry{pattern: p, handler: handler, route: route})
	}
	r.descriptors = append(r.descriptors, route)

	return route
}

// Routes returns every registered route in registration order.
func (r *Router) Routes() []*Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Route, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Lookup returns the route that would handle method and path, together with
// its positional params, without invoking anything. The path is normalized
// like an incoming request path.
func (r *Router) Lookup(method, path string) (*Route, []string, bool) {
	c := r.NewContext(method, path)

	r.mu.RLock()
	entries := r.routes[c.method]
	r.mu.RUnlock()

	for _, e := range entries {
		if params, ok := e.pattern.match(c.path); ok {
			return e.route, params, true
		}
	}

	return nil, nil, false
}

// resolveName returns the pattern registered under name. The caller must
// hold r.mu.
func (r *Router) resolveName(name string) (string, error) {
	p, ok := r.namedRoutes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNameNotFound, name)
	}
	return p, nil
}

// URL builds the path of the route registered under name, substituting
// params into its placeholders in order.
func (r *Router) URL(name string, params ...string) (string, error) {
	r.mu.RLock()
	tpl, err := r.resolveName(name)
	r.mu.RUnlock()
	if err != nil {
		return "", err
	}

	p, err := compilePattern(tpl)
	if err != nil {
		return "", err
	}

	return p.build(params...)
}

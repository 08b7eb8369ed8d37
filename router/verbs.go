package router

// allMethods is the method list registered by All.
const allMethods = "GET|POST|PUT|DELETE|OPTIONS|PATCH|HEAD"

// All registers handler for pattern under GET, POST, PUT, DELETE, OPTIONS,
// PATCH and HEAD.
func (r *Router) All(pattern string, handler Handler) *Route {
	return r.Match(allMethods, pattern, handler)
}

// Get registers handler for GET requests to pattern.
func (r *Router) Get(pattern string, handler Handler) *Route {
	return r.Match("GET", pattern, handler)
}

// Post registers handler for POST requests to pattern.
func (r *Router) Post(pattern string, handler Handler) *Route {
	return r.Match("POST", pattern, handler)
}

// Put registers handler for PUT requests to pattern.
func (r *Router) Put(pattern string, handler Handler) *Route {
	return r.Match("PUT", pattern, handler)
}

// Patch registers handler for PATCH requests to pattern.
func (r *Router) Patch(pattern string, handler Handler) *Route {
	return r.Match("PATCH", pattern, handler)
}

// Delete registers handler for DELETE requests to pattern.
func (r *Router) Delete(pattern string, handler Handler) *Route {
	return r.Match("DELETE", pattern, handler)
}

// Options registers handler for OPTIONS requests to pattern.
func (r *Router) Options(pattern string, handler Handler) *Route {
	return r.Match("OPTIONS", pattern, handler)
}

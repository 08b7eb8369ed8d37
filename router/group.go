package router

// groupOptions holds per-group settings.
type groupOptions struct {
	namespace string
}

// GroupOption configures a route group.
type GroupOption func(*groupOptions)

// WithNamespace sets the controller namespace for Actions registered inside
// the group.
func WithNamespace(namespace string) GroupOption {
	return func(o *groupOptions) {
		o.namespace = namespace
	}
}

// Mount registers the routes added by fn under prefix. Groups nest: a group
// mounted inside another one is prefixed with the outer prefix as well.
//
// The previous prefix and namespace are restored when fn returns, also when
// it panics, so routes registered after Mount are unaffected.
//
//	r.Mount("/api", func(r *router.Router) {
//		r.Get("/users", listUsers) // GET /api/users
//	})
func (r *Router) Mount(prefix string, fn func(r *Router), opts ...GroupOption) {
	var o groupOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	savedPrefix, savedNamespace := r.groupPrefix, r.namespace
	r.groupPrefix = joinPrefix(r.groupPrefix, prefix)
	if o.namespace != "" {
		r.namespace = o.namespace
	}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.groupPrefix, r.namespace = savedPrefix, savedNamespace
		r.mu.Unlock()
	}()

	fn(r)
}

// Group is an alias for Mount.
func (r *Router) Group(prefix string, fn func(r *Router), opts ...GroupOption) {
	r.Mount(prefix, fn, opts...)
}

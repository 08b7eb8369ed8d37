package router

// Run dispatches c through the router. The stages are:
//
//  1. maintenance check: while the router is down, only the down handler
//     runs and its error is returned;
//  2. a non-nil after callback is registered as the after hook and is
//     the one this call fires;
//  3. the before hook;
//  4. the global middleware chain, whose last node resumes the stages below;
//  5. the before.route hook;
//  6. every scoped middleware matching the method and path;
//  7. the before.dispatch hook;
//  8. the first matching route;
//  9. the after.dispatch hook;
//  10. when no route matched, the not-found handler, and Run stops;
//  11. the after.route hook;
//  12. the after hook.
//
// Run reports whether a route handled the request. A bool returned by the
// after hook replaces that outcome. Errors from hooks, middleware and
// handlers stop the pipeline and are returned unchanged. When a middleware
// node does not continue the chain, Run returns false and a nil error.
func (r *Router) Run(c *Context, after ...HookFunc) (bool, error) {
	if r.appDown.Load() {
		down := r.DownHandler
		if down == nil {
			down = defaultDownHandler
		}
		return false, down(c)
	}

	var cb HookFunc
	if len(after) > 0 && after[0] != nil {
		cb = after[0]
		if err := r.Hook(HookAfter, cb); err != nil {
			return false, err
		}
	}

	s := r.snapshot()
	// Pinned so a concurrent Run with its own callback cannot swap it out.
	if cb != nil {
		s.hooks[HookAfter] = cb
	}

	if _, err := s.fire(HookBefore, c); err != nil {
		return false, err
	}

	if s.head == nil {
		return r.dispatch(s, c)
	}

	var (
		reached bool
		matched bool
		err     error
	)
	c.proceed = func() error {
		if reached {
			return nil
		}
		reached = true
		matched, err = r.dispatch(s, c)
		return err
	}

	if herr := s.head.Call(c); herr != nil {
		return false, herr
	}
	if !reached {
		return false, nil
	}

	return matched, err
}

// dispatch runs stages 5 to 12 of Run.
func (r *Router) dispatch(s *snapshot, c *Context) (bool, error) {
	if _, err := s.fire(HookBeforeRoute, c); err != nil {
		return false, err
	}

	if entries := s.scoped[c.method]; len(entries) > 0 {
		if _, err := r.handle(c, entries, false, c.path); err != nil {
			return false, err
		}
	}

	if _, err := s.fire(HookBeforeDispatch, c); err != nil {
		return false, err
	}

	var handled int
	if entries := s.routes[c.method]; len(entries) > 0 {
		n, err := r.handle(c, entries, true, c.path)
		if err != nil {
			return false, err
		}
		handled = n
	}

	if _, err := s.fire(HookAfterDispatch, c); err != nil {
		return false, err
	}

	if handled == 0 {
		notFound := r.NotFoundHandler
		if notFound == nil {
			notFound = defaultNotFoundHandler
		}
		c.params = nil
		return false, notFound(c)
	}

	if _, err := s.fire(HookAfterRoute, c); err != nil {
		return false, err
	}

	res, err := s.fire(HookAfter, c)
	if err != nil {
		return false, err
	}
	if b, ok := res.(bool); ok {
		return b, nil
	}

	return true, nil
}

func defaultNotFoundHandler(*Context, ...string) error {
	return ErrNotFound
}

func defaultDownHandler(*Context, ...string) error {
	return ErrAppDown
}

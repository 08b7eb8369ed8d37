package router

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Middleware is a node of the global middleware chain.
//
// The chain is a singly-linked list. Run invokes only its head; each node
// decides whether to continue by calling the next node, usually through
// Link.CallNext. The last node's CallNext resumes the dispatch pipeline, so a
// node that returns without calling it stops every later node and the route
// handler from running.
type Middleware interface {
	// Call performs the node's work and optionally continues the chain.
	Call(c *Context) error
	// SetNext links the node to the next downstream node.
	SetNext(next Middleware)
	// Next returns the next downstream node, or nil for the last node.
	Next() Middleware
}

// Link implements the linking half of Middleware. Embed it in a node type
// and implement Call:
//
//	type auth struct{ router.Link }
//
//	func (a *auth) Call(c *router.Context) error {
//		if !allowed(c) {
//			return nil // stop here
//		}
//		return a.CallNext(c)
//	}
type Link struct {
	next Middleware
}

// SetNext implements Middleware.
func (l *Link) SetNext(next Middleware) {
	l.next = next
}

// Next implements Middleware.
func (l *Link) Next() Middleware {
	return l.next
}

// CallNext invokes the next node, or resumes dispatch after the last node.
func (l *Link) CallNext(c *Context) error {
	if l.next != nil {
		return l.next.Call(c)
	}
	return c.callNext()
}

// MiddlewareFunc is a function-shaped middleware. Calling next continues the
// chain.
type MiddlewareFunc func(c *Context, next func() error) error

type funcMiddleware struct {
	Link
	fn MiddlewareFunc
}

// NewMiddleware wraps fn as a chain node.
func NewMiddleware(fn MiddlewareFunc) Middleware {
	return &funcMiddleware{fn: fn}
}

func (m *funcMiddleware) Call(c *Context) error {
	return m.fn(c, func() error {
		return m.CallNext(c)
	})
}

// Use prepends m to the global middleware chain: m becomes the head and
// links to the previous head, so the node added last runs first.
//
// Queueing the same instance twice is a setup error and returns
// ErrCircularMiddleware. Nodes carry their link, so one instance must not be
// shared between routers: a node that already has a next node is rejected
// with ErrMiddlewareInUse. A node that is only the tail of another chain
// cannot be told apart from a fresh one.
func (r *Router) Use(m Middleware) error {
	if m == nil {
		return ErrNilMiddleware
	}
	if !reflect.TypeOf(m).Comparable() {
		return fmt.Errorf("%w: %T", ErrUncomparableMiddleware, m)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.middleware {
		if n == m {
			return fmt.Errorf("%w: tried to queue the same %T instance twice", ErrCircularMiddleware, m)
		}
	}
	if m.Next() != nil {
		return fmt.Errorf("%w: %T", ErrMiddlewareInUse, m)
	}

	if len(r.middleware) > 0 {
		m.SetNext(r.middleware[0])
	}
	r.middleware = append([]Middleware{m}, r.middleware...)

	return nil
}

// Middleware returns the global chain, head first.
func (r *Router) Middleware() []Middleware {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Middleware, len(r.middleware))
	copy(out, r.middleware)
	return out
}

// Before registers fn as scoped middleware for the pipe-separated methods
// and pattern. Every scoped entry whose pattern matches the request runs,
// in registration order, before the route handler. Entries are independent
// of each other: none can stop the others.
//
// The active group prefix is applied to pattern.
func (r *Router) Before(methods, pattern string, fn HandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.addScoped(splitMethods(methods), r.applyPrefix(pattern), fn)
}

// BeforeRoute is like Before but targets the pattern of the route
// registered under name. The named pattern already carries its group
// prefix and is used as is.
func (r *Router) BeforeRoute(methods, name string, fn HandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.resolveName(name)
	if err != nil {
		return r.warn(err, zap.String("route", name))
	}

	return r.addScoped(splitMethods(methods), p, fn)
}

// addScoped appends a scoped middleware entry. The caller must hold r.mu.
func (r *Router) addScoped(methods []string, tpl string, fn HandlerFunc) error {
	if fn == nil {
		return fmt.Errorf("router: nil middleware handler for %q", tpl)
	}

	p, err := compilePattern(tpl)
	if err != nil {
		return err
	}

	for _, m := range methods {
		r.scoped[m] = append(r.scoped[m], &entry{pattern: p, handler: fn})
	}

	return nil
}

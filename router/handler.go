package router

import (
	"fmt"
	"strings"
)

// Handler is a route target. It is one of two variants:
//
//   - HandlerFunc, an inline function;
//   - Action, a controller identifier plus method name that is resolved
//     through the router's Resolver every time the route is dispatched.
//
// Actions resolve lazily, so a route may reference a controller that is
// bound to the resolver after the route is registered.
type Handler interface {
	fmt.Stringer

	invoke(r *Router, c *Context, params []string) error
}

// HandlerFunc handles a matched request. params holds the values captured by
// the route pattern, in pattern order.
type HandlerFunc func(c *Context, params ...string) error

func (f HandlerFunc) invoke(_ *Router, c *Context, params []string) error {
	return f(c, params...)
}

// String implements fmt.Stringer.
func (f HandlerFunc) String() string {
	return "func"
}

// Action references a method of a controller resolved at dispatch time.
type Action struct {
	// Controller is the identifier passed to Resolver.Resolve.
	Controller string
	// Method is the controller action name.
	Method string
}

// ActionOf returns an Action for the controller identifier and method.
func ActionOf(controller, method string) Action {
	return Action{Controller: controller, Method: method}
}

// ParseAction parses an action of the form "Controller@method".
func ParseAction(s string) (Action, error) {
	controller, method, ok := strings.Cut(s, "@")
	if !ok || controller == "" || method == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
	return ActionOf(controller, method), nil
}

// MustParseAction is like ParseAction but panics on a malformed string.
func MustParseAction(s string) Action {
	a, err := ParseAction(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the action in "Controller@method" form.
func (a Action) String() string {
	return a.Controller + "@" + a.Method
}

func (a Action) invoke(r *Router, c *Context, params []string) error {
	fn, err := r.resolveAction(a)
	if err != nil {
		return r.warn(err)
	}
	return fn(c, params...)
}

// qualify prefixes the controller identifier with namespace.
func (a Action) qualify(namespace string) Action {
	if namespace == "" {
		return a
	}
	a.Controller = strings.TrimSuffix(namespace, ".") + "." + a.Controller
	return a
}

// Controller is a set of named actions.
type Controller interface {
	// Action returns the handler registered under name.
	Action(name string) (HandlerFunc, bool)
}

// Actions is a Controller backed by a map.
type Actions map[string]HandlerFunc

// Action implements Controller.
func (a Actions) Action(name string) (HandlerFunc, bool) {
	fn, ok := a[name]
	return fn, ok
}

// Resolver turns a controller identifier into an instance. The instance must
// implement Controller for Actions to dispatch to it.
type Resolver interface {
	Resolve(identifier string) (any, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(identifier string) (any, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(identifier string) (any, error) {
	return f(identifier)
}

// resolveAction finds the handler an Action points to.
func (r *Router) resolveAction(a Action) (HandlerFunc, error) {
	if r.resolver == nil {
		return nil, fmt.Errorf("%w: %s: no resolver configured", ErrUnresolvedHandler, a)
	}

	instance, err := r.resolver.Resolve(a.Controller)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvedHandler, a, err)
	}

	ctrl, ok := instance.(Controller)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %T is not a controller", ErrUnresolvedHandler, a, instance)
	}

	fn, ok := ctrl.Action(a.Method)
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s: method %q not found", ErrUnresolvedHandler, a, a.Method)
	}

	return fn, nil
}

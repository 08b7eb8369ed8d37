package router

import "errors"

// ErrNotFound is returned by the default not-found handler when no route
// matches the request. The HTTP adapter answers it with 404 Not Found.
var ErrNotFound = errors.New("router: route not found")

// ErrAppDown is returned by the default down handler while the router is in
// maintenance mode. The HTTP adapter answers it with 503 Service Unavailable.
var ErrAppDown = errors.New("router: app is under maintenance, please check back soon")

// ErrCircularMiddleware is returned by Use when the same middleware instance
// is queued twice.
var ErrCircularMiddleware = errors.New("router: circular middleware setup detected")

// ErrMiddlewareInUse is returned by Use when the node is already linked to
// a downstream node, which means it belongs to another chain.
var ErrMiddlewareInUse = errors.New("router: middleware node already linked into a chain")

// ErrUncomparableMiddleware is returned by Use when the middleware value
// cannot be compared for identity (for example a struct holding a slice
// passed by value). Pass a pointer instead.
var ErrUncomparableMiddleware = errors.New("router: middleware must be a comparable value")

// ErrNilMiddleware is returned by Use when the middleware is nil.
var ErrNilMiddleware = errors.New("router: nil middleware")

// ErrUnknownHook is reported when registering a hook under a name that is
// not one of the six dispatch stages.
var ErrUnknownHook = errors.New("router: unknown hook")

// ErrRouteNameNotFound is reported when a named route reference cannot be
// resolved.
var ErrRouteNameNotFound = errors.New("router: route name not found")

// ErrDuplicateRouteName is reported when a route name is registered twice.
var ErrDuplicateRouteName = errors.New("router: duplicate route name")

// ErrUnresolvedHandler is reported when an Action cannot be resolved to a
// controller method at dispatch time.
var ErrUnresolvedHandler = errors.New("router: unresolved handler")

// ErrInvalidAction is returned by ParseAction for strings not of the form
// "Controller@method".
var ErrInvalidAction = errors.New("router: invalid action")

// ErrNoResponseWriter is returned by helpers that write HTTP headers when the
// context was not created from an HTTP request.
var ErrNoResponseWriter = errors.New("router: context has no response writer")

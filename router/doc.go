// Package router implements a small request router: it binds URL patterns
// to handlers, matches requests against them and runs a cooperative
// middleware pipeline around the dispatch.
//
// # Patterns
//
// A pattern is a path template in which every `/{name}` segment captures a
// parameter:
//
//	r.Get("/users/{id}/posts/{postId}", show)
//
// The rest of the pattern is regular expression syntax and the whole
// pattern is anchored, so "/.*" matches every path. Captured values reach
// the handler as positional arguments in pattern order; placeholder names
// are not used for binding:
//
//	show := router.HandlerFunc(func(c *router.Context, params ...string) error {
//		userID, postID := params[0], params[1]
//		...
//	})
//
// Routes of one method are tried in registration order and the first
// match handles the request.
//
// # Handlers
//
// A route target is a HandlerFunc or an Action. An Action names a
// controller and one of its methods, "PostController@show", and is resolved
// through the Resolver given to New each time the route is dispatched:
//
//	c := container.New()
//	c.Instance("PostController", router.Actions{"show": showPost})
//	r := router.New(router.WithResolver(c))
//	r.Get("/posts/{id}", router.MustParseAction("PostController@show"))
//
// # Middleware
//
// Global middleware is a linked chain of Middleware nodes added with Use.
// The node added last runs first. A node continues the chain by calling
// CallNext; the last node's CallNext resumes dispatch. Not calling it stops
// the request there.
//
// Scoped middleware is registered per method and pattern with Before. All
// scoped entries matching a request run before the route handler,
// independently of each other.
//
// # Hooks
//
// Six hooks bracket each dispatch, in this order: before, before.route,
// before.dispatch, after.dispatch, after.route and after. See Run for the
// full sequence.
//
// # Maintenance and not found
//
// While the router is down (Config.AppDown or SetAppDown) Run only invokes
// DownHandler. When no route matches, Run invokes NotFoundHandler. Both
// default to returning an error, ErrAppDown and ErrNotFound, which
// ServeHTTP answers with 503 and 404.
//
// # Configuration warnings
//
// Unknown hook names, unresolved route names, duplicate route names and
// unresolved actions are logged as warnings and otherwise ignored. With
// WithStrict(true) they are returned as errors instead.
package router

package router

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Config holds the router settings. It is immutable after New except for
// AppDown, which can be toggled at runtime with SetAppDown.
type Config struct {
	// Mode is the application mode, e.g. "development" or "production".
	Mode string `yaml:"mode" env:"MODE"`
	// Debug enables verbose diagnostics.
	Debug bool `yaml:"debug" env:"DEBUG"`
	// AppDown puts the router in maintenance mode: Run invokes the down
	// handler and nothing else.
	AppDown bool `yaml:"app.down" env:"APP_DOWN"`
	// PathPrefix is removed from incoming paths before matching.
	PathPrefix string `yaml:"path.prefix" env:"PATH_PREFIX"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Mode:  "development",
		Debug: true,
	}
}

// Router registers routes, scoped middleware, global middleware and hooks,
// and dispatches requests through them.
//
// Register everything during startup. Registration and dispatch are safe to
// interleave: Run takes a snapshot of the tables before it starts invoking
// handlers, so handlers and hooks may themselves register routes.
//
//	r := router.New()
//	r.Get("/users/{id}", router.HandlerFunc(func(c *router.Context, params ...string) error {
//		fmt.Fprintf(c.Writer, "user %s", params[0])
//		return nil
//	}))
//	http.ListenAndServe(":8080", r)
type Router struct {
	// NotFoundHandler is invoked when no route matches. If nil, Run
	// returns ErrNotFound.
	NotFoundHandler HandlerFunc

	// DownHandler is invoked instead of any dispatch while the router is
	// in maintenance mode. If nil, Run returns ErrAppDown.
	DownHandler HandlerFunc

	config   Config
	appDown  atomic.Bool
	logger   *zap.Logger
	resolver Resolver
	strict   bool

	mu          sync.RWMutex
	routes      map[string][]*entry
	scoped      map[string][]*entry
	descriptors []*Route
	namedRoutes map[string]string
	middleware  []Middleware
	hooks       map[string]HookFunc

	groupPrefix string
	namespace   string
}

// Option configures a Router.
type Option func(*Router)

// WithConfig sets the router configuration.
func WithConfig(cfg Config) Option {
	return func(r *Router) {
		r.config = cfg
	}
}

// WithLogger sets the logger used for configuration warnings and transport
// errors. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithResolver sets the resolver used to turn Action controller identifiers
// into controllers.
func WithResolver(res Resolver) Option {
	return func(r *Router) {
		r.resolver = res
	}
}

// WithStrict turns configuration warnings into errors: unknown hook names,
// unresolved route names, duplicate route names and unresolved actions are
// returned to the caller instead of only being logged.
func WithStrict(strict bool) Option {
	return func(r *Router) {
		r.strict = strict
	}
}

// New returns a new router.
func New(opts ...Option) *Router {
	r := &Router{
		config:      DefaultConfig(),
		logger:      zap.NewNop(),
		routes:      make(map[string][]*entry),
		scoped:      make(map[string][]*entry),
		namedRoutes: make(map[string]string),
		hooks:       make(map[string]HookFunc, len(hookNames)),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.appDown.Store(r.config.AppDown)

	return r
}

// Config returns the router configuration with the current maintenance
// state.
func (r *Router) Config() Config {
	cfg := r.config
	cfg.AppDown = r.appDown.Load()
	return cfg
}

// SetAppDown toggles maintenance mode.
func (r *Router) SetAppDown(down bool) {
	r.appDown.Store(down)
}

// AppDown reports whether maintenance mode is on.
func (r *Router) AppDown() bool {
	return r.appDown.Load()
}

// Logger returns the router logger.
func (r *Router) Logger() *zap.Logger {
	return r.logger
}

// SetNamespace sets the namespace qualified onto Action controllers of
// routes registered afterwards.
func (r *Router) SetNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.namespace = namespace
}

// Namespace returns the current controller namespace.
func (r *Router) Namespace() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namespace
}

// warn logs a configuration problem. In strict mode the error is returned,
// otherwise it is swallowed and execution continues.
func (r *Router) warn(err error, fields ...zap.Field) error {
	r.logger.Warn("router: configuration warning", append(fields, zap.Error(err))...)
	if r.strict {
		return err
	}
	return nil
}

// snapshot is a consistent read-only view of the tables used by one Run.
type snapshot struct {
	routes map[string][]*entry
	scoped map[string][]*entry
	head   Middleware
	hooks  map[string]HookFunc
}

func (r *Router) snapshot() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := &snapshot{
		routes: make(map[string][]*entry, len(r.routes)),
		scoped: make(map[string][]*entry, len(r.scoped)),
		hooks:  make(map[string]HookFunc, len(r.hooks)),
	}
	for m, entries := range r.routes {
		s.routes[m] = entries[:len(entries):len(entries)]
	}
	for m, entries := range r.scoped {
		s.scoped[m] = entries[:len(entries):len(entries)]
	}
	for name, fn := range r.hooks {
		s.hooks[name] = fn
	}
	if len(r.middleware) > 0 {
		s.head = r.middleware[0]
	}

	return s
}

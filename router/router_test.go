package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func noop(*Context, ...string) error { return nil }

func patterns(routes []*Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Pattern()
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("uses default config", func(t *testing.T) {
		r := New()
		require.NotNil(t, r)
		assert.Equal(t, DefaultConfig(), r.Config())
		assert.False(t, r.AppDown())
		assert.NotNil(t, r.Logger())
	})

	t.Run("applies options", func(t *testing.T) {
		logger := zap.NewExample()
		r := New(
			WithConfig(Config{Mode: "production", AppDown: true, PathPrefix: "/app"}),
			WithLogger(logger),
			WithStrict(true),
		)
		assert.True(t, r.AppDown())
		assert.Equal(t, "production", r.Config().Mode)
		assert.Same(t, logger, r.Logger())
		assert.True(t, r.strict)
	})

	t.Run("nil logger keeps the default", func(t *testing.T) {
		r := New(WithLogger(nil))
		assert.NotNil(t, r.Logger())
	})

	t.Run("app down toggles at runtime", func(t *testing.T) {
		r := New()
		r.SetAppDown(true)
		assert.True(t, r.AppDown())
		assert.True(t, r.Config().AppDown)
		r.SetAppDown(false)
		assert.False(t, r.AppDown())
	})
}

func TestRouterMatch(t *testing.T) {
	t.Run("registers one entry per method", func(t *testing.T) {
		r := New()
		route := r.Match("GET|post", "/items", HandlerFunc(noop))
		require.NoError(t, route.Err())

		assert.Equal(t, []string{"GET", "POST"}, route.Methods())
		assert.Len(t, r.routes["GET"], 1)
		assert.Len(t, r.routes["POST"], 1)
		assert.Same(t, r.routes["GET"][0].route, r.routes["POST"][0].route)
	})

	t.Run("normalizes slashes without a group", func(t *testing.T) {
		r := New()
		r.Get("/", HandlerFunc(noop))
		r.Get("users/", HandlerFunc(noop))
		assert.Equal(t, []string{"/", "/users"}, patterns(r.Routes()))
	})

	t.Run("lists routes in registration order", func(t *testing.T) {
		r := New()
		r.Get("/a", HandlerFunc(noop))
		r.Post("/b", HandlerFunc(noop))
		r.Put("/c", HandlerFunc(noop))
		r.Patch("/d", HandlerFunc(noop))
		r.Delete("/e", HandlerFunc(noop))
		r.Options("/f", HandlerFunc(noop))

		routes := r.Routes()
		require.Len(t, routes, 6)
		assert.Equal(t, []string{"/a", "/b", "/c", "/d", "/e", "/f"}, patterns(routes))
		assert.Equal(t, []string{"OPTIONS"}, routes[5].Methods())
	})

	t.Run("all registers every method", func(t *testing.T) {
		r := New()
		route := r.All("/any", HandlerFunc(noop))
		assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH", "HEAD"}, route.Methods())
	})

	t.Run("invalid pattern is recorded on the route", func(t *testing.T) {
		r := New()
		route := r.Get("/broken/(", HandlerFunc(noop))
		assert.Error(t, route.Err())
		assert.Empty(t, r.Routes())
		assert.Empty(t, r.routes["GET"])
	})

	t.Run("nil handler is recorded on the route", func(t *testing.T) {
		r := New()
		route := r.Get("/nil", nil)
		assert.ErrorContains(t, route.Err(), "nil handler")
	})

	t.Run("exposes handler", func(t *testing.T) {
		r := New()
		route := r.Get("/x", ActionOf("Home", "index"))
		assert.Equal(t, "Home@index", route.Handler().String())
	})
}

func TestRouterGroups(t *testing.T) {
	t.Run("applies the prefix and restores it", func(t *testing.T) {
		r := New()
		r.Mount("/api", func(r *Router) {
			r.Get("/users", HandlerFunc(noop))
			r.Get("/", HandlerFunc(noop))
		})
		r.Get("/home", HandlerFunc(noop))

		assert.Equal(t, []string{"/api/users", "/api", "/home"}, patterns(r.Routes()))
		assert.Empty(t, r.groupPrefix)
	})

	t.Run("nests prefixes", func(t *testing.T) {
		r := New()
		r.Group("/api", func(r *Router) {
			r.Group("v1/", func(r *Router) {
				r.Get("/users", HandlerFunc(noop))
			})
			r.Get("/status", HandlerFunc(noop))
		})

		assert.Equal(t, []string{"/api/v1/users", "/api/status"}, patterns(r.Routes()))
	})

	t.Run("restores the prefix after a panic", func(t *testing.T) {
		r := New()
		assert.Panics(t, func() {
			r.Mount("/api", func(*Router) {
				panic("boom")
			})
		})
		r.Get("/users", HandlerFunc(noop))

		assert.Equal(t, []string{"/users"}, patterns(r.Routes()))
	})

	t.Run("qualifies actions with the group namespace", func(t *testing.T) {
		r := New()
		r.SetNamespace("app")
		r.Mount("/admin", func(r *Router) {
			r.Get("/users", ActionOf("Users", "index"))
		}, WithNamespace("admin"))
		r.Get("/users", ActionOf("Users", "index"))

		routes := r.Routes()
		require.Len(t, routes, 2)
		assert.Equal(t, Action{Controller: "admin.Users", Method: "index"}, routes[0].Handler())
		assert.Equal(t, Action{Controller: "app.Users", Method: "index"}, routes[1].Handler())
		assert.Equal(t, "app", r.Namespace())
	})

	t.Run("applies the prefix to scoped middleware", func(t *testing.T) {
		r := New()
		r.Mount("/api", func(r *Router) {
			require.NoError(t, r.Before("GET", "/.*", noop))
		})

		require.Len(t, r.scoped["GET"], 1)
		assert.Equal(t, "/api/.*", r.scoped["GET"][0].pattern.template)
	})
}

func TestRouteName(t *testing.T) {
	t.Run("indexes the full pattern", func(t *testing.T) {
		r := New()
		r.Mount("/api", func(r *Router) {
			r.Get("/users/{id}", HandlerFunc(noop)).Name("users.show")
		})

		assert.Equal(t, "/api/users/{id}", r.namedRoutes["users.show"])
		assert.Equal(t, "users.show", r.Routes()[0].GetName())
	})

	t.Run("cannot rename a route", func(t *testing.T) {
		r := New()
		route := r.Get("/a", HandlerFunc(noop)).Name("a").Name("b")
		assert.ErrorContains(t, route.Err(), `route already has name "a"`)
	})

	t.Run("duplicate name overwrites with a warning", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		r := New(WithLogger(zap.New(core)))

		r.Get("/first", HandlerFunc(noop)).Name("dup")
		second := r.Get("/second", HandlerFunc(noop)).Name("dup")

		assert.NoError(t, second.Err())
		assert.Equal(t, "/second", r.namedRoutes["dup"])
		assert.Equal(t, 1, logs.FilterField(zap.String("route", "dup")).Len())
	})

	t.Run("duplicate name fails in strict mode", func(t *testing.T) {
		r := New(WithStrict(true))

		r.Get("/first", HandlerFunc(noop)).Name("dup")
		second := r.Get("/second", HandlerFunc(noop)).Name("dup")

		assert.ErrorIs(t, second.Err(), ErrDuplicateRouteName)
		assert.Equal(t, "/first", r.namedRoutes["dup"])
	})
}

func TestRouterURL(t *testing.T) {
	r := New()
	r.Get("/users/{id}/posts/{postId}", HandlerFunc(noop)).Name("post")

	t.Run("builds the path", func(t *testing.T) {
		got, err := r.URL("post", "3", "9")
		require.NoError(t, err)
		assert.Equal(t, "/users/3/posts/9", got)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := r.URL("missing")
		assert.ErrorIs(t, err, ErrRouteNameNotFound)
	})

	t.Run("missing params", func(t *testing.T) {
		_, err := r.URL("post", "3")
		assert.Error(t, err)
	})
}

func TestRouterLookup(t *testing.T) {
	r := New(WithConfig(Config{PathPrefix: "/app"}))
	r.Get("/users/{id}", HandlerFunc(noop)).Name("user")
	r.Get("/{any}", HandlerFunc(noop))

	t.Run("returns the first matching route", func(t *testing.T) {
		route, params, ok := r.Lookup("get", "/app/users/5?x=1")
		require.True(t, ok)
		assert.Equal(t, "user", route.GetName())
		assert.Equal(t, []string{"5"}, params)
	})

	t.Run("no route for method", func(t *testing.T) {
		_, _, ok := r.Lookup("POST", "/app/users/5")
		assert.False(t, ok)
	})
}

func TestBeforeRoute(t *testing.T) {
	t.Run("targets the named pattern", func(t *testing.T) {
		r := New()
		r.Mount("/api", func(r *Router) {
			r.Get("/users", HandlerFunc(noop)).Name("users")
			require.NoError(t, r.BeforeRoute("GET", "users", noop))
		})

		require.Len(t, r.scoped["GET"], 1)
		assert.Equal(t, "/api/users", r.scoped["GET"][0].pattern.template)
	})

	t.Run("ignores the prefix of an enclosing mount", func(t *testing.T) {
		r := New()
		r.Mount("/admin", func(r *Router) {
			r.Get("/users/{id}", HandlerFunc(noop)).Name("admin.users")
		})

		var seen []string
		r.Mount("/api", func(r *Router) {
			require.NoError(t, r.BeforeRoute("GET", "admin.users", func(_ *Context, params ...string) error {
				seen = append(seen, params...)
				return nil
			}))
		})

		require.Len(t, r.scoped["GET"], 1)
		assert.Equal(t, "/admin/users/{id}", r.scoped["GET"][0].pattern.template)

		ok, err := r.Run(r.NewContext("GET", "/admin/users/3"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"3"}, seen)

		_, err = r.Run(r.NewContext("GET", "/api/admin/users/4"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []string{"3"}, seen)
	})

	t.Run("missing name is a warning", func(t *testing.T) {
		r := New()
		assert.NoError(t, r.BeforeRoute("GET", "missing", noop))
		assert.Empty(t, r.scoped["GET"])
	})

	t.Run("missing name fails in strict mode", func(t *testing.T) {
		r := New(WithStrict(true))
		err := r.BeforeRoute("GET", "missing", noop)
		assert.True(t, errors.Is(err, ErrRouteNameNotFound))
	})

	t.Run("route middleware registers for the same methods", func(t *testing.T) {
		r := New()
		route := r.Match("PUT|PATCH", "/items/{id}", HandlerFunc(noop)).Middleware(noop)
		require.NoError(t, route.Err())

		assert.Len(t, r.scoped["PUT"], 1)
		assert.Len(t, r.scoped["PATCH"], 1)
		assert.Empty(t, r.scoped["GET"])
	})

	t.Run("nil scoped handler is rejected", func(t *testing.T) {
		r := New()
		assert.Error(t, r.Before("GET", "/", nil))
	})
}

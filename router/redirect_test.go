package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirect(t *testing.T) {
	t.Run("registers a redirecting route", func(t *testing.T) {
		r := New()
		r.Redirect("/old", "/new", http.StatusMovedPermanently)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/old", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/new", rec.Header().Get("Location"))
	})

	t.Run("defaults to found", func(t *testing.T) {
		r := New()
		r.Redirect("/old", "/new", 0)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/old", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("needs a response writer", func(t *testing.T) {
		r := New()
		r.Redirect("/old", "/new", 0)

		_, err := r.Run(r.NewContext("GET", "/old"))
		assert.ErrorIs(t, err, ErrNoResponseWriter)
	})
}

func TestPush(t *testing.T) {
	t.Run("appends the encoded query", func(t *testing.T) {
		r := New()
		r.Get("/login", HandlerFunc(func(c *Context, _ ...string) error {
			return r.Push(c, "/dashboard", url.Values{"tab": {"a b"}, "from": {"login"}})
		}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard?from=login&tab=a+b", rec.Header().Get("Location"))
	})

	t.Run("redirects to a named route", func(t *testing.T) {
		r := New()
		r.Mount("/admin", func(r *Router) {
			r.Get("/home", HandlerFunc(noop)).Name("admin.home")
		})
		r.Get("/go", HandlerFunc(func(c *Context, _ ...string) error {
			return r.PushRoute(c, "admin.home", nil)
		}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/go", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admin/home", rec.Header().Get("Location"))
	})

	t.Run("unknown route name", func(t *testing.T) {
		r := New()
		rec := httptest.NewRecorder()
		c := &Context{Writer: rec}

		require.NoError(t, r.PushRoute(c, "missing", nil))
		assert.Empty(t, rec.Header().Get("Location"))

		strict := New(WithStrict(true))
		assert.ErrorIs(t, strict.PushRoute(c, "missing", nil), ErrRouteNameNotFound)
	})
}

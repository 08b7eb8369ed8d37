package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNode struct {
	Link
	name   string
	events *[]string
	stop   bool
	err    error
}

func (n *recordingNode) Call(c *Context) error {
	*n.events = append(*n.events, n.name)
	if n.err != nil {
		return n.err
	}
	if n.stop {
		return nil
	}
	return n.CallNext(c)
}

type mapNode map[string]string

func (mapNode) Call(*Context) error { return nil }
func (mapNode) SetNext(Middleware)  {}
func (mapNode) Next() Middleware    { return nil }

func TestUse(t *testing.T) {
	t.Run("prepends nodes", func(t *testing.T) {
		r := New()
		var events []string
		a := &recordingNode{name: "a", events: &events}
		b := &recordingNode{name: "b", events: &events}

		require.NoError(t, r.Use(a))
		require.NoError(t, r.Use(b))

		chain := r.Middleware()
		require.Len(t, chain, 2)
		assert.Same(t, b, chain[0])
		assert.Same(t, a, chain[1])
		assert.Same(t, a, b.Next())
		assert.Nil(t, a.Next())
	})

	t.Run("same instance twice is circular", func(t *testing.T) {
		r := New()
		var events []string
		a := &recordingNode{name: "a", events: &events}

		require.NoError(t, r.Use(a))
		err := r.Use(a)
		assert.ErrorIs(t, err, ErrCircularMiddleware)
		assert.Len(t, r.Middleware(), 1)
	})

	t.Run("node linked on another router is rejected", func(t *testing.T) {
		var events []string
		a := &recordingNode{name: "a", events: &events}
		b := &recordingNode{name: "b", events: &events}

		first := New()
		require.NoError(t, first.Use(a))
		require.NoError(t, first.Use(b))

		second := New()
		require.NoError(t, second.Use(&recordingNode{name: "c", events: &events}))
		err := second.Use(b)
		assert.ErrorIs(t, err, ErrMiddlewareInUse)
		assert.Same(t, a, b.Next())
		assert.Len(t, second.Middleware(), 1)
	})

	t.Run("rejects nil", func(t *testing.T) {
		r := New()
		assert.ErrorIs(t, r.Use(nil), ErrNilMiddleware)
	})

	t.Run("rejects values without identity", func(t *testing.T) {
		r := New()
		err := r.Use(mapNode{})
		assert.ErrorIs(t, err, ErrUncomparableMiddleware)
		assert.Empty(t, r.Middleware())
	})
}

func TestMiddlewareChain(t *testing.T) {
	t.Run("runs last added first", func(t *testing.T) {
		r := New()
		var events []string
		require.NoError(t, r.Use(&recordingNode{name: "first", events: &events}))
		require.NoError(t, r.Use(&recordingNode{name: "second", events: &events}))
		require.NoError(t, r.Use(&recordingNode{name: "third", events: &events}))
		r.Get("/", HandlerFunc(func(*Context, ...string) error {
			events = append(events, "handler")
			return nil
		}))

		ok, err := r.Run(r.NewContext("GET", "/"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"third", "second", "first", "handler"}, events)
	})

	t.Run("a node that does not continue stops the request", func(t *testing.T) {
		r := New()
		var events []string
		require.NoError(t, r.Use(&recordingNode{name: "inner", events: &events}))
		require.NoError(t, r.Use(&recordingNode{name: "gate", events: &events, stop: true}))
		r.Get("/", HandlerFunc(func(*Context, ...string) error {
			events = append(events, "handler")
			return nil
		}))

		ok, err := r.Run(r.NewContext("GET", "/"))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{"gate"}, events)
	})

	t.Run("node error is returned", func(t *testing.T) {
		r := New()
		var events []string
		denied := errors.New("denied")
		require.NoError(t, r.Use(&recordingNode{name: "auth", events: &events, err: denied}))
		r.Get("/", HandlerFunc(noop))

		ok, err := r.Run(r.NewContext("GET", "/"))
		assert.ErrorIs(t, err, denied)
		assert.False(t, ok)
	})

	t.Run("dispatch errors flow back through the chain", func(t *testing.T) {
		r := New()
		boom := errors.New("boom")
		var seen error
		require.NoError(t, r.Use(NewMiddleware(func(_ *Context, next func() error) error {
			seen = next()
			return seen
		})))
		r.Get("/", HandlerFunc(func(*Context, ...string) error { return boom }))

		_, err := r.Run(r.NewContext("GET", "/"))
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, seen, boom)
	})

	t.Run("not found passes through the chain", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Use(NewMiddleware(func(_ *Context, next func() error) error {
			return next()
		})))

		ok, err := r.Run(r.NewContext("GET", "/missing"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, ok)
	})

	t.Run("calling next twice dispatches once", func(t *testing.T) {
		r := New()
		var calls int
		require.NoError(t, r.Use(NewMiddleware(func(_ *Context, next func() error) error {
			if err := next(); err != nil {
				return err
			}
			return next()
		})))
		r.Get("/", HandlerFunc(func(*Context, ...string) error {
			calls++
			return nil
		}))

		ok, err := r.Run(r.NewContext("GET", "/"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, calls)
	})

	t.Run("middleware can wrap the handler", func(t *testing.T) {
		r := New()
		var events []string
		require.NoError(t, r.Use(NewMiddleware(func(_ *Context, next func() error) error {
			events = append(events, "before")
			err := next()
			events = append(events, "after")
			return err
		})))
		r.Get("/", HandlerFunc(func(*Context, ...string) error {
			events = append(events, "handler")
			return nil
		}))

		_, err := r.Run(r.NewContext("GET", "/"))
		require.NoError(t, err)
		assert.Equal(t, []string{"before", "handler", "after"}, events)
	})

	t.Run("call next outside a run is a no-op", func(t *testing.T) {
		var l Link
		assert.NoError(t, l.CallNext(&Context{}))
	})
}

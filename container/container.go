// Package container is a small dependency injection container keyed by
// string identifiers. It implements router.Resolver, so controllers bound
// here can be referenced by router.Action route targets.
package container

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNotBound is returned when resolving an identifier that has no binding.
var ErrNotBound = errors.New("container: identifier not bound")

// ErrTypeMismatch is returned by Resolve when the bound value does not have
// the requested type.
var ErrTypeMismatch = errors.New("container: type mismatch")

// ErrAliasCycle is returned by Alias when the alias would point back to
// itself.
var ErrAliasCycle = errors.New("container: alias cycle")

// Factory builds a value. It receives the container so it can resolve its
// own dependencies.
type Factory func(c *Container) (any, error)

type binding struct {
	factory Factory
	shared  bool

	once  sync.Once
	value any
	err   error
}

func (b *binding) resolve(c *Container) (any, error) {
	if !b.shared {
		return b.factory(c)
	}
	b.once.Do(func() {
		b.value, b.err = b.factory(c)
	})
	return b.value, b.err
}

// Container holds bindings from identifiers to values or factories.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]*binding
	aliases  map[string]string
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings: make(map[string]*binding),
		aliases:  make(map[string]string),
	}
}

// Instance binds id to an existing value.
func (c *Container) Instance(id string, value any) {
	b := &binding{shared: true, value: value}
	b.once.Do(func() {})
	c.set(id, b)
}

// Bind binds id to a factory invoked on every resolution.
func (c *Container) Bind(id string, factory Factory) {
	c.set(id, &binding{factory: factory})
}

// Singleton binds id to a factory invoked on the first resolution only.
// The value, or the error, of that first call is returned afterwards.
// A singleton factory must not resolve its own identifier.
func (c *Container) Singleton(id string, factory Factory) {
	c.set(id, &binding{factory: factory, shared: true})
}

func (c *Container) set(id string, b *binding) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.aliases, id)
	c.bindings[id] = b
}

// Alias makes alias resolve to the same binding as id.
func (c *Container) Alias(id, alias string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.target(id) == alias {
		return fmt.Errorf("%w: %q -> %q", ErrAliasCycle, alias, id)
	}
	c.aliases[alias] = id

	return nil
}

// target follows aliases to the bound identifier. The caller must hold c.mu.
func (c *Container) target(id string) string {
	for range len(c.aliases) + 1 {
		next, ok := c.aliases[id]
		if !ok {
			break
		}
		id = next
	}
	return id
}

// Has reports whether id, or the identifier it aliases, is bound.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.bindings[c.target(id)]
	return ok
}

// Resolve returns the value bound to id. It implements router.Resolver.
func (c *Container) Resolve(id string) (any, error) {
	c.mu.RLock()
	b, ok := c.bindings[c.target(id)]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotBound, id)
	}

	v, err := b.resolve(c)
	if err != nil {
		return nil, fmt.Errorf("container: resolve %q: %w", id, err)
	}

	return v, nil
}

// Resolve returns the value bound to id as a T.
func Resolve[T any](c *Container, id string) (T, error) {
	var zero T

	v, err := c.Resolve(id)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, not %v", ErrTypeMismatch, id, v, reflect.TypeFor[T]())
	}

	return t, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](c *Container, id string) T {
	v, err := Resolve[T](c, id)
	if err != nil {
		panic(err)
	}
	return v
}

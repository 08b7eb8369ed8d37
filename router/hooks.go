package router

import (
	"fmt"

	"go.uber.org/zap"
)

// Hook names, in the order Run fires them.
const (
	HookBefore         = "before"
	HookBeforeRoute    = "before.route"
	HookBeforeDispatch = "before.dispatch"
	HookAfterDispatch  = "after.dispatch"
	HookAfterRoute     = "after.route"
	HookAfter          = "after"
)

var hookNames = []string{
	HookBefore,
	HookBeforeRoute,
	HookBeforeDispatch,
	HookAfterDispatch,
	HookAfterRoute,
	HookAfter,
}

// HookFunc runs at a fixed stage of Run. The result is only used for the
// after hook: a bool result replaces the value Run returns.
type HookFunc func(c *Context) (any, error)

// Hook registers fn for the named stage, replacing any previous hook.
//
// An unknown name is a configuration warning: the hook is ignored, and
// ErrUnknownHook is returned in strict mode.
func (r *Router) Hook(name string, fn HookFunc) error {
	if !isHookName(name) {
		return r.warn(fmt.Errorf("%w: %q", ErrUnknownHook, name), zap.String("hook", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if fn == nil {
		delete(r.hooks, name)
		return nil
	}
	r.hooks[name] = fn

	return nil
}

func isHookName(name string) bool {
	for _, n := range hookNames {
		if n == name {
			return true
		}
	}
	return false
}

// fire invokes the hook registered under name, if any.
func (s *snapshot) fire(name string, c *Context) (any, error) {
	fn, ok := s.hooks[name]
	if !ok || fn == nil {
		return nil, nil
	}
	return fn(c)
}

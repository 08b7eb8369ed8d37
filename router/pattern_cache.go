package router

import "sync"

// patternCache maps a route template to its compiled *pattern. Patterns are
// immutable once built, so routes, scoped middleware and URL building share
// one instance per template.
var patternCache sync.Map

// compilePattern returns the compiled pattern for tpl, parsing it on first
// use. Templates that fail to compile are not cached.
func compilePattern(tpl string) (*pattern, error) {
	if v, ok := patternCache.Load(tpl); ok {
		return v.(*pattern), nil
	}

	p, err := parsePattern(tpl)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(tpl, p)

	return actual.(*pattern), nil
}

package router

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRe finds `/{name}` segments in a route template. The name is
// taken up to the first closing brace.
var placeholderRe = regexp.MustCompile(`/\{(.*?)\}`)

// pattern is a compiled route template.
//
// Every `/{name}` segment of the template becomes a lazy capturing wildcard
// `/(.*?)`. Any other text is used verbatim as regular expression syntax,
// which lets scoped middleware use catch-alls such as `/.*`. The expression
// is anchored at both ends, so a pattern always matches the full path.
type pattern struct {
	// template is the route template as registered.
	template string
	// regexp is the anchored, compiled expression.
	regexp *regexp.Regexp
	// names holds placeholder names in template order. They document the
	// route only; values are always bound by position.
	names []string
}

// parsePattern compiles a route template. Callers go through compilePattern.
func parsePattern(tpl string) (*pattern, error) {
	expr := "^" + placeholderRe.ReplaceAllString(tpl, "/(.*?)") + "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("router: invalid pattern %q: %w", tpl, err)
	}

	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(tpl, -1) {
		names = append(names, m[1])
	}

	return &pattern{
		template: tpl,
		regexp:   re,
		names:    names,
	}, nil
}

// match reports whether path matches the pattern and returns the values of
// every capture group in left-to-right order.
//
// A group followed by another group is cut where the next group starts, the
// last group keeps its full match. Leading and trailing slashes are trimmed
// from each value and groups that did not participate yield "".
func (p *pattern) match(path string) ([]string, bool) {
	idx := p.regexp.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil, false
	}

	n := len(idx)/2 - 1
	if n == 0 {
		return nil, true
	}

	params := make([]string, n)
	for i := 0; i < n; i++ {
		start, end := idx[2*i+2], idx[2*i+3]
		if start < 0 {
			continue
		}

		value := path[start:end]
		if i+1 < n {
			if next := idx[2*i+4]; next >= start && next-start < len(value) {
				value = value[:next-start]
			}
		}

		params[i] = strings.Trim(value, "/")
	}

	return params, true
}

// build substitutes params, in order, into the placeholders of the template.
// It fails when the number of values differs from the number of placeholders.
func (p *pattern) build(params ...string) (string, error) {
	if len(params) != len(p.names) {
		return "", fmt.Errorf("router: pattern %q expects %d params, got %d", p.template, len(p.names), len(params))
	}

	i := 0
	out := placeholderRe.ReplaceAllStringFunc(p.template, func(string) string {
		v := params[i]
		i++
		return "/" + v
	})

	return out, nil
}

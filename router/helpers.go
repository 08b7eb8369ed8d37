package router

import "strings"

// splitMethods splits a pipe-separated method list, upper-casing each
// method and dropping empty items.
func splitMethods(methods string) []string {
	parts := strings.Split(methods, "|")
	out := make([]string, 0, len(parts))
	for _, m := range parts {
		if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// applyPrefix joins the active group prefix and pattern. The trailing slash
// is only stripped while a group prefix is active, so "/" registered at the
// top level stays "/". The caller must hold r.mu.
func (r *Router) applyPrefix(pattern string) string {
	full := r.groupPrefix + "/" + strings.Trim(pattern, "/")
	if r.groupPrefix != "" {
		full = strings.TrimRight(full, "/")
	}
	return full
}

// joinPrefix nests prefix under base.
func joinPrefix(base, prefix string) string {
	p := strings.Trim(prefix, "/")
	if p == "" {
		return base
	}
	return base + "/" + p
}

// normalizePath turns a raw request URI into the path routes are matched
// against: the query string is dropped, prefix is removed when the path
// starts with it on a segment boundary, and the result has exactly one
// leading slash and no trailing slash.
func normalizePath(uri, prefix string) string {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}

	if prefix = strings.TrimRight(prefix, "/"); prefix != "" {
		if rest, ok := strings.CutPrefix(uri, prefix); ok && (rest == "" || rest[0] == '/') {
			uri = rest
		}
	}

	return "/" + strings.Trim(uri, "/")
}

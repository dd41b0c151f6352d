package kpath

import (
	"fmt"
	"strings"
)

// Quote returns the canonical text of a single path segment. Segments
// that contain a dot, a quote, whitespace or control characters are
// wrapped in single quotes with '\'' and '\\' escapes; everything else
// is returned verbatim.
func Quote(field string) string {
	if !needsQuote(field) {
		return field
	}
	var b strings.Builder
	b.Grow(len(field) + 2)
	b.WriteByte('\'')
	for _, r := range field {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func needsQuote(field string) bool {
	if field == "" {
		return true
	}
	for _, r := range field {
		switch {
		case r == '.' || r == '\'' || r == '"' || r == '\\':
			return true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return true
		case r < 0x20:
			return true
		}
	}
	return false
}

// Join extends a dotted path by one segment. An empty prefix denotes
// the document root, so Join("", f) is the path of a top level field.
func Join(prefix, field string) string {
	if prefix == "" {
		return Quote(field)
	}
	return prefix + "." + Quote(field)
}

// JoinAll builds a dotted path from raw segments.
func JoinAll(fields []string) string {
	var path string
	for _, f := range fields {
		path = Join(path, f)
	}
	return path
}

// SplitAll parses a dotted path back into its raw segments. It is the
// inverse of JoinAll for every canonical path and also accepts
// non-canonical quoting, e.g. 'a' for a.
func SplitAll(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	var (
		segs []string
		b    strings.Builder
	)
	i := 0
	for {
		b.Reset()
		if i < len(path) && path[i] == '\'' {
			i++
			closed := false
			for i < len(path) {
				c := path[i]
				if c == '\\' {
					if i+1 >= len(path) {
						return nil, fmt.Errorf("path %q: trailing escape", path)
					}
					b.WriteByte(path[i+1])
					i += 2
					continue
				}
				if c == '\'' {
					i++
					closed = true
					break
				}
				b.WriteByte(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("path %q: unterminated quote", path)
			}
			if i < len(path) && path[i] != '.' {
				return nil, fmt.Errorf("path %q: unexpected %q after quoted segment", path, path[i])
			}
		} else {
			start := i
			for i < len(path) && path[i] != '.' {
				if path[i] == '\'' {
					return nil, fmt.Errorf("path %q: quote inside bare segment", path)
				}
				i++
			}
			if i == start {
				return nil, fmt.Errorf("path %q: empty segment", path)
			}
			b.WriteString(path[start:i])
		}
		segs = append(segs, b.String())
		if i == len(path) {
			return segs, nil
		}
		// path[i] == '.'
		i++
		if i == len(path) {
			return nil, fmt.Errorf("path %q: trailing dot", path)
		}
	}
}

// Prefixes returns the canonical paths of every proper ancestor of
// path, shortest first. For "a.b.c" that is ["a", "a.b"].
func Prefixes(path string) ([]string, error) {
	segs, err := SplitAll(path)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(segs)-1)
	var p string
	for _, f := range segs[:len(segs)-1] {
		p = Join(p, f)
		res = append(res, p)
	}
	return res, nil
}

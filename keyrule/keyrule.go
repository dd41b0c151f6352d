// Package keyrule filters key paths out of synchronization.
//
// A rule is an expression over the variables key and locale, compiled
// with expr. Any key a rule matches is skipped: it is neither filled
// in when missing nor pruned when extraneous, and reports count it
// separately. Examples:
//
//	hasPrefix(key, "debug.")
//	key matches "^internal\\."
//	locale == "de" and key == "branding.name"
//	depth(key) > 4
//	"legacy" in segments(key)
package keyrule

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/localekit/locsync/ir/kpath"
)

type Rule struct {
	src  string
	prog *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any{
			"key":    "",
			"locale": "",
		}),
		expr.AsBool(),
		expr.Function("segments", func(params ...any) (any, error) {
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("segments: want string, got %T", params[0])
			}
			segs, err := kpath.SplitAll(s)
			if err != nil {
				return nil, err
			}
			return segs, nil
		}),
		expr.Function("depth", func(params ...any) (any, error) {
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("depth: want string, got %T", params[0])
			}
			segs, err := kpath.SplitAll(s)
			if err != nil {
				return nil, err
			}
			return len(segs), nil
		}),
	}
}

func Compile(src string) (*Rule, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", src, err)
	}
	return &Rule{src: src, prog: prog}, nil
}

func (r *Rule) Match(key, locale string) (bool, error) {
	out, err := expr.Run(r.prog, map[string]any{
		"key":    key,
		"locale": locale,
	})
	if err != nil {
		return false, fmt.Errorf("rule %q: %w", r.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("rule %q: result %T is not a bool", r.src, out)
	}
	return b, nil
}

func (r *Rule) String() string {
	return r.src
}

// Set holds rules in evaluation order; a key is skipped when any rule
// matches.
type Set struct {
	rules []*Rule
}

func CompileAll(srcs []string) (*Set, error) {
	s := &Set{}
	for _, src := range srcs {
		r, err := Compile(src)
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, r)
	}
	return s, nil
}

func (s *Set) Match(key, locale string) (bool, error) {
	if s == nil {
		return false, nil
	}
	for _, r := range s.rules {
		m, err := r.Match(key, locale)
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}

func (s *Set) Empty() bool {
	return s == nil || len(s.rules) == 0
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

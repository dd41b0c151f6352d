package syncop

import (
	"fmt"

	"github.com/localekit/locsync/debug"
	"github.com/localekit/locsync/flatten"
	"github.com/localekit/locsync/ir"
	"github.com/localekit/locsync/ir/kpath"
)

// AddMissing returns a copy of tree holding a placeholder under every
// path in missing. The input tree is never modified.
//
// Branches are created as needed, and anything standing where a path
// needs to pass or land is replaced: a leaf blocking an intermediate
// segment becomes a branch, and a branch sitting where the reference
// keeps a leaf becomes the placeholder. New fields append after the
// existing ones, so injecting is stable with respect to the order of
// what was already translated.
func AddMissing(tree *ir.Node, missing []string, ref *flatten.Index, ph Placeholder) (*ir.Node, error) {
	if len(missing) == 0 {
		return tree, nil
	}
	var res *ir.Node
	if tree != nil && tree.Type == ir.ObjectType {
		res = tree.Clone()
	} else {
		res = ir.Object()
	}
	for _, path := range missing {
		segs, err := kpath.SplitAll(path)
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", path, err)
		}
		node := res
		for _, f := range segs[:len(segs)-1] {
			next := node.Get(f)
			if next == nil || next.Type != ir.ObjectType {
				next = ir.Object()
				node.Set(f, next)
			}
			node = next
		}
		val := ph.For(ref.Get(path))
		node.Set(segs[len(segs)-1], val)
		if debug.Inject() {
			debug.Logf("inject %s = %q\n", path, val.String)
		}
	}
	return res, nil
}

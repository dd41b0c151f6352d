package syncop

import (
	"github.com/localekit/locsync/debug"
	"github.com/localekit/locsync/ir"
	"github.com/localekit/locsync/ir/kpath"
)

// RemoveExtraneous returns a copy of tree without the given paths.
// The input tree is never modified.
//
// The rebuild normalizes as it goes: a branch left empty by removal
// collapses away, and so does a branch that was already empty, so the
// result never contains an empty object.
func RemoveExtraneous(tree *ir.Node, extraneous []string) *ir.Node {
	if len(extraneous) == 0 {
		return tree
	}
	if tree == nil || tree.Type != ir.ObjectType {
		return tree
	}
	drop := make(map[string]bool, len(extraneous))
	for _, path := range extraneous {
		drop[path] = true
	}
	return prune(tree, "", drop)
}

func prune(node *ir.Node, path string, drop map[string]bool) *ir.Node {
	res := ir.Object()
	for i, f := range node.Fields {
		child := node.Values[i]
		childPath := kpath.Join(path, f)
		if drop[childPath] {
			if debug.Prune() {
				debug.Logf("prune %s\n", childPath)
			}
			continue
		}
		if child != nil && child.Type == ir.ObjectType {
			child = prune(child, childPath, drop)
			if child.Len() == 0 {
				if debug.Prune() {
					debug.Logf("collapse %s\n", childPath)
				}
				continue
			}
		}
		res.Set(f, child)
	}
	return res
}

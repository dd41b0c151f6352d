// Package flatten indexes the leaves of a locale document by dotted
// key path.
package flatten

import (
	"github.com/localekit/locsync/ir"
	"github.com/localekit/locsync/ir/kpath"
)

// Index maps key paths to leaf nodes, keeping the paths in document
// order. Order matters: reports list keys in the order the source
// document defines them.
type Index struct {
	keys []string
	m    map[string]*ir.Node
}

// Flatten records every leaf of tree under its dotted path. Arrays
// index as single leaves and their elements are never visited, so a
// translated list stays one unit of work. Empty objects contribute
// nothing. A nil or non object tree yields an empty index.
//
// The walk is iterative. Translation files nest arbitrarily deep and
// a hostile or generated document should exhaust the heap, not the
// goroutine stack.
func Flatten(tree *ir.Node) *Index {
	idx := &Index{m: map[string]*ir.Node{}}
	if tree == nil || tree.Type != ir.ObjectType {
		return idx
	}
	type frame struct {
		node *ir.Node
		path string
		next int
	}
	stack := []frame{{node: tree}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.node.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		i := top.next
		top.next++
		child := top.node.Values[i]
		path := kpath.Join(top.path, top.node.Fields[i])
		if child != nil && child.Type == ir.ObjectType {
			stack = append(stack, frame{node: child, path: path})
			continue
		}
		idx.put(path, child)
	}
	return idx
}

func (x *Index) put(path string, node *ir.Node) {
	if _, ok := x.m[path]; !ok {
		x.keys = append(x.keys, path)
	}
	x.m[path] = node
}

// Keys returns the indexed paths in document order. The slice is
// shared; callers must not modify it.
func (x *Index) Keys() []string {
	return x.keys
}

func (x *Index) Get(path string) *ir.Node {
	return x.m[path]
}

func (x *Index) Has(path string) bool {
	_, ok := x.m[path]
	return ok
}

func (x *Index) Len() int {
	return len(x.keys)
}

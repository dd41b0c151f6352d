package ir

import (
	"sort"
	"strconv"
)

// Node is one value in a locale document tree.
//
// Objects keep their children in two parallel slices, Fields and
// Values, so that document order survives a parse/edit/encode round
// trip. Fields[i] names Values[i]. All other types are leaves: arrays
// are treated as atomic values and are never descended into.
//
// Numbers carry their source text in Number; Int64 or Float64 is set
// when the text parses as the corresponding Go value.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(v float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(v, 'g', -1, 64),
		Float64: &v,
	}
}

// FromNumber builds a number node from source text, keeping the text
// verbatim for re-encoding.
func FromNumber(text string) *Node {
	node := &Node{Type: NumberType, Number: text}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		node.Int64 = &i
		return node
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		node.Float64 = &f
	}
	return node
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an object with fields in sorted order. Parsed
// documents keep their own order; this is for tests and synthetic
// trees where no source order exists.
func FromMap(m map[string]*Node) *Node {
	fields := make([]string, 0, len(m))
	for k := range m {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	node := &Node{
		Type:   ObjectType,
		Fields: fields,
		Values: make([]*Node, len(fields)),
	}
	for i, k := range fields {
		node.Values[i] = m[k]
	}
	return node
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func (node *Node) indexOf(field string) int {
	for i, f := range node.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Get returns the child named field, or nil if node is not an object
// or has no such field.
func (node *Node) Get(field string) *Node {
	if node == nil || node.Type != ObjectType {
		return nil
	}
	if i := node.indexOf(field); i != -1 {
		return node.Values[i]
	}
	return nil
}

// Set replaces the child named field, or appends it after the last
// existing field when absent.
func (node *Node) Set(field string, v *Node) {
	if i := node.indexOf(field); i != -1 {
		node.Values[i] = v
		return
	}
	node.Fields = append(node.Fields, field)
	node.Values = append(node.Values, v)
}

// Delete removes the child named field, preserving the order of the
// remaining fields. It reports whether the field was present.
func (node *Node) Delete(field string) bool {
	i := node.indexOf(field)
	if i == -1 {
		return false
	}
	node.Fields = append(node.Fields[:i], node.Fields[i+1:]...)
	node.Values = append(node.Values[:i], node.Values[i+1:]...)
	return true
}

// Len returns the number of children of an object or array node and 0
// otherwise.
func (node *Node) Len() int {
	if node == nil {
		return 0
	}
	return len(node.Values)
}

// Clone returns a deep copy sharing no pointers with node.
func (node *Node) Clone() *Node {
	if node == nil {
		return nil
	}
	res := &Node{
		Type:   node.Type,
		String: node.String,
		Bool:   node.Bool,
		Number: node.Number,
	}
	if node.Int64 != nil {
		i := *node.Int64
		res.Int64 = &i
	}
	if node.Float64 != nil {
		f := *node.Float64
		res.Float64 = &f
	}
	if node.Fields != nil {
		res.Fields = make([]string, len(node.Fields))
		copy(res.Fields, node.Fields)
	}
	if node.Values != nil {
		res.Values = make([]*Node, len(node.Values))
		for i, v := range node.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls pre and post around every node in depth first document
// order, descending into both objects and arrays. Either callback may
// be nil.
func (node *Node) Visit(pre, post func(*Node)) {
	if node == nil {
		return
	}
	if pre != nil {
		pre(node)
	}
	for _, v := range node.Values {
		v.Visit(pre, post)
	}
	if post != nil {
		post(node)
	}
}

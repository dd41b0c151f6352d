// Package syncop edits locale documents to match the reference key
// set: it injects placeholders for missing keys and prunes keys the
// reference no longer has.
package syncop

import (
	"github.com/localekit/locsync/encode"
	"github.com/localekit/locsync/ir"
)

// DefaultPrefix marks injected values so translators can grep for
// work left to do.
const DefaultPrefix = "EN TEXT TO REPLACE: "

// Placeholder builds the fill in values for injected keys.
type Placeholder struct {
	// Prefix precedes the reference text. Empty selects
	// DefaultPrefix.
	Prefix string
}

func (p Placeholder) prefix() string {
	if p.Prefix == "" {
		return DefaultPrefix
	}
	return p.Prefix
}

// For derives the placeholder for one missing key from the reference
// value under the same key. String references embed verbatim; other
// types render as single line JSON, so a missing array still yields a
// string a translator can read and replace.
func (p Placeholder) For(ref *ir.Node) *ir.Node {
	text := ""
	if ref != nil {
		if ref.Type == ir.StringType {
			text = ref.String
		} else {
			text = encode.MustString(ref)
		}
	}
	return ir.FromString(p.prefix() + text)
}

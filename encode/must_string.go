package encode

import (
	"bytes"

	"github.com/localekit/locsync/ir"
)

// MustString renders node as single line JSON. Compact JSON encoding
// of an in-memory tree cannot fail, so errors panic.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Compact(true)); err != nil {
		panic(err)
	}
	return buf.String()
}

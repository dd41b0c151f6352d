package syncop

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/localekit/locsync/encode"
	"github.com/localekit/locsync/ir"
)

// MergePatch renders the change from before to after as an RFC 7386
// merge patch. The documents are compared by their compact JSON
// renderings, so the patch comes out the same whatever format they
// were stored in.
func MergePatch(before, after *ir.Node) ([]byte, error) {
	b, err := compactJSON(before)
	if err != nil {
		return nil, err
	}
	a, err := compactJSON(after)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(b, a)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return patch, nil
}

func compactJSON(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, encode.EncodeJSON(), encode.Compact(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

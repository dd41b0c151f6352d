// Package parse reads locale documents into ir trees.
package parse

import (
	"errors"
	"fmt"

	"github.com/localekit/locsync/format"
	"github.com/localekit/locsync/ir"
)

// ErrMalformed wraps every syntax or structure error from the format
// decoders, so callers can classify parse failures with errors.Is
// without caring which format was in play.
var ErrMalformed = errors.New("malformed document")

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	case format.TOMLFormat:
		res, err = parseTOML(d)
	default:
		return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return res, nil
}

package dirsync

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/localekit/locsync/debug"
	"github.com/localekit/locsync/encode"
	"github.com/localekit/locsync/ir"
	"github.com/localekit/locsync/parse"
)

func (d *Dir) load(stem string) (*ir.Node, error) {
	path := d.paths[stem]
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	node, err := parse.Parse(data, parse.ParseFormat(d.format))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if node == nil || node.Type == ir.NullType {
		// an empty document is an empty key set
		node = ir.Object()
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("parse %s: %w: document root is not an object", path, parse.ErrMalformed)
	}
	if debug.Load() {
		debug.Logf("load %s: %d top level fields\n", path, node.Len())
	}
	return node, nil
}

func (d *Dir) persist(stem string, node *ir.Node) error {
	path := d.paths[stem]
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w := &wc{f: f, w: bufio.NewWriter(f)}
	if err := encode.Encode(node, w, encode.EncodeFormat(d.format), encode.Indent(d.indent)); err != nil {
		w.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Render encodes a document the way persist would write it, for
// previews that must match the bytes a fixing run produces.
func (d *Dir) Render(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, encode.EncodeFormat(d.format), encode.Indent(d.indent)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type wc struct {
	f *os.File
	w *bufio.Writer
}

func (w *wc) Write(d []byte) (int, error) {
	return w.w.Write(d)
}

func (w *wc) Close() error {
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// Package dirsync drives synchronization of a directory of locale
// documents against its reference document.
package dirsync

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/localekit/locsync/config"
	"github.com/localekit/locsync/debug"
	"github.com/localekit/locsync/format"
)

// Dir is an opened locale directory. Opening discovers the locale
// documents; it does not read them.
type Dir struct {
	root        string
	format      format.Format
	refStem     string
	indent      int
	placeholder string

	stems []string
	paths map[string]string
}

// Open scans cfg.Dir for documents in cfg.Format. A file belongs to a
// locale when its name minus the format extension parses as a
// language tag, so stray files like README or index.json are left
// alone. The configured reference stem is always accepted even when
// it is not a valid tag.
func Open(cfg *config.Config) (*Dir, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("locale dir %s: %w", cfg.Dir, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("locale dir %s: not a directory", cfg.Dir)
	}
	d := &Dir{
		root:        cfg.Dir,
		format:      cfg.Format,
		refStem:     cfg.Reference,
		indent:      cfg.Indent,
		placeholder: cfg.Placeholder,
		paths:       map[string]string{},
	}
	if err := d.scan(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dir) scan() error {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return fmt.Errorf("locale dir %s: %w", d.root, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		stem, ok := d.stem(e.Name())
		if !ok {
			continue
		}
		if !d.isLocaleStem(stem) {
			if debug.Load() {
				debug.Logf("skip %s: %q is not a language tag\n", e.Name(), stem)
			}
			continue
		}
		if _, dup := d.paths[stem]; dup {
			continue
		}
		d.paths[stem] = filepath.Join(d.root, e.Name())
		d.stems = append(d.stems, stem)
	}
	sort.Strings(d.stems)
	if debug.Load() {
		debug.Logf("scan %s: %d locale documents\n", d.root, len(d.stems))
	}
	return nil
}

func (d *Dir) stem(name string) (string, bool) {
	for _, suffix := range d.format.Suffixes() {
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			return strings.TrimSuffix(name, suffix), true
		}
	}
	return "", false
}

func (d *Dir) isLocaleStem(stem string) bool {
	if stem == d.refStem {
		return true
	}
	// en_US is as common on disk as en-US
	_, err := language.Parse(strings.ReplaceAll(stem, "_", "-"))
	return err == nil
}

// Locales returns the discovered locale stems in sorted order,
// including the reference when present.
func (d *Dir) Locales() []string {
	res := make([]string, len(d.stems))
	copy(res, d.stems)
	return res
}

// Path returns the document path for a discovered stem.
func (d *Dir) Path(stem string) (string, bool) {
	p, ok := d.paths[stem]
	return p, ok
}

// Reference returns the reference stem the directory syncs against.
func (d *Dir) Reference() string {
	return d.refStem
}

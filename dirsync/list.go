package dirsync

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/localekit/locsync/flatten"
)

// LocaleInfo describes one discovered locale document.
type LocaleInfo struct {
	Locale string
	// Tag is the canonical language tag for the stem, empty when the
	// stem does not parse as one (a reference stem like "base").
	Tag       string
	Path      string
	KeyCount  int
	Reference bool
}

// List loads every discovered document and reports its key count and
// canonical language tag, in stem order.
func (d *Dir) List() ([]*LocaleInfo, error) {
	res := make([]*LocaleInfo, 0, len(d.stems))
	for _, stem := range d.stems {
		tree, err := d.load(stem)
		if err != nil {
			return nil, err
		}
		info := &LocaleInfo{
			Locale:    stem,
			Path:      d.paths[stem],
			KeyCount:  flatten.Flatten(tree).Len(),
			Reference: stem == d.refStem,
		}
		if tag, err := language.Parse(strings.ReplaceAll(stem, "_", "-")); err == nil {
			info.Tag = tag.String()
		}
		res = append(res, info)
	}
	return res, nil
}

package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/localekit/locsync/dirsync"
)

// Printer writes run results line by line.
type Printer struct {
	w   io.Writer
	pal *Palette
}

func NewPrinter(w io.Writer, pal *Palette) *Printer {
	if pal == nil {
		pal = MonoPalette()
	}
	return &Printer{w: w, pal: pal}
}

func (p *Printer) Reference(ref *dirsync.RefInfo) {
	fmt.Fprintf(p.w, "%s: %s\n",
		p.pal.Locale("%s", filepath.Base(ref.Path)),
		p.pal.Note("%s (reference)", keys(ref.KeyCount)),
	)
}

// Outcome prints one locale's header line and a row per key that is
// out of sync. The verb on each row follows what actually happened:
// a missing key reads "missing" until a fixing run adds it, and
// "would add" when a dry run held the write back.
func (p *Printer) Outcome(o *dirsync.Outcome) {
	name := p.pal.Locale("%s", filepath.Base(o.Path))
	if o.InSync() && len(o.Skipped) == 0 {
		fmt.Fprintf(p.w, "%s: %s\n", name, p.pal.Note("%s, in sync", keys(o.KeyCount)))
		return
	}
	fmt.Fprintf(p.w, "%s: %s\n", name, p.pal.Note("%s", keys(o.KeyCount)))
	addVerb, dropVerb := "missing", "extraneous"
	if o.Injected {
		addVerb = "added"
		if !o.Persisted {
			addVerb = "would add"
		}
	}
	if o.Pruned {
		dropVerb = "removed"
		if !o.Persisted {
			dropVerb = "would remove"
		}
	}
	for _, k := range o.Missing {
		fmt.Fprintf(p.w, "  %s\n", p.pal.Added("+ %s (%s)", k, addVerb))
	}
	for _, k := range o.Extraneous {
		fmt.Fprintf(p.w, "  %s\n", p.pal.Removed("- %s (%s)", k, dropVerb))
	}
	for _, k := range o.Skipped {
		fmt.Fprintf(p.w, "  %s\n", p.pal.Skipped(". %s (skipped)", k))
	}
}

// Summary prints the aggregate line after a whole directory run.
func (p *Printer) Summary(sum *dirsync.Summary) {
	t := sum.Totals
	fmt.Fprintf(p.w, "%s\n", p.pal.Note(
		"%d locales: %d in sync, %d changed, %d written; %d missing, %d extraneous, %d skipped",
		t.Locales, t.InSync, t.Changed, t.Persisted,
		t.Missing, t.Extraneous, t.Skipped,
	))
}

func keys(n int) string {
	if n == 1 {
		return "1 key"
	}
	return fmt.Sprintf("%d keys", n)
}

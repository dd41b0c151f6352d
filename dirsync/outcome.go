package dirsync

import "github.com/localekit/locsync/ir"

// Outcome describes what one locale document needed and what was done
// to it.
type Outcome struct {
	Locale string
	Path   string

	// KeyCount is the number of leaf keys the document held before
	// any edit.
	KeyCount int

	// Missing and Extraneous are the keys out of sync with the
	// reference, after rule filtering. Skipped holds the keys rules
	// excluded.
	Missing    []string
	Extraneous []string
	Skipped    []string

	// Injected and Pruned record which edits were applied to the in
	// memory document; Persisted records that the file was written.
	Injected  bool
	Pruned    bool
	Persisted bool

	// Before is the document as loaded. After is set when an edit
	// produced a new document, whether or not it was persisted.
	Before *ir.Node
	After  *ir.Node
}

// InSync reports whether the document already covered the reference
// key set exactly, skipped keys aside.
func (o *Outcome) InSync() bool {
	return len(o.Missing) == 0 && len(o.Extraneous) == 0
}

// Changed reports whether an edit produced a new document.
func (o *Outcome) Changed() bool {
	return o.After != nil
}

// RefInfo describes the reference document of a run.
type RefInfo struct {
	Locale   string
	Path     string
	KeyCount int
}

// Totals aggregates a whole directory run.
type Totals struct {
	Locales    int
	InSync     int
	Changed    int
	Persisted  int
	Missing    int
	Extraneous int
	Skipped    int
}

// Summary is the result of a whole directory run.
type Summary struct {
	Reference *RefInfo
	Outcomes  []*Outcome
	Totals    Totals
}

func (s *Summary) add(o *Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	s.Totals.Locales++
	if o.InSync() {
		s.Totals.InSync++
	}
	if o.Changed() {
		s.Totals.Changed++
	}
	if o.Persisted {
		s.Totals.Persisted++
	}
	s.Totals.Missing += len(o.Missing)
	s.Totals.Extraneous += len(o.Extraneous)
	s.Totals.Skipped += len(o.Skipped)
}

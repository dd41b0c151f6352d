package dirsync

import (
	"fmt"

	"github.com/localekit/locsync/debug"
	"github.com/localekit/locsync/flatten"
	"github.com/localekit/locsync/keydiff"
	"github.com/localekit/locsync/keyrule"
	"github.com/localekit/locsync/syncop"
)

// Options select what a sync run may do to the documents.
type Options struct {
	// Fix injects placeholders for missing keys.
	Fix bool
	// DryRun computes edits without writing any file.
	DryRun bool
	// Rules excludes matching keys from missing and extraneous
	// handling.
	Rules *keyrule.Set
}

// SyncLocale checks one locale document against the reference and,
// with Fix set, injects placeholders for its missing keys. A single
// document sync never prunes: extraneous keys are reported and left
// in place.
func (d *Dir) SyncLocale(stem string, opts *Options) (*Outcome, error) {
	refIdx, err := d.refIndex()
	if err != nil {
		return nil, err
	}
	if _, ok := d.paths[stem]; !ok {
		return nil, fmt.Errorf("%w: %s%s in %s", ErrNoLocale, stem, d.format.Suffix(), d.root)
	}
	if stem == d.refStem {
		// the reference is trivially in sync with itself
		return &Outcome{
			Locale:   stem,
			Path:     d.paths[stem],
			KeyCount: refIdx.Len(),
		}, nil
	}
	return d.syncOne(stem, refIdx, false, opts)
}

// SyncAll checks every discovered locale document against the
// reference. Extraneous keys are always pruned from the in memory
// documents; Fix only controls placeholder injection. A document is
// persisted exactly when an edit changed it and DryRun is off.
//
// The run aborts on the first document that cannot be read, parsed or
// written.
func (d *Dir) SyncAll(opts *Options) (*Summary, error) {
	refIdx, err := d.refIndex()
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		Reference: &RefInfo{
			Locale:   d.refStem,
			Path:     d.paths[d.refStem],
			KeyCount: refIdx.Len(),
		},
	}
	for _, stem := range d.stems {
		if stem == d.refStem {
			continue
		}
		out, err := d.syncOne(stem, refIdx, true, opts)
		if err != nil {
			return nil, err
		}
		sum.add(out)
	}
	return sum, nil
}

func (d *Dir) refIndex() (*flatten.Index, error) {
	if _, ok := d.paths[d.refStem]; !ok {
		return nil, fmt.Errorf("%w: %s%s in %s", ErrNoReference, d.refStem, d.format.Suffix(), d.root)
	}
	tree, err := d.load(d.refStem)
	if err != nil {
		return nil, err
	}
	return flatten.Flatten(tree), nil
}

func (d *Dir) syncOne(stem string, refIdx *flatten.Index, prune bool, opts *Options) (*Outcome, error) {
	if opts == nil {
		opts = &Options{}
	}
	tree, err := d.load(stem)
	if err != nil {
		return nil, err
	}
	idx := flatten.Flatten(tree)
	diff := keydiff.Diff(refIdx, idx)
	missing, extraneous, skipped, err := applyRules(diff, stem, opts.Rules)
	if err != nil {
		return nil, err
	}
	out := &Outcome{
		Locale:     stem,
		Path:       d.paths[stem],
		KeyCount:   idx.Len(),
		Missing:    missing,
		Extraneous: extraneous,
		Skipped:    skipped,
		Before:     tree,
	}
	if debug.Sync() {
		debug.Logf("sync %s: %d missing, %d extraneous, %d skipped\n",
			stem, len(missing), len(extraneous), len(skipped))
	}

	// prune before injecting: when a leaf is extraneous where the
	// reference keeps a branch, injection must not land inside a
	// subtree pruning is about to drop
	work := tree
	if prune && len(extraneous) > 0 {
		work = syncop.RemoveExtraneous(work, extraneous)
		out.Pruned = true
	}
	if opts.Fix && len(missing) > 0 {
		work, err = syncop.AddMissing(work, missing, refIdx, syncop.Placeholder{Prefix: d.placeholder})
		if err != nil {
			return nil, err
		}
		out.Injected = true
	}
	if out.Pruned || out.Injected {
		out.After = work
		if !opts.DryRun {
			if err := d.persist(stem, work); err != nil {
				return nil, err
			}
			out.Persisted = true
		}
	}
	return out, nil
}

func applyRules(diff *keydiff.Result, locale string, rules *keyrule.Set) (missing, extraneous, skipped []string, err error) {
	if rules.Empty() {
		return diff.Missing, diff.Extraneous, nil, nil
	}
	for _, k := range diff.Missing {
		m, err := rules.Match(k, locale)
		if err != nil {
			return nil, nil, nil, err
		}
		if m {
			skipped = append(skipped, k)
			continue
		}
		missing = append(missing, k)
	}
	for _, k := range diff.Extraneous {
		m, err := rules.Match(k, locale)
		if err != nil {
			return nil, nil, nil, err
		}
		if m {
			skipped = append(skipped, k)
			continue
		}
		extraneous = append(extraneous, k)
	}
	return missing, extraneous, skipped, nil
}

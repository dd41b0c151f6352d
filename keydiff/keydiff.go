// Package keydiff compares the key sets of two flattened documents.
package keydiff

import "github.com/localekit/locsync/flatten"

// Result classifies one target document against the reference.
type Result struct {
	// Missing lists reference paths the target lacks, in reference
	// document order.
	Missing []string
	// Extraneous lists target paths the reference lacks, in target
	// document order.
	Extraneous []string
}

// Diff matches keys by exact path only. A path present in both
// documents is in sync even when their values disagree, and near
// matches never pair up: when the target holds a leaf where the
// reference holds a branch, the reference's leaves below that point
// are missing and the target's leaf is extraneous.
func Diff(ref, target *flatten.Index) *Result {
	res := &Result{}
	for _, k := range ref.Keys() {
		if !target.Has(k) {
			res.Missing = append(res.Missing, k)
		}
	}
	for _, k := range target.Keys() {
		if !ref.Has(k) {
			res.Extraneous = append(res.Extraneous, k)
		}
	}
	return res
}

// InSync reports whether the target covers the reference key set
// exactly.
func (r *Result) InSync() bool {
	return len(r.Missing) == 0 && len(r.Extraneous) == 0
}

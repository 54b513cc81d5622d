package libdiff

import (
	"strconv"

	"github.com/nextflow-checks/propdiff/debug"
	"github.com/nextflow-checks/propdiff/ir"
)

// Delta is one point of disagreement between two trees. From and To are
// the values at Path in each tree; a nil side means the key or index
// exists only in the other tree.
type Delta struct {
	Path string
	From *ir.Node
	To   *ir.Node
}

// Diff compares two canonical trees and returns every difference, in
// traversal order. It returns nil when the trees are equal.
//
// Path syntax: ".key" for descent into an object, "[i]" for descent
// into an array, concatenated from the root. A key present on only one
// side is reported with the bare key as its whole path segment, without
// a leading dot; nested differences always carry the dot. Callers
// assembling display paths must account for this asymmetry, which is
// preserved for compatibility with existing consumers.
func Diff(a, b *ir.Node) []Delta {
	ds := diff(nil, a, b)
	if debug.Diff() {
		debug.Logf("diff: %d delta(s)\n", len(ds))
	}
	return ds
}

func diff(dst []Delta, a, b *ir.Node) []Delta {
	if ir.Equal(a, b) {
		return dst
	}
	if a == nil || b == nil || a.Type != b.Type {
		// incomparable
		return append(dst, Delta{From: a, To: b})
	}
	switch a.Type {
	case ir.ObjectType:
		for i := range a.Fields {
			key := a.Fields[i].String
			av := a.Values[i]
			bv := ir.Get(b, key)
			if bv == nil {
				dst = append(dst, Delta{Path: key, From: av})
				continue
			}
			for _, sub := range diff(nil, av, bv) {
				dst = append(dst, Delta{
					Path: "." + key + sub.Path,
					From: sub.From,
					To:   sub.To,
				})
			}
		}
		for i := range b.Fields {
			key := b.Fields[i].String
			if ir.Get(a, key) == nil {
				dst = append(dst, Delta{Path: key, To: b.Values[i]})
			}
		}
		return dst
	case ir.ArrayType:
		n := max(len(a.Values), len(b.Values))
		for i := 0; i < n; i++ {
			var av, bv *ir.Node
			if i < len(a.Values) {
				av = a.Values[i]
			}
			if i < len(b.Values) {
				bv = b.Values[i]
			}
			for _, sub := range diff(nil, av, bv) {
				dst = append(dst, Delta{
					Path: "[" + strconv.Itoa(i) + "]" + sub.Path,
					From: sub.From,
					To:   sub.To,
				})
			}
		}
		return dst
	default:
		// same kind, unequal scalars
		return append(dst, Delta{From: a, To: b})
	}
}

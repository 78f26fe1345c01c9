package jdoc

import (
	"github.com/jdoc-format/go-jdoc/debug"
	"github.com/jdoc-format/go-jdoc/node"
)

// Merge overlays src onto dst in place.
//
// A null src clears dst. When both sides are maps the merge recurses
// per key, so an overlay only needs to mention the fields it changes.
// Any other combination replaces dst with a copy of src. src is never
// modified.
func Merge(dst, src *node.Node) {
	if debug.Merge() {
		debug.Logf("merge src:\n%s\ninto dst:\n%s\n", src, dst)
	}
	merge(dst, src)
}

// MergeCopy merges over onto a copy of base and returns it, leaving
// both inputs untouched.
func MergeCopy(base, over *node.Node) *node.Node {
	res := base.Clone()
	merge(res, over)
	return res
}

func merge(dst, src *node.Node) {
	switch {
	case src.IsNull():
		dst.Clear()
	case src.IsMap() && dst.IsMap():
		for _, k := range src.MapKeys() {
			merge(dst.ForceField(k), src.Field(k))
		}
	default:
		src.CloneTo(dst)
	}
}

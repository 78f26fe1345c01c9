package jdoc

import (
	"fmt"
	"strings"

	"github.com/jdoc-format/go-jdoc/debug"
	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/node"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	FlagAdded   = "added"
	FlagRemoved = "removed"
	FlagChanged = "changed"
)

// Diff compares two trees and returns an annotated copy of to.
//
// Unchanged subtrees appear without annotations. New entries carry the
// "added" flag, entries present only in from are kept in the result
// with the "removed" flag, and changed leaves carry the "changed" flag
// plus a Meta line describing the prior value. The result renders
// readably with encode in pretty mode, where the annotations show up
// as comments.
func Diff(from, to *node.Node) *node.Node {
	if debug.Diff() {
		debug.Logf("diff from:\n%s\nto:\n%s\n", from, to)
	}
	return diffNodes(from, to)
}

func diffNodes(from, to *node.Node) *node.Node {
	if node.Equal(from, to) {
		return stripped(to)
	}
	switch {
	case from.IsMap() && to.IsMap():
		return diffMaps(from, to)
	case from.IsList() && to.IsList():
		return diffLists(from, to)
	default:
		return diffLeaf(from, to)
	}
}

func diffMaps(from, to *node.Node) *node.Node {
	res := node.FromMap(nil)
	for _, k := range to.MapKeys() {
		tv := to.Field(k)
		if !from.HasField(k) {
			c := stripped(tv)
			c.AddFlag(FlagAdded)
			*res.ForceField(k) = *c
			continue
		}
		*res.ForceField(k) = *diffNodes(from.Field(k), tv)
	}
	for _, k := range from.MapKeys() {
		if to.HasField(k) {
			continue
		}
		c := stripped(from.Field(k))
		c.AddFlag(FlagRemoved)
		*res.ForceField(k) = *c
	}
	return res
}

func diffLists(from, to *node.Node) *node.Node {
	fs, ts := from.List(), to.List()
	res := node.FromSlice(nil)
	for i := range ts {
		if i < len(fs) {
			*res.ForceAt(i) = *diffNodes(fs[i], ts[i])
			continue
		}
		c := stripped(ts[i])
		c.AddFlag(FlagAdded)
		*res.ForceAt(i) = *c
	}
	for i := len(ts); i < len(fs); i++ {
		c := stripped(fs[i])
		c.AddFlag(FlagRemoved)
		*res.ForceAt(i) = *c
	}
	return res
}

func diffLeaf(from, to *node.Node) *node.Node {
	res := stripped(to)
	res.AddFlag(FlagChanged)
	if from.IsString() && to.IsString() {
		if f, t := from.String(), to.String(); strings.Contains(f, "\n") || strings.Contains(t, "\n") {
			res.Meta = textSummary(f, t)
			return res
		}
	}
	if from.IsCompact() {
		res.Meta = "was " + encode.Text(from, true)
	} else {
		// too big to repeat on a comment line
		res.Meta = "was a " + from.Kind().String()
	}
	return res
}

// textSummary condenses a multiline string change instead of repeating
// the whole prior value in a comment.
func textSummary(from, to string) string {
	dmp := diffpatch.New()
	var ins, del int
	for _, d := range dmp.DiffMain(from, to, true) {
		switch d.Type {
		case diffpatch.DiffInsert:
			ins += len(d.Text)
		case diffpatch.DiffDelete:
			del += len(d.Text)
		}
	}
	return fmt.Sprintf("text changed (+%d -%d chars)", ins, del)
}

// stripped is a deep copy with all annotations cleared, so diff
// annotations are the only ones in the result.
func stripped(n *node.Node) *node.Node {
	c := n.Clone()
	c.Visit(func(v *node.Node, isPost bool) (bool, error) {
		if !isPost {
			v.Meta = ""
			v.Flags = nil
		}
		return true, nil
	})
	return c
}

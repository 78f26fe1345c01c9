package jdoc

import (
	"strings"
	"testing"

	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/node"
)

func TestDiffEqual(t *testing.T) {
	a := mustParse(t, `{ "a" : 1, "b" : [ 1, 2 ] }`)
	b := mustParse(t, `{ "a" : 1, "b" : [ 1, 2 ] }`)
	d := Diff(a, b)
	if !node.Equal(d, b) {
		t.Error("structure should match to")
	}
	var annotated bool
	d.Visit(func(n *node.Node, isPost bool) (bool, error) {
		if !isPost && (n.Meta != "" || len(n.Flags) != 0) {
			annotated = true
		}
		return true, nil
	})
	if annotated {
		t.Error("equal trees should diff without annotations")
	}
}

func TestDiffMap(t *testing.T) {
	from := mustParse(t, `{ "keep" : 1, "change" : 2, "drop" : 3 }`)
	to := mustParse(t, `{ "keep" : 1, "change" : 20, "add" : 4 }`)
	d := Diff(from, to)

	if n := d.Field("keep"); len(n.Flags) != 0 {
		t.Error("keep should be unannotated")
	}
	ch := d.Field("change")
	if !ch.HasFlag(FlagChanged) || ch.Integer() != 20 {
		t.Error("change should carry the new value and the changed flag")
	}
	if ch.Meta != "was 2" {
		t.Errorf("change Meta = %q", ch.Meta)
	}
	if !d.Field("add").HasFlag(FlagAdded) {
		t.Error("add flag")
	}
	dr := d.Field("drop")
	if !dr.HasFlag(FlagRemoved) || dr.Integer() != 3 {
		t.Error("drop should keep the old value with the removed flag")
	}
}

func TestDiffList(t *testing.T) {
	from := mustParse(t, `[ 1, 2, 3 ]`)
	to := mustParse(t, `[ 1, 9 ]`)
	d := Diff(from, to)
	if len(d.List()) != 3 {
		t.Fatalf("got %d elements", len(d.List()))
	}
	if len(d.At(0).Flags) != 0 {
		t.Error("unchanged element should be unannotated")
	}
	if !d.At(1).HasFlag(FlagChanged) || d.At(1).Integer() != 9 {
		t.Error("changed element")
	}
	if !d.At(2).HasFlag(FlagRemoved) || d.At(2).Integer() != 3 {
		t.Error("removed element")
	}
}

func TestDiffKindChange(t *testing.T) {
	from := mustParse(t, `{ "a" : 1 }`)
	to := mustParse(t, `{ "a" : "one" }`)
	d := Diff(from, to)
	a := d.Field("a")
	if !a.HasFlag(FlagChanged) || a.String() != "one" || a.Meta != "was 1" {
		t.Errorf("got flags=%v meta=%q", a.Flags, a.Meta)
	}
}

func TestDiffMultilineText(t *testing.T) {
	from := node.FromString("line one\nline two\n")
	to := node.FromString("line one\nline 2\n")
	d := Diff(from, to)
	if !strings.HasPrefix(d.Meta, "text changed") {
		t.Errorf("Meta = %q", d.Meta)
	}
}

func TestDiffRenders(t *testing.T) {
	from := mustParse(t, `{ "a" : 1 }`)
	to := mustParse(t, `{ "a" : 2 }`)
	out := encode.Text(Diff(from, to), false)
	if !strings.Contains(out, "// was 1") {
		t.Errorf("missing prior-value comment:\n%s", out)
	}
	if !strings.Contains(out, "// flags: changed") {
		t.Errorf("missing flags comment:\n%s", out)
	}
}

func TestDiffInputsUntouched(t *testing.T) {
	from := mustParse(t, `{ "a" : 1 }`)
	to := mustParse(t, `{ "a" : 2 }`)
	Diff(from, to)
	if len(to.Field("a").Flags) != 0 || to.Field("a").Meta != "" {
		t.Error("inputs must not be annotated")
	}
}

package jdoc

import (
	"testing"

	"github.com/jdoc-format/go-jdoc/node"
)

func TestApplyPatch(t *testing.T) {
	doc := mustParse(t, `{ "a" : { "b" : 1 }, "xs" : [ 1, 2 ] }`)
	patch := mustParse(t, `[
		{ "op" : "replace", "path" : "/a/b", "value" : 2 },
		{ "op" : "add", "path" : "/xs/-", "value" : 3 },
		{ "op" : "remove", "path" : "/a" }
	]`)
	res, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if res.HasField("a") {
		t.Error("a should be removed")
	}
	if len(res.Field("xs").List()) != 3 || res.Field("xs").At(2).Integer() != 3 {
		t.Error("xs should be appended to")
	}
	if doc.Field("a").Field("b").Integer() != 1 {
		t.Error("input doc must not change")
	}
}

func TestApplyPatchTestOp(t *testing.T) {
	doc := mustParse(t, `{ "a" : 1 }`)
	patch := mustParse(t, `[ { "op" : "test", "path" : "/a", "value" : 2 } ]`)
	if _, err := ApplyPatch(doc, patch); err == nil {
		t.Error("failing test op should error")
	}
}

func TestApplyPatchBad(t *testing.T) {
	doc := mustParse(t, `{ "a" : 1 }`)
	patch := mustParse(t, `{ "not" : "a patch" }`)
	if _, err := ApplyPatch(doc, patch); err == nil {
		t.Error("non-list patch should error")
	}
}

func TestApplyMergePatch(t *testing.T) {
	doc := mustParse(t, `{ "a" : { "b" : 1, "c" : 2 }, "d" : 3 }`)
	patch := mustParse(t, `{ "a" : { "b" : null }, "d" : 4 }`)
	res, err := ApplyMergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if res.Field("a").HasField("b") {
		t.Error("null in a merge patch removes the field")
	}
	if res.Field("a").Field("c").Integer() != 2 {
		t.Error("c should survive")
	}
	if res.Field("d").Integer() != 4 {
		t.Error("d should be replaced")
	}
}

func TestPatchRoundKinds(t *testing.T) {
	doc := mustParse(t, `{ "i" : 7, "f" : 7.0 }`)
	patch := mustParse(t, `[ { "op" : "replace", "path" : "/i", "value" : 8 } ]`)
	res, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if res.Field("i").Kind() != node.KindInteger {
		t.Error("integers should stay integers across patching")
	}
	if res.Field("f").Kind() != node.KindFloat {
		t.Error("floats should stay floats across patching")
	}
}

package encode

import (
	"bytes"
	"testing"

	"github.com/jdoc-format/go-jdoc/node"
)

func TestEncodePretty(t *testing.T) {
	doc := node.FromMap(map[string]*node.Node{
		"a": node.FromSlice([]*node.Node{node.FromInt(10), node.FromInt(20)}),
	})
	want := "{\n\t\"a\" : [\n\t\t10,\n\t\t20\n\t]\n}"
	if got := Text(doc, false); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeCompactWholeDocument(t *testing.T) {
	// single-property map of compact list: the whole document is compact
	doc := node.FromMap(map[string]*node.Node{
		"a": node.FromSlice([]*node.Node{
			node.FromInt(10), node.FromInt(20), node.FromInt(30),
		}),
	})
	want := `{ "a" : [ 10, 20, 30 ] }`
	if got := Text(doc, true); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeAdaptiveCompaction(t *testing.T) {
	// two-property map stays expanded while its compact subtrees inline
	doc := node.FromMap(map[string]*node.Node{
		"a": node.FromSlice([]*node.Node{node.FromInt(1), node.FromInt(2)}),
		"b": node.FromString("x"),
	})
	want := "{\n\t\"a\" : [ 1, 2 ],\n\t\"b\" : \"x\"\n}"
	if got := Text(doc, true); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		n    *node.Node
		want string
	}{
		{node.Null(), "null"},
		{node.FromBool(true), "true"},
		{node.FromBool(false), "false"},
		{node.FromInt(-42), "-42"},
		{node.FromFloat(2.5), "2.5"},
		{node.FromFloat(2), "2.0"},
		{node.FromFloat(1e21), "1e+21"},
		{node.FromString("hi"), `"hi"`},
	}
	for _, tc := range tests {
		if got := Text(tc.n, true); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.n.Kind(), got, tc.want)
		}
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	if got := Text(node.FromMap(nil), true); got != "{ }" {
		t.Errorf("compact empty map: got %q", got)
	}
	if got := Text(node.FromSlice(nil), true); got != "[ ]" {
		t.Errorf("compact empty list: got %q", got)
	}
	if got := Text(node.FromSlice(nil), false); got != "[\n]" {
		t.Errorf("pretty empty list: got %q", got)
	}
	doc := node.FromMap(map[string]*node.Node{"a": node.FromSlice(nil)})
	if got := Text(doc, true); got != `{ "a" : [ ] }` {
		t.Errorf("nested empty list: got %q", got)
	}
}

func TestEncodeAnnotations(t *testing.T) {
	val := node.FromInt(1)
	val.Meta = "config/widgets.json"
	val.AddFlag("override")
	val.AddFlag("deprecated")
	doc := node.FromMap(map[string]*node.Node{"a": val, "b": node.Null()})

	want := "{\n" +
		"\t// config/widgets.json\n" +
		"\t// flags: deprecated, override\n" +
		"\t\"a\" : 1,\n" +
		"\t\"b\" : null\n" +
		"}"
	if got := Text(doc, false); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// compact regions carry no comments
	compactDoc := node.FromMap(map[string]*node.Node{"a": val})
	if got := Text(compactDoc, true); got != `{ "a" : 1 }` {
		t.Errorf("compact with annotations: got %q", got)
	}
}

func TestEncodeCommentsOff(t *testing.T) {
	val := node.FromInt(1)
	val.Meta = "somewhere"
	doc := node.FromMap(map[string]*node.Node{"a": val, "b": node.Null()})
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, Comments(false)); err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"a\" : 1,\n\t\"b\" : null\n}"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMapOrderDeterministic(t *testing.T) {
	doc := node.FromMap(map[string]*node.Node{
		"zebra": node.FromInt(1),
		"alpha": node.FromInt(2),
		"mid":   node.FromInt(3),
	})
	want := "{\n\t\"alpha\" : 2,\n\t\"mid\" : 3,\n\t\"zebra\" : 1\n}"
	for i := 0; i < 10; i++ {
		if got := Text(doc, false); got != want {
			t.Fatalf("iteration %d: got %q, want %q", i, got, want)
		}
	}
}

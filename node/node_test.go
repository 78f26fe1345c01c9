package node

import (
	"testing"
)

func TestBecomeIntegerFloat(t *testing.T) {
	n := FromInt(7)
	if got := *n.ForceFloat(); got != 7.0 {
		t.Errorf("ForceFloat: got %v, want 7.0", got)
	}
	if got := *n.ForceInteger(); got != 7 {
		t.Errorf("ForceInteger: got %v, want 7", got)
	}
	n = FromFloat(3.9)
	if got := *n.ForceInteger(); got != 3 {
		t.Errorf("ForceInteger truncation: got %v, want 3", got)
	}
}

func TestBecomeLossy(t *testing.T) {
	n := FromString("hello")
	*n.ForceBool() = true
	if n.Kind() != KindBool || !n.Bool() {
		t.Errorf("expected Bool(true), got %s", n.Kind())
	}
	n.Become(KindString)
	if n.String() != "" {
		t.Errorf("expected payload reset, got %q", n.String())
	}
	n.Become(KindMap)
	if n.Map() == nil {
		t.Error("expected empty map payload")
	}
}

func TestConstAccessorDefaults(t *testing.T) {
	n := Null()
	if n.Bool() || n.Integer() != 0 || n.Float() != 0 || n.String() != "" {
		t.Error("null node should read as defaults")
	}
	if n.List() != nil || n.Map() != nil {
		t.Error("null node should read as empty containers")
	}
	if n.Kind() != KindNull {
		t.Error("const accessors must not mutate")
	}
	// numeric cross-reads convert
	f := FromFloat(2.5)
	if f.Integer() != 2 {
		t.Errorf("Float read as Integer: got %d, want 2", f.Integer())
	}
	i := FromInt(4)
	if i.Float() != 4.0 {
		t.Errorf("Integer read as Float: got %v, want 4.0", i.Float())
	}
}

func TestEqualityIgnoresAnnotations(t *testing.T) {
	a := FromMap(map[string]*Node{
		"x": FromSlice([]*Node{FromInt(1), FromString("two")}),
	})
	b := a.Clone()
	if !Equal(a, b) {
		t.Fatal("clone should be equal")
	}
	b.Meta = "config/creatures.json"
	b.Field("x").At(0).AddFlag("deprecated")
	if !Equal(a, b) {
		t.Error("meta/flags must not affect equality")
	}
	*b.Field("x").At(0).ForceInteger() = 2
	if Equal(a, b) {
		t.Error("payload change must affect equality")
	}
}

func TestEqualityDiscriminant(t *testing.T) {
	if Equal(FromInt(7), FromFloat(7.0)) {
		t.Error("Integer(7) and Float(7) differ in discriminant")
	}
	if Equal(FromBool(false), Null()) {
		t.Error("Bool(false) and Null differ in discriminant")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := Null()
	*a.ForceField("k").ForceString() = "v"
	b := a.Clone()
	*b.Field("k").ForceString() = "w"
	if a.Field("k").String() != "v" {
		t.Error("clone shares children with source")
	}
}

func TestTryBoolFromString(t *testing.T) {
	tests := []struct {
		n          *Node
		want       bool
		recognized bool
	}{
		{FromBool(true), true, true},
		{FromBool(false), false, true},
		{FromString("  TRUE "), true, true},
		{FromString("false"), false, true},
		{FromString("maybe"), false, false},
		{FromInt(1), false, false},
		{Null(), false, false},
	}
	for _, tc := range tests {
		got, rec := tc.n.TryBoolFromString()
		if rec != tc.recognized || (rec && got != tc.want) {
			t.Errorf("%s: got (%v, %v), want (%v, %v)",
				tc.n.Kind(), got, rec, tc.want, tc.recognized)
		}
	}
}

func TestContainsBaseData(t *testing.T) {
	empty := FromMap(map[string]*Node{})
	if empty.ContainsBaseData() {
		t.Error("{} has no base data")
	}
	nullEntry := FromMap(map[string]*Node{"a": Null()})
	if nullEntry.ContainsBaseData() {
		t.Error(`{"a": null} has no base data`)
	}
	nested := FromMap(map[string]*Node{
		"a": FromMap(map[string]*Node{"b": FromInt(1)}),
	})
	if !nested.ContainsBaseData() {
		t.Error(`{"a":{"b":1}} has base data`)
	}
	if !FromSlice(nil).ContainsBaseData() {
		t.Error("an empty list still has base data (lists merge by replace)")
	}
	if !FromBool(false).ContainsBaseData() {
		t.Error("scalars have base data")
	}
}

func TestIsCompact(t *testing.T) {
	if !FromMap(map[string]*Node{}).IsCompact() {
		t.Error("empty map is compact")
	}
	single := FromMap(map[string]*Node{
		"xs": FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)}),
	})
	if !single.IsCompact() {
		t.Error("single-property map of an integer list is compact")
	}
	double := FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(2)})
	if double.IsCompact() {
		t.Error("two-property map is never compact")
	}
	deep := FromSlice([]*Node{double})
	if deep.IsCompact() {
		t.Error("list with a non-compact element is not compact")
	}
}

func TestFieldAndAtMisses(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"xs": FromSlice([]*Node{FromInt(10)}),
	})
	if !doc.Field("missing").IsNull() {
		t.Error("missing key reads as null")
	}
	if !doc.Field("xs").At(5).IsNull() {
		t.Error("out-of-range index reads as null")
	}
	if doc.Field("missing") != doc.Field("also-missing") {
		t.Error("misses share the sentinel")
	}
}

func TestForceAtPadding(t *testing.T) {
	n := Null()
	*n.ForceAt(2).ForceInteger() = 30
	l := n.List()
	if len(l) != 3 {
		t.Fatalf("expected length 3, got %d", len(l))
	}
	if !l[0].IsNull() || !l[1].IsNull() {
		t.Error("padding elements should be null")
	}
	if l[2].Integer() != 30 {
		t.Errorf("got %d, want 30", l[2].Integer())
	}
}

func TestMapKeysSorted(t *testing.T) {
	doc := FromMap(map[string]*Node{"c": Null(), "a": Null(), "b": Null()})
	keys := doc.MapKeys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys %v, want %v", keys, want)
		}
	}
}

func TestSetMetaRecursive(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1)}),
	})
	doc.SetMeta("mods/example.json", true)
	if doc.Field("a").At(0).Meta != "mods/example.json" {
		t.Error("recursive SetMeta should reach leaves")
	}
}

func TestVisit(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1), FromInt(2)}),
		"b": FromString("x"),
	})
	count := 0
	err := doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}
}

func TestTruth(t *testing.T) {
	trues := []*Node{
		FromBool(true), FromInt(-1), FromFloat(0.5), FromString("x"),
		FromSlice([]*Node{Null()}),
		FromMap(map[string]*Node{"a": Null()}),
	}
	for _, n := range trues {
		if !Truth(n) {
			t.Errorf("%s should be true", n.Kind())
		}
	}
	falses := []*Node{
		Null(), FromBool(false), FromInt(0), FromFloat(0), FromString(""),
		FromSlice(nil), FromMap(map[string]*Node{}),
	}
	for _, n := range falses {
		if Truth(n) {
			t.Errorf("%s should be false", n.Kind())
		}
	}
}

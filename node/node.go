package node

import (
	"maps"
	"slices"
	"strings"
)

// Node is a document tree node. Exactly one payload is active at a time,
// selected by the kind. Meta and Flags are diagnostic annotations: they are
// carried along on clone and serialization but never participate in equality.
type Node struct {
	kind Kind

	boolV  bool
	intV   int64
	floatV float64
	strV   string
	listV  []*Node
	mapV   map[string]*Node

	Meta  string
	Flags []string
}

// nullNode is the shared sentinel returned by const lookups that miss.
// It must never be mutated; all mutating entry points allocate instead.
var nullNode = &Node{}

func Null() *Node {
	return &Node{}
}

func FromBool(v bool) *Node {
	return &Node{kind: KindBool, boolV: v}
}

func FromInt(v int64) *Node {
	return &Node{kind: KindInteger, intV: v}
}

func FromFloat(v float64) *Node {
	return &Node{kind: KindFloat, floatV: v}
}

func FromString(v string) *Node {
	return &Node{kind: KindString, strV: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{kind: KindList, listV: vs}
}

func FromMap(m map[string]*Node) *Node {
	return &Node{kind: KindMap, mapV: m}
}

func (n *Node) Kind() Kind { return n.kind }

// Become changes the node's active kind. The transition is lossy except for
// Integer<->Float, which converts the numeric value. Any other transition
// resets the payload to the target kind's default. Meta and Flags survive.
func (n *Node) Become(k Kind) {
	if n.kind == k {
		return
	}
	switch {
	case n.kind == KindInteger && k == KindFloat:
		f := float64(n.intV)
		n.resetPayload()
		n.floatV = f
	case n.kind == KindFloat && k == KindInteger:
		i := int64(n.floatV)
		n.resetPayload()
		n.intV = i
	default:
		n.resetPayload()
		if k == KindMap {
			n.mapV = map[string]*Node{}
		}
	}
	n.kind = k
}

func (n *Node) resetPayload() {
	n.boolV = false
	n.intV = 0
	n.floatV = 0
	n.strV = ""
	n.listV = nil
	n.mapV = nil
}

// Clear resets the node to Null.
func (n *Node) Clear() {
	n.Become(KindNull)
}

// Forcing accessors. Each coerces the node to the requested kind (see Become)
// and returns a mutable handle to the payload. They cannot fail, and they
// mutate the node's kind as a side effect.

func (n *Node) ForceBool() *bool {
	n.Become(KindBool)
	return &n.boolV
}

func (n *Node) ForceInteger() *int64 {
	n.Become(KindInteger)
	return &n.intV
}

func (n *Node) ForceFloat() *float64 {
	n.Become(KindFloat)
	return &n.floatV
}

func (n *Node) ForceString() *string {
	n.Become(KindString)
	return &n.strV
}

func (n *Node) ForceList() *[]*Node {
	n.Become(KindList)
	return &n.listV
}

func (n *Node) ForceMap() map[string]*Node {
	n.Become(KindMap)
	if n.mapV == nil {
		n.mapV = map[string]*Node{}
	}
	return n.mapV
}

// Const accessors. Each returns the payload if the node already has the
// requested kind, and the kind's default if it is Null. Calling one against
// any other kind is a caller error (check Kind first); the accessor never
// mutates and returns the default in that case. Integer and Float read across
// with numeric conversion.

func (n *Node) Bool() bool {
	if n.kind == KindBool {
		return n.boolV
	}
	return false
}

func (n *Node) Integer() int64 {
	switch n.kind {
	case KindInteger:
		return n.intV
	case KindFloat:
		return int64(n.floatV)
	}
	return 0
}

func (n *Node) Float() float64 {
	switch n.kind {
	case KindFloat:
		return n.floatV
	case KindInteger:
		return float64(n.intV)
	}
	return 0
}

func (n *Node) String() string {
	if n.kind == KindString {
		return n.strV
	}
	return ""
}

func (n *Node) List() []*Node {
	if n.kind == KindList {
		return n.listV
	}
	return nil
}

func (n *Node) Map() map[string]*Node {
	if n.kind == KindMap {
		return n.mapV
	}
	return nil
}

// MapKeys returns the node's map keys in lexicographic order. Map iteration
// order is semantically significant here (serialization, single-property
// detection), so every traversal goes through this.
func (n *Node) MapKeys() []string {
	if n.kind != KindMap || len(n.mapV) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n.mapV))
}

func (n *Node) IsNull() bool   { return n.kind == KindNull }
func (n *Node) IsNumber() bool { return n.kind == KindInteger || n.kind == KindFloat }
func (n *Node) IsString() bool { return n.kind == KindString }
func (n *Node) IsList() bool   { return n.kind == KindList }
func (n *Node) IsMap() bool    { return n.kind == KindMap }

// TryBoolFromString recognizes permissive boolean fields: a Bool node yields
// its value, a String node is trimmed, case-folded and matched against "true"
// and "false". Anything else is not recognized.
func (n *Node) TryBoolFromString() (v, recognized bool) {
	switch n.kind {
	case KindBool:
		return n.boolV, true
	case KindString:
		switch strings.ToLower(strings.TrimSpace(n.strV)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// ContainsBaseData reports whether the node carries concrete content. Null
// never does; a Map does iff some entry does, recursively. Every other kind,
// including an empty List, always does: only Map nodes can be extended by
// merge, everything else replaces wholesale.
func (n *Node) ContainsBaseData() bool {
	switch n.kind {
	case KindNull:
		return false
	case KindMap:
		for _, v := range n.mapV {
			if v.ContainsBaseData() {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// IsCompact reports whether the subtree is simple enough to render on one
// line: scalars always, a List of compact elements, a Map that is empty or
// has a single compact-valued property.
func (n *Node) IsCompact() bool {
	switch n.kind {
	case KindList:
		for _, v := range n.listV {
			if !v.IsCompact() {
				return false
			}
		}
		return true
	case KindMap:
		switch len(n.mapV) {
		case 0:
			return true
		case 1:
			for _, v := range n.mapV {
				return v.IsCompact()
			}
		}
		return false
	default:
		return true
	}
}

// Field returns the value under key, or the null sentinel if the node is not
// a Map or the key is absent. The result of a miss must not be mutated.
func (n *Node) Field(key string) *Node {
	if n.kind == KindMap {
		if v, ok := n.mapV[key]; ok {
			return v
		}
	}
	return nullNode
}

// HasField reports whether the node is a Map with an entry under key.
// Unlike Field, it distinguishes an absent key from a present Null.
func (n *Node) HasField(key string) bool {
	if n.kind != KindMap {
		return false
	}
	_, ok := n.mapV[key]
	return ok
}

// ForceField coerces the node to a Map and returns the value under key,
// inserting a Null entry if absent.
func (n *Node) ForceField(key string) *Node {
	m := n.ForceMap()
	if v, ok := m[key]; ok {
		return v
	}
	v := Null()
	m[key] = v
	return v
}

// At returns the i-th element, or the null sentinel if the node is not a List
// or i is out of range.
func (n *Node) At(i int) *Node {
	if n.kind == KindList && i >= 0 && i < len(n.listV) {
		return n.listV[i]
	}
	return nullNode
}

// ForceAt coerces the node to a List and returns the i-th element, growing
// the list with Null padding as needed.
func (n *Node) ForceAt(i int) *Node {
	l := n.ForceList()
	for len(*l) <= i {
		*l = append(*l, Null())
	}
	return (*l)[i]
}

// SetMeta sets the provenance annotation, recursively over the whole subtree
// when asked. Used to tag a parsed document with its source for diagnostics.
func (n *Node) SetMeta(meta string, recursive bool) {
	n.Meta = meta
	if !recursive {
		return
	}
	switch n.kind {
	case KindList:
		for _, v := range n.listV {
			v.SetMeta(meta, true)
		}
	case KindMap:
		for _, v := range n.mapV {
			v.SetMeta(meta, true)
		}
	}
}

// AddFlag adds an annotation flag, keeping Flags sorted and deduped.
func (n *Node) AddFlag(flag string) {
	i, found := slices.BinarySearch(n.Flags, flag)
	if found {
		return
	}
	n.Flags = slices.Insert(n.Flags, i, flag)
}

func (n *Node) HasFlag(flag string) bool {
	_, found := slices.BinarySearch(n.Flags, flag)
	return found
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst and returns dst. Children are owned
// exclusively by their parent, so the copy shares nothing with the source.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.kind = n.kind
	dst.boolV = n.boolV
	dst.intV = n.intV
	dst.floatV = n.floatV
	dst.strV = n.strV
	dst.listV = nil
	dst.mapV = nil
	if n.listV != nil {
		dst.listV = make([]*Node, len(n.listV))
		for i, v := range n.listV {
			dst.listV[i] = v.Clone()
		}
	}
	if n.mapV != nil {
		dst.mapV = make(map[string]*Node, len(n.mapV))
		for k, v := range n.mapV {
			dst.mapV[k] = v.Clone()
		}
	}
	dst.Meta = n.Meta
	dst.Flags = slices.Clone(n.Flags)
	return dst
}

// Visit walks the subtree, calling f twice per node, pre- and post-order.
// Returning dive=false from the pre-order call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (dive bool, err error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		switch n.kind {
		case KindList:
			for _, v := range n.listV {
				if err := v.Visit(f); err != nil {
					return err
				}
			}
		case KindMap:
			for _, k := range n.MapKeys() {
				if err := n.mapV[k].Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

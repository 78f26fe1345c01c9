package node

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Meta and Flags never participate.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.kind), rank(b.kind)); c != 0 {
		return c
	}
	switch a.kind {
	case KindNull:
		return 0
	case KindBool:
		if a.boolV == b.boolV {
			return 0
		}
		if !a.boolV {
			return -1
		}
		return 1
	case KindInteger:
		return cmp.Compare(a.intV, b.intV)
	case KindFloat:
		return cmp.Compare(a.floatV, b.floatV)
	case KindString:
		return strings.Compare(a.strV, b.strV)
	case KindList:
		return compareLists(a, b)
	case KindMap:
		return compareMaps(a, b)
	}
	return 0
}

// Equal reports structural equality of discriminant and payload, recursively.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders kinds: Null < Bool < Integer < Float < String < List < Map.
func rank(k Kind) int {
	switch k {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInteger:
		return 2
	case KindFloat:
		return 3
	case KindString:
		return 4
	case KindList:
		return 5
	case KindMap:
		return 6
	}
	return 100
}

func compareLists(a, b *Node) int {
	lenA, lenB := len(a.listV), len(b.listV)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.listV[i], b.listV[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Node) int {
	keysA, keysB := a.MapKeys(), b.MapKeys()
	lenA, lenB := len(keysA), len(keysB)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.mapV[keysA[i]], b.mapV[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

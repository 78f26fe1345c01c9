package node

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolvePointer navigates the tree by a slash-delimited pointer without
// mutating it. The empty pointer resolves to the node itself. Missing keys
// and out-of-range indices resolve to the null sentinel; they are not errors.
// A list segment that is not a plain decimal index (digits only, no leading
// zero) fails with ErrInvalidPointer.
func (n *Node) ResolvePointer(pointer string) (*Node, error) {
	if pointer == "" {
		return n, nil
	}
	seg, rest, err := pointerSegment(pointer)
	if err != nil {
		return nil, err
	}
	if n.kind == KindList {
		index, err := listIndex(seg)
		if err != nil {
			return nil, err
		}
		if index < len(n.listV) {
			return n.listV[index].ResolvePointer(rest)
		}
		return nullNode.ResolvePointer(rest)
	}
	return n.Field(seg).ResolvePointer(rest)
}

// ForcePointer is the mutating counterpart of ResolvePointer: list segments
// grow the list, map segments insert Null entries, and non-container nodes
// along the way are coerced to maps.
func (n *Node) ForcePointer(pointer string) (*Node, error) {
	if pointer == "" {
		return n, nil
	}
	seg, rest, err := pointerSegment(pointer)
	if err != nil {
		return nil, err
	}
	if n.kind == KindList {
		index, err := listIndex(seg)
		if err != nil {
			return nil, err
		}
		return n.ForceAt(index).ForcePointer(rest)
	}
	return n.ForceField(seg).ForcePointer(rest)
}

func pointerSegment(pointer string) (seg, rest string, err error) {
	if pointer[0] != '/' {
		return "", "", fmt.Errorf("%w: %q does not start with '/'", ErrInvalidPointer, pointer)
	}
	if i := strings.IndexByte(pointer[1:], '/'); i != -1 {
		return pointer[1 : i+1], pointer[i+1:], nil
	}
	return pointer[1:], "", nil
}

func listIndex(seg string) (int, error) {
	if seg == "" {
		return 0, fmt.Errorf("%w: empty list index", ErrInvalidPointer)
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, fmt.Errorf("%w: list index %q is not a number", ErrInvalidPointer, seg)
		}
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, fmt.Errorf("%w: list index %q has a leading zero", ErrInvalidPointer, seg)
	}
	index, err := strconv.Atoi(seg)
	if err != nil {
		return 0, fmt.Errorf("%w: list index %q: %v", ErrInvalidPointer, seg, err)
	}
	return index, nil
}

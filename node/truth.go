package node

// Truth reports the truthiness of a node: empty containers, empty strings,
// zero numbers and null are false, everything else is true.
func Truth(n *Node) bool {
	switch n.kind {
	case KindMap:
		return len(n.mapV) != 0
	case KindList:
		return len(n.listV) != 0
	case KindString:
		return n.strV != ""
	case KindInteger:
		return n.intV != 0
	case KindFloat:
		return n.floatV != 0.0
	case KindBool:
		return n.boolV
	case KindNull:
		return false
	default:
		panic("kind")
	}
}

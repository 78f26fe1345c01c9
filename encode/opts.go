package encode

type EncodeOption func(*encState)

// Compact enables per-subtree compaction: subtrees whose IsCompact holds
// render on a single line, everything else stays expanded.
func Compact(v bool) EncodeOption {
	return func(es *encState) { es.compact = v }
}

// Comments controls whether Meta/Flags annotations are written as line
// comments in pretty output. On by default.
func Comments(v bool) EncodeOption {
	return func(es *encState) { es.comments = v }
}

// Indent sets the per-depth indentation string, a tab by default.
func Indent(s string) EncodeOption {
	return func(es *encState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

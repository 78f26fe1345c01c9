package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/jdoc-format/go-jdoc/node"
)

type encState struct {
	compact     bool // per-subtree compaction enabled
	compactMode bool // currently inside a compact subtree
	comments    bool
	indent      string
	prefix      string
	colors      *Colors
}

// Encode writes the tree to w. By default the output is pretty: one entry
// per line, indented by depth, with Meta/Flags annotations emitted as line
// comments. With Compact(true) the writer narrows to single-line form for
// every subtree whose IsCompact holds; a compact subtree never forces its
// ancestors compact. Compact regions carry no comments and no indentation.
func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{
		comments: true,
		indent:   "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	return encodeNode(n, w, es)
}

func encodeNode(n *node.Node, w io.Writer, es *encState) error {
	origMode := es.compactMode
	if es.compact && !es.compactMode && n.IsCompact() {
		es.compactMode = true
	}
	defer func() { es.compactMode = origMode }()

	switch n.Kind() {
	case node.KindNull:
		return writeString(w, es.color(node.KindNull, ValueColor, "null"))
	case node.KindBool:
		v := strconv.FormatBool(n.Bool())
		return writeString(w, es.color(node.KindBool, ValueColor, v))
	case node.KindInteger:
		v := strconv.FormatInt(n.Integer(), 10)
		return writeString(w, es.color(node.KindInteger, ValueColor, v))
	case node.KindFloat:
		return writeString(w, es.color(node.KindFloat, ValueColor, formatFloat(n.Float())))
	case node.KindString:
		return writeString(w, es.color(node.KindString, ValueColor, Quote(n.String())))
	case node.KindList:
		return encodeList(n, w, es)
	case node.KindMap:
		return encodeMap(n, w, es)
	default:
		panic("kind")
	}
}

func encodeList(n *node.Node, w io.Writer, es *encState) error {
	if err := writeOpen(w, es, "["); err != nil {
		return err
	}
	entries := n.List()
	if len(entries) != 0 {
		es.prefix += es.indent
		for i, v := range entries {
			if err := writeAnnotations(v, w, es); err != nil {
				return err
			}
			if !es.compactMode {
				if err := writeString(w, es.prefix); err != nil {
					return err
				}
			}
			if err := encodeNode(v, w, es); err != nil {
				return err
			}
			if err := writeEntrySep(w, es, i == len(entries)-1); err != nil {
				return err
			}
		}
		es.prefix = es.prefix[:len(es.prefix)-len(es.indent)]
	}
	return writeClose(w, es, "]", len(entries) == 0)
}

func encodeMap(n *node.Node, w io.Writer, es *encState) error {
	if err := writeOpen(w, es, "{"); err != nil {
		return err
	}
	keys := n.MapKeys()
	if len(keys) != 0 {
		m := n.Map()
		es.prefix += es.indent
		for i, key := range keys {
			val := m[key]
			if err := writeAnnotations(val, w, es); err != nil {
				return err
			}
			if !es.compactMode {
				if err := writeString(w, es.prefix); err != nil {
					return err
				}
			}
			field := es.color(node.KindMap, FieldColor, Quote(key))
			if err := writeString(w, field+" : "); err != nil {
				return err
			}
			if err := encodeNode(val, w, es); err != nil {
				return err
			}
			if err := writeEntrySep(w, es, i == len(keys)-1); err != nil {
				return err
			}
		}
		es.prefix = es.prefix[:len(es.prefix)-len(es.indent)]
	}
	return writeClose(w, es, "}", len(keys) == 0)
}

// writeAnnotations emits the Meta and Flags line comments before an entry.
// Comments never appear inside compact regions and never round-trip: the
// parser discards them.
func writeAnnotations(n *node.Node, w io.Writer, es *encState) error {
	if es.compactMode || !es.comments {
		return nil
	}
	if n.Meta != "" {
		ln := es.prefix + es.color(node.KindNull, CommentColor, "// "+n.Meta) + "\n"
		if err := writeString(w, ln); err != nil {
			return err
		}
	}
	if len(n.Flags) != 0 {
		c := "// flags: " + strings.Join(n.Flags, ", ")
		ln := es.prefix + es.color(node.KindNull, CommentColor, c) + "\n"
		if err := writeString(w, ln); err != nil {
			return err
		}
	}
	return nil
}

func writeOpen(w io.Writer, es *encState, open string) error {
	pad := "\n"
	if es.compactMode {
		pad = " "
	}
	return writeString(w, es.color(node.KindNull, SepColor, open)+pad)
}

func writeClose(w io.Writer, es *encState, closing string, empty bool) error {
	pad := es.prefix
	if es.compactMode {
		// writeOpen already padded, so an empty container closes as "{ }"
		pad = " "
		if empty {
			pad = ""
		}
	}
	return writeString(w, pad+es.color(node.KindNull, SepColor, closing))
}

func writeEntrySep(w io.Writer, es *encState, last bool) error {
	switch {
	case last && es.compactMode:
		return nil
	case last:
		return writeString(w, "\n")
	case es.compactMode:
		return writeString(w, ", ")
	default:
		return writeString(w, ",\n")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// formatFloat uses the shortest decimal representation, guaranteeing a
// fraction or exponent marker so the value re-parses as a float.
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

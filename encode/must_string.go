package encode

import (
	"bytes"
	"strings"

	"github.com/jdoc-format/go-jdoc/node"
)

// Bytes serializes the tree, selecting compaction by the flag.
func Bytes(n *node.Node, compact bool) []byte {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, Compact(compact)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Text serializes the tree to a string, selecting compaction by the flag.
func Text(n *node.Node, compact bool) string {
	return string(Bytes(n, compact))
}

// Wire serializes the tree as plain machine-readable bytes: compaction
// on, comments off. The output is valid input for JSON tooling.
func Wire(n *node.Node) []byte {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, Compact(true), Comments(false)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func MustString(n *node.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

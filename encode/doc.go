// Package encode writes node trees to text.
//
// The writer is deterministic and cannot fail for any well-formed tree:
// maps serialize in lexicographic key order, integers as plain decimal,
// floats in shortest form with a guaranteed fraction or exponent marker.
//
// Two rendering modes exist. Pretty mode (the default) puts each entry on
// its own line, indents by depth, and emits Meta/Flags annotations as `//`
// line comments before the annotated entry. With Compact(true), any subtree
// whose IsCompact holds renders on one line with ", " separators and single
// space padding inside brackets; the switch is restored after the subtree
// and never propagates upward. Compact regions carry no comments, and
// comments never round-trip back into annotations on re-parse.
//
// String values are quoted with standard escapes. A backslash already
// followed by a valid escape letter is copied through unchanged, so text
// concatenated from escaped fragments cannot double-escape.
package encode

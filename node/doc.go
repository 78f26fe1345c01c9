// Package node provides the document tree for jdoc documents.
//
// # Overview
//
// A jdoc document is a tree of nodes, each holding one of null, bool,
// integer, float, string, list or map. The tree is the universal
// configuration and interchange value of the surrounding code: parsed from
// text, read and mutated through accessors and pointers, and written back
// out by the encode package.
//
// # Node Structure
//
// A Node is a tagged union. The Kind method returns the active discriminant;
// the payload accessors come in two families:
//
//   - Forcing accessors (ForceBool, ForceInteger, ForceFloat, ForceString,
//     ForceList, ForceMap) coerce the node to the requested kind and return a
//     mutable handle. Coercion is lossy except between Integer and Float,
//     which convert the numeric value. The Force prefix is deliberate: these
//     accessors change the node's type as a side effect.
//   - Const accessors (Bool, Integer, Float, String, List, Map) never mutate.
//     A Null node reads as the requested kind's default; reading any other
//     mismatched kind is a caller error and also yields the default.
//
// Maps iterate in lexicographic key order (MapKeys); the order is
// semantically significant for serialization and single-property detection.
//
// # Missing values
//
// Const lookups that miss (Field, At, ResolvePointer) return a single shared
// Null sentinel rather than nil or an error, so optional-field reads chain
// without checks:
//
//	timeout := doc.Field("network").Field("timeout").Integer()
//
// The sentinel is read-only; use the Force variants to create entries.
//
// # Annotations
//
// Meta (a provenance string, typically the source resource name) and Flags
// (short diagnostic markers) ride along on every node. They are excluded
// from Compare/Equal and surface only as comments in pretty serialization.
//
// # Related Packages
//
//   - github.com/jdoc-format/go-jdoc/parse - parses text into node trees
//   - github.com/jdoc-format/go-jdoc/encode - writes node trees to text
//   - github.com/jdoc-format/go-jdoc - merge, diff and patch over trees
package node

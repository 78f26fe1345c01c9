// Package jdoc is the top-level API for working with documents: merging
// overlays, computing annotated diffs, applying patches, and converting
// to and from YAML.
//
// The underlying document model lives in the node package; parsing and
// serialization live in parse and encode.
package jdoc

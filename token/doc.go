// Package token scans document text into lexical tokens.
//
// The scanner is best-effort: malformed input is accumulated into the
// returned error while scanning continues, so the parse layer can always
// build a partial tree. Line comments (`//` to end of line) are discarded
// during scanning; they are a one-way serialization aid and carry no data.
package token

package jdoc

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc/debug"
	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/node"
	"github.com/jdoc-format/go-jdoc/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 patch, itself given as a document
// tree (a list of op entries), to doc and returns the result. Neither
// input is modified. Annotations do not survive: the patch machinery
// works on the compact wire form, which carries none.
func ApplyPatch(doc, patch *node.Node) (*node.Node, error) {
	if debug.Patch() {
		debug.Logf("patch:\n%s\non doc:\n%s\n", patch, doc)
	}
	ops, err := jsonpatch.DecodePatch(encode.Wire(patch))
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	out, err := ops.Apply(encode.Wire(doc))
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("could not read patch result: %w", err)
	}
	return res, nil
}

// ApplyMergePatch applies an RFC 7386 merge patch to doc and returns
// the result. Unlike Merge, a null in the patch removes the field
// entirely rather than leaving a Null entry.
func ApplyMergePatch(doc, patch *node.Node) (*node.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch:\n%s\non doc:\n%s\n", patch, doc)
	}
	out, err := jsonpatch.MergePatch(encode.Wire(doc), encode.Wire(patch))
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("could not read merge patch result: %w", err)
	}
	return res, nil
}

package jdoc

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc/node"

	"github.com/goccy/go-yaml"
)

// FromYAML parses YAML input into a document tree. YAML integers and
// floats keep their distinction, and mappings become maps regardless
// of key style.
func FromYAML(d []byte) (*node.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("could not parse yaml: %w", err)
	}
	n, err := node.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("could not translate yaml: %w", err)
	}
	return n, nil
}

// ToYAML renders a document tree as YAML. Annotations are dropped.
func ToYAML(n *node.Node) ([]byte, error) {
	d, err := yaml.Marshal(n.ToAny())
	if err != nil {
		return nil, fmt.Errorf("could not render yaml: %w", err)
	}
	return d, nil
}

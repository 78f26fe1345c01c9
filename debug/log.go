package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/node"
)

// Logf writes a formatted message to stderr. Document trees and plain
// Go maps and slices among args are rendered readably first.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *node.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

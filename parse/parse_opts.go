package parse

type parseOpts struct {
	source string
}

type ParseOption func(*parseOpts)

// Source names the document's origin (a file path or resource identifier).
// Errors are prefixed with it and the parsed tree's Meta is set to it
// recursively, so later diagnostics can point back to the source.
func Source(name string) ParseOption {
	return func(o *parseOpts) { o.source = name }
}

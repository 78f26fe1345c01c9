package encode

// Quote returns the quoted, escaped text form of a string value.
// If a backslash in the source is already followed by a valid escape letter,
// the pair is copied through unchanged instead of being re-escaped, so
// strings assembled from previously escaped fragments do not double-escape.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\\' && i+1 < len(v) && isEscapeLetter(v[i+1]) {
			d = append(d, c, v[i+1])
			i++
			continue
		}
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '/':
			d = append(d, '\\', '/')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

func isEscapeLetter(c byte) bool {
	switch c {
	case '"', '\\', 'b', 'f', 'n', 'r', 't', '/':
		return true
	default:
		return false
	}
}

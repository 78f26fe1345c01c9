package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote decodes a raw quoted token, including its delimiting quotes, into
// the string value. A missing closing quote (tokenizer recovery) is
// tolerated. Unknown escapes are recorded as errors and copied through.
func Unquote(d []byte) (string, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", fmt.Errorf("%w: not a quoted string", ErrString)
	}
	d = d[1:]
	if len(d) > 0 && d[len(d)-1] == '"' {
		d = d[:len(d)-1]
	}
	var (
		b    strings.Builder
		errs []error
	)
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(d) {
			errs = append(errs, fmt.Errorf("%w: trailing backslash", ErrString))
			b.WriteByte('\\')
			break
		}
		switch d[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, n, err := unhex(d[i+1:])
			if err != nil {
				errs = append(errs, err)
				b.WriteByte('\\')
				b.WriteByte('u')
				break
			}
			b.WriteRune(r)
			i += n
		default:
			errs = append(errs, fmt.Errorf("%w: unknown escape \\%c", ErrString, d[i]))
			b.WriteByte('\\')
			b.WriteByte(d[i])
		}
	}
	return b.String(), errors.Join(errs...)
}

// unhex decodes the four hex digits of a \uXXXX escape, consuming a second
// \uXXXX for surrogate pairs. It returns the rune and the consumed length
// past the 'u'.
func unhex(d []byte) (rune, int, error) {
	if len(d) < 4 {
		return 0, 0, fmt.Errorf("%w: short \\u escape", ErrString)
	}
	u, err := strconv.ParseUint(string(d[:4]), 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad \\u escape: %v", ErrString, err)
	}
	r := rune(u)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' {
		u2, err := strconv.ParseUint(string(d[6:10]), 16, 32)
		if err == nil {
			if dec := utf16.DecodeRune(r, rune(u2)); dec != utf8.RuneError {
				return dec, 10, nil
			}
		}
	}
	return utf8.RuneError, 4, nil
}

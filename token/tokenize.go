package token

import (
	"errors"
	"fmt"
)

// Tokenize scans d into tokens, best-effort: malformed input is recorded as
// an error and scanning continues, so callers always receive every token
// that could be recognized. `//` comments are consumed and discarded here;
// they are purely presentational and never reach the parser.
func Tokenize(d []byte) ([]Token, error) {
	tz := &tokenizer{d: d, pos: Pos{Line: 1, Col: 1}}
	tz.run()
	return tz.toks, errors.Join(tz.errs...)
}

type tokenizer struct {
	d   []byte
	i   int
	pos Pos

	toks []Token
	errs []error
}

func (tz *tokenizer) run() {
	for tz.i < len(tz.d) {
		c := tz.d[tz.i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			tz.advance(1)
		case c == '\n':
			tz.i++
			tz.pos.Line++
			tz.pos.Col = 1
		case c == '/' && tz.i+1 < len(tz.d) && tz.d[tz.i+1] == '/':
			tz.comment()
		case c == '{':
			tz.punct(TLCurl)
		case c == '}':
			tz.punct(TRCurl)
		case c == '[':
			tz.punct(TLSquare)
		case c == ']':
			tz.punct(TRSquare)
		case c == ',':
			tz.punct(TComma)
		case c == ':':
			tz.punct(TColon)
		case c == '"':
			tz.quoted()
		case c == '-' || asciiDigit(c):
			tz.number()
		case asciiLetter(c):
			tz.keyword()
		default:
			tz.errf("%w: byte %q at %s", ErrToken, c, tz.pos)
			tz.advance(1)
		}
	}
}

func (tz *tokenizer) advance(n int) {
	tz.i += n
	tz.pos.Col += n
}

func (tz *tokenizer) errf(format string, args ...any) {
	tz.errs = append(tz.errs, fmt.Errorf(format, args...))
}

func (tz *tokenizer) punct(t Type) {
	tz.toks = append(tz.toks, Token{Type: t, Bytes: tz.d[tz.i : tz.i+1], Pos: tz.pos})
	tz.advance(1)
}

func (tz *tokenizer) comment() {
	for tz.i < len(tz.d) && tz.d[tz.i] != '\n' {
		tz.advance(1)
	}
}

func (tz *tokenizer) quoted() {
	start, pos := tz.i, tz.pos
	tz.advance(1)
	for tz.i < len(tz.d) {
		switch tz.d[tz.i] {
		case '\\':
			if tz.i+1 < len(tz.d) {
				tz.advance(2)
				continue
			}
			tz.advance(1)
		case '"':
			tz.advance(1)
			tz.toks = append(tz.toks, Token{Type: TString, Bytes: tz.d[start:tz.i], Pos: pos})
			return
		case '\n':
			// strings do not span lines
			tz.errf("%w: unterminated string at %s", ErrString, pos)
			tz.toks = append(tz.toks, Token{Type: TString, Bytes: tz.d[start:tz.i], Pos: pos})
			return
		default:
			tz.advance(1)
		}
	}
	tz.errf("%w: unterminated string at %s", ErrString, pos)
	tz.toks = append(tz.toks, Token{Type: TString, Bytes: tz.d[start:tz.i], Pos: pos})
}

func (tz *tokenizer) number() {
	start, pos := tz.i, tz.pos
	j := tz.i
	if tz.d[j] == '-' {
		j++
	}
	n, isFloat, err := number(tz.d[j:])
	if err != nil {
		tz.errf("%w at %s", err, pos)
	}
	if n == 0 {
		tz.advance(j - tz.i + 1)
		return
	}
	end := j + n
	tz.toks = append(tz.toks, Token{
		Type:    TNumber,
		Bytes:   tz.d[start:end],
		Pos:     pos,
		IsFloat: isFloat,
	})
	tz.advance(end - tz.i)
}

func (tz *tokenizer) keyword() {
	start, pos := tz.i, tz.pos
	for tz.i < len(tz.d) && asciiLetter(tz.d[tz.i]) {
		tz.advance(1)
	}
	word := tz.d[start:tz.i]
	var t Type
	switch string(word) {
	case "true":
		t = TTrue
	case "false":
		t = TFalse
	case "null":
		t = TNull
	default:
		tz.errf("%w: %q at %s", ErrToken, word, pos)
		return
	}
	tz.toks = append(tz.toks, Token{Type: t, Bytes: word, Pos: pos})
}

func asciiLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

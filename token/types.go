package token

type Type int

const (
	TLCurl Type = iota
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TLCurl:   "'{'",
		TRCurl:   "'}'",
		TLSquare: "'['",
		TRSquare: "']'",
		TComma:   "','",
		TColon:   "':'",
		TString:  "string",
		TNumber:  "number",
		TTrue:    "true",
		TFalse:   "false",
		TNull:    "null",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// Token is a lexical unit of document text. Bytes aliases the source buffer.
type Token struct {
	Type    Type
	Bytes   []byte
	Pos     Pos
	IsFloat bool // for TNumber: carries a fraction or exponent
}

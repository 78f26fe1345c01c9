package token

import "errors"

var (
	ErrToken             = errors.New("unexpected input")
	ErrString            = errors.New("bad string")
	ErrNumber            = errors.New("bad number")
	ErrNumberLeadingZero = errors.New("number has leading zero")
)

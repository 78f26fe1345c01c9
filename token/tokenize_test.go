package token

import (
	"errors"
	"testing"
)

func types(toks []Token) []Type {
	res := make([]Type, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize([]byte(`{ "a" : [ 1, -2.5, true, false, null ] }`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Type{
		TLCurl, TString, TColon, TLSquare,
		TNumber, TComma, TNumber, TComma,
		TTrue, TComma, TFalse, TComma, TNull,
		TRSquare, TRCurl,
	}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if toks[4].IsFloat {
		t.Error("1 should not be a float")
	}
	if !toks[6].IsFloat {
		t.Error("-2.5 should be a float")
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize([]byte("// leading\n1 // trailing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Type != TNumber {
		t.Fatalf("comments should be discarded, got %v", types(toks))
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize([]byte("{\n  \"a\" : 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Col != 3 {
		t.Errorf(`"a" at %s, want 2:3`, toks[1].Pos)
	}
	if toks[3].Pos.Line != 2 || toks[3].Pos.Col != 9 {
		t.Errorf("1 at %s, want 2:9", toks[3].Pos)
	}
}

func TestTokenizeLeadingZero(t *testing.T) {
	toks, err := Tokenize([]byte("011"))
	if !errors.Is(err, ErrNumberLeadingZero) {
		t.Errorf("got %v, want ErrNumberLeadingZero", err)
	}
	// best-effort: the token is still produced
	if len(toks) != 1 || toks[0].Type != TNumber {
		t.Errorf("expected a number token, got %v", types(toks))
	}
	// 0.5 is fine
	if _, err := Tokenize([]byte("0.5")); err != nil {
		t.Errorf("0.5: %v", err)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks, err := Tokenize([]byte(`"abc`))
	if !errors.Is(err, ErrString) {
		t.Errorf("got %v, want ErrString", err)
	}
	if len(toks) != 1 || toks[0].Type != TString {
		t.Fatalf("expected recovery token, got %v", types(toks))
	}
	v, _ := Unquote(toks[0].Bytes)
	if v != "abc" {
		t.Errorf("got %q, want %q", v, "abc")
	}
}

func TestTokenizeGarbage(t *testing.T) {
	toks, err := Tokenize([]byte("@ 1 %"))
	if !errors.Is(err, ErrToken) {
		t.Errorf("got %v, want ErrToken", err)
	}
	if len(toks) != 1 || toks[0].Type != TNumber {
		t.Errorf("scanning should continue past garbage, got %v", types(toks))
	}
}

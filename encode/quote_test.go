package encode

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{``, `""`},
		{`plain`, `"plain"`},
		{"He said \"hi\"\n", `"He said \"hi\"\n"`},
		{"tab\there", `"tab\there"`},
		{`path/to/file`, `"path\/to\/file"`},
		{"\b\f\r", `"\b\f\r"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestQuoteNoDoubleEscape(t *testing.T) {
	// fragments that already carry escapes are copied through unchanged
	tests := []struct {
		in, want string
	}{
		{`\"hi\"`, `"\"hi\""`},
		{`a\nb`, `"a\nb"`},
		{`a\/b`, `"a\/b"`},
		// a lone backslash before a non-escape letter still escapes
		{`a\zb`, `"a\\zb"`},
		// trailing backslash escapes
		{`a\`, `"a\\"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
}

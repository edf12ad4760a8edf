package util

import "testing"

func TestLatin1IsLossless(t *testing.T) {
	raw := make([]byte, 0, 254)
	for b := 1; b < 0xFF; b++ {
		raw = append(raw, byte(b))
	}
	s := DecodeLatin1(raw)
	back, err := EncodeLatin1(s)
	if err != nil {
		t.Fatal(err)
	}
	if i := FirstDiff(raw, back); i != -1 {
		t.Errorf("round trip differs at %d", i)
	}
}

func TestEncodeLatin1Rejects(t *testing.T) {
	if _, err := EncodeLatin1("音"); err == nil {
		t.Errorf("EncodeLatin1 accepted a non Latin-1 rune")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, "[]"},
		{[]byte{0xAA}, "[AA]"},
		{[]byte{0x01, 0xFF}, "[01 FF]"},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%v) = %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	if got := Indent("a\nb", "\t"); got != "\ta\n\tb" {
		t.Errorf("Indent = %q", got)
	}
	if got := Indent("", "\t"); got != "" {
		t.Errorf("Indent(empty) = %q", got)
	}
}

func TestFirstDiff(t *testing.T) {
	tests := []struct {
		a, b []byte
		want int
	}{
		{[]byte{1, 2}, []byte{1, 2}, -1},
		{[]byte{1, 2}, []byte{1, 3}, 1},
		{[]byte{1}, []byte{1, 2}, 1},
	}
	for _, tt := range tests {
		if got := FirstDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("FirstDiff(%v, %v) = %d want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

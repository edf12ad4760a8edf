package codec

import (
	"bytes"
	"math"
	"testing"

	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/layout"
)

type pair struct {
	A uint8
	B uint8
}

type record struct {
	Kind    int
	Name    string
	Flag    bool
	Hi      uint8
	Word    uint16
	Tempo   float32
	Ref     uint8
	Fixed   int
	Pairs   [2]pair
	Payload [3]uint8
}

var recordTable = layout.NewTable("Record", 24,
	[]layout.Field{
		layout.U8("Kind", 0),
		layout.String("Name", 1, 6),
		layout.Bits("Flag", 7, 0, 1),
		layout.Bits("Hi", 7, 4, 4),
		layout.U16("Word", 8),
		layout.F32("Tempo", 10),
		layout.Index("Ref", 14, 10),
		layout.Const("Fixed", 42),
	},
	layout.Repeat("Pairs", 2, 2, layout.U8("A", 15), layout.U8("B", 16)),
	[]layout.Field{layout.Bytes("Payload", 19, 3)},
)

func sample() []byte {
	return []byte{
		0x03,                          // Kind
		'K', 'I', 'C', 'K', 0x00, 'Z', // Name, terminator, junk
		0x51,                          // Hi=5, Flag=1, bits 1-3 unclaimed (0)
		0x34, 0x12,                    // Word
		0x00, 0x00, 0xF0, 0x42,        // Tempo 120.0
		0x07,                          // Ref
		0x01, 0x02,                    // Pairs[0]
		0x03, 0x04,                    // Pairs[1]
		0x05, 0x06, 0x07,              // Payload
		0xAA, 0xBB,                    // tail
	}
}

func decode(t *testing.T, buf []byte) (*record, Remainder, Diagnostics) {
	t.Helper()
	var diags Diagnostics
	r := &record{}
	rem, err := Decode(cursor.New(buf, 0x100), recordTable, r, &diags)
	if err != nil {
		t.Fatal(err)
	}
	return r, rem, diags
}

func TestDecode(t *testing.T) {
	r, rem, diags := decode(t, sample())
	want := record{
		Kind:    3,
		Name:    "KICK",
		Flag:    true,
		Hi:      5,
		Word:    0x1234,
		Tempo:   120,
		Ref:     7,
		Fixed:   42,
		Pairs:   [2]pair{{1, 2}, {3, 4}},
		Payload: [3]uint8{5, 6, 7},
	}
	if *r != want {
		t.Errorf("decoded %+v\nwant %+v", *r, want)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics: %s", diags)
	}
	wantRanges := []RawRange{
		{Offset: 5, Data: []byte{0x00, 'Z', 0x00}},
		{Offset: 22, Data: []byte{0xAA, 0xBB}},
	}
	if len(rem.Ranges) != len(wantRanges) {
		t.Fatalf("remainder:\n%s", rem)
	}
	for i, w := range wantRanges {
		g := rem.Ranges[i]
		if g.Offset != w.Offset || !bytes.Equal(g.Data, w.Data) {
			t.Errorf("range %d = %d %v want %d %v", i, g.Offset, g.Data, w.Offset, w.Data)
		}
	}
	if rem.Size != 24 {
		t.Errorf("remainder size = %d", rem.Size)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b []byte)
	}{
		{"sample", func(b []byte) {}},
		{"full width name", func(b []byte) { copy(b[1:7], "SNARE!") }},
		{"FF terminator", func(b []byte) { b[3] = 0xFF }},
		{"unclaimed bits set", func(b []byte) { b[7] = 0xFF }},
		{"out of range index", func(b []byte) { b[14] = 0x80 }},
		{"empty index", func(b []byte) { b[14] = 0xFF }},
		{"NaN tempo", func(b []byte) { copy(b[10:14], []byte{0x01, 0x00, 0x80, 0x7F}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := sample()
			tt.mutate(buf)
			r, rem, _ := decode(t, buf)
			got, err := Encode(recordTable, r, rem)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, buf[:24]) {
				t.Errorf("encoded % X\nwant    % X", got, buf[:24])
			}
		})
	}
}

func TestIndexClamp(t *testing.T) {
	buf := sample()
	buf[14] = 0x80
	r, rem, diags := decode(t, buf)
	if r.Ref != 0xFF {
		t.Errorf("Ref = 0x%02X want 0xFF", r.Ref)
	}
	if diags.Count(errs.Kind_OutOfRangeIndex) != 1 {
		t.Fatalf("diagnostics: %s", diags)
	}
	if diags[0].Offset != 0x100+14 {
		t.Errorf("diagnostic offset = 0x%X", diags[0].Offset)
	}
	if !rem.Covers(14) {
		t.Error("clamped byte is not kept")
	}

	r.Ref = 2
	got, err := Encode(recordTable, r, rem)
	if err != nil {
		t.Fatal(err)
	}
	if got[14] != 2 {
		t.Errorf("reassigned index encoded as 0x%02X", got[14])
	}
}

func TestEncodeShorterString(t *testing.T) {
	r, rem, _ := decode(t, sample())
	r.Name = "HH"
	got, err := Encode(recordTable, r, rem)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'H', 'H', 0x00, 0x00, 0x00, 'Z'}
	if !bytes.Equal(got[1:7], want) {
		t.Errorf("name bytes = % X want % X", got[1:7], want)
	}
	back, _, _ := decode(t, got)
	if back.Name != "HH" {
		t.Errorf("decoded name %q", back.Name)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *record)
		kind   errs.Kind
	}{
		{"bits too wide", func(r *record) { r.Hi = 0x10 }, errs.Kind_FieldOverflow},
		{"int too large", func(r *record) { r.Kind = 256 }, errs.Kind_FieldOverflow},
		{"negative", func(r *record) { r.Kind = -1 }, errs.Kind_FieldOverflow},
		{"index beyond capacity", func(r *record) { r.Ref = 10 }, errs.Kind_OutOfRangeIndex},
		{"non Latin-1 name", func(r *record) { r.Name = "ド" }, errs.Kind_FieldOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rem, _ := decode(t, sample())
			tt.mutate(r)
			_, err := Encode(recordTable, r, rem)
			if got := errs.KindOf(err); got != tt.kind {
				t.Errorf("kind = %s want %s (%v)", got, tt.kind, err)
			}
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(cursor.New(sample()[:20], 0x100), recordTable, &record{}, nil)
	if !errs.Is(err, errs.Kind_Truncated) {
		t.Errorf("err = %v", err)
	}
	if e, _ := errs.As(err); e == nil || e.Offset != 0x100+20 {
		t.Errorf("offset of %v", err)
	}
}

func TestEncodeFromZero(t *testing.T) {
	r := &record{Name: "A", Ref: 0xFF, Tempo: float32(math.Inf(1))}
	got, err := Encode(recordTable, r, Remainder{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != recordTable.Size || got[1] != 'A' || got[2] != 0 || got[14] != 0xFF {
		t.Errorf("encoded % X", got)
	}
}

func TestBadPath(t *testing.T) {
	tbl := layout.NewTable("Bad", 1, []layout.Field{layout.U8("Missing", 0)})
	if _, err := Decode(cursor.New([]byte{0}, 0), tbl, &record{}, nil); err == nil {
		t.Error("missing field accepted")
	}
	if _, err := Decode(cursor.New([]byte{0}, 0), tbl, record{}, nil); err == nil {
		t.Error("non-pointer accepted")
	}
}

func TestMaskRemainder(t *testing.T) {
	m := NewMask(6)
	m.Claim(0, 2)
	m.ClaimBits(2, 0x0F)
	m.Claim(4, 2)
	rem := m.Remainder([]byte{1, 2, 0xFF, 4, 5, 6})
	if len(rem.Ranges) != 1 || rem.Ranges[0].Offset != 2 || !bytes.Equal(rem.Ranges[0].Data, []byte{0xF0, 4}) {
		t.Errorf("remainder = %s", rem)
	}
	if !bytes.Equal(rem.Bytes(), []byte{0, 0, 0xF0, 4, 0, 0}) {
		t.Errorf("Bytes() = % X", rem.Bytes())
	}
	if rem.Covers(1) || !rem.Covers(3) || rem.Len() != 2 {
		t.Errorf("Covers/Len wrong for %s", rem)
	}
}

func TestBitsEmpty(t *testing.T) {
	type slot struct {
		Low uint8
		EQ  uint8
	}
	tbl := layout.NewTable("Slot", 1, []layout.Field{
		layout.Bits("Low", 0, 0, 1),
		layout.Bits("EQ", 0, 1, 7).WithEmpty(0xFF),
	})
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0xFF, 0xFF},
		{0xFE, 0xFF},
		{0x0B, 0x05},
		{0xFC, 0x7E},
	}
	for _, tt := range tests {
		var s slot
		var diags Diagnostics
		rem, err := Decode(cursor.New([]byte{tt.in}, 0), tbl, &s, &diags)
		if err != nil {
			t.Fatal(err)
		}
		if s.EQ != tt.want {
			t.Errorf("0x%02X: EQ = 0x%02X want 0x%02X", tt.in, s.EQ, tt.want)
		}
		got, err := Encode(tbl, &s, rem)
		if err != nil {
			t.Fatal(err)
		}
		if got[0] != tt.in {
			t.Errorf("0x%02X: re-encoded as 0x%02X", tt.in, got[0])
		}
	}
}

func TestForget(t *testing.T) {
	base := func() Remainder {
		return Remainder{Size: 16, Ranges: []RawRange{
			{Offset: 2, Data: []byte{1, 2, 3, 4}},
			{Offset: 10, Data: []byte{5, 6}},
		}}
	}
	tests := []struct {
		name   string
		off, n int
		want   []byte
	}{
		{"nothing", 7, 2, []byte{0, 0, 1, 2, 3, 4, 0, 0, 0, 0, 5, 6, 0, 0, 0, 0}},
		{"middle", 3, 2, []byte{0, 0, 1, 0, 0, 4, 0, 0, 0, 0, 5, 6, 0, 0, 0, 0}},
		{"head", 0, 3, []byte{0, 0, 0, 2, 3, 4, 0, 0, 0, 0, 5, 6, 0, 0, 0, 0}},
		{"across ranges", 5, 6, []byte{0, 0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 6, 0, 0, 0, 0}},
		{"everything", 0, 16, make([]byte, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			r.Forget(tt.off, tt.n)
			if got := r.Bytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("Bytes() = % X want % X", got, tt.want)
			}
			for i := tt.off; i < tt.off+tt.n; i++ {
				if r.Covers(i) {
					t.Errorf("still covers %d", i)
				}
			}
		})
	}

	r := base()
	r.Forget(0, 16)
	if !r.IsEmpty() {
		t.Errorf("remainder left: %s", r)
	}
}

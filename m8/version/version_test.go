package version

import (
	"bytes"
	"testing"

	"github.com/but80/m8kit/m8/errs"
)

func header(lsb, msb byte) []byte {
	return append([]byte(Magic), lsb, msb, 0, 0)
}

func TestReadHeader(t *testing.T) {
	tests := []struct {
		lsb, msb byte
		want     string
	}{
		{0x20, 0x02, "2.2.0"},
		{0x50, 0x02, "2.5.0"},
		{0x01, 0x03, "3.0.1"},
		{0x00, 0x04, "4.0.0"},
		{0x10, 0x14, "4.1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			buf := header(tt.lsb, tt.msb)
			h, err := ReadHeader(buf)
			if err != nil {
				t.Fatal(err)
			}
			if h.Version.String() != tt.want {
				t.Errorf("version = %s want %s", h.Version, tt.want)
			}
			if !bytes.Equal(h.Bytes(), buf) {
				t.Errorf("Bytes() = %v want %v", h.Bytes(), buf)
			}
		})
	}
}

func TestReadHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		kind errs.Kind
	}{
		{"bad magic", append([]byte("M9VERSION\x00"), 0, 4, 0, 0), errs.Kind_BadMagic},
		{"short magic", []byte("M8VER"), errs.Kind_Truncated},
		{"no reserved", []byte(Magic + "\x00\x04"), errs.Kind_Truncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHeader(tt.buf)
			if got := errs.KindOf(err); got != tt.kind {
				t.Errorf("kind = %s want %s (%v)", got, tt.kind, err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	v := New(4, 0, 2)
	if !v.AtLeast(4, 0) || v.AtLeast(4, 1) || !v.AtLeast(3, 9) {
		t.Errorf("AtLeast misordered for %s", v)
	}
	if New(3, 0, 0).Compare(New(2, 9, 9)) != 1 {
		t.Errorf("3.0.0 should be greater than 2.9.9")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"4", New(4, 0, 0), false},
		{"4.1", New(4, 1, 0), false},
		{"2.5.1", New(2, 5, 1), false},
		{"4.x", Version{}, true},
		{"16.0", Version{}, true},
		{"1.2.3.4", Version{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		n    int
		want FileKind
	}{
		{HeaderSize + MinSongPayload, FileKind_Song},
		{HeaderSize + 0x1AD5E, FileKind_Song},
		{HeaderSize + 215, FileKind_Instrument},
		{HeaderSize + 0x165 + 18, FileKind_Instrument},
		{HeaderSize + 42, FileKind_Scale},
		{HeaderSize + 39, FileKind_Theme},
	}
	for _, tt := range tests {
		got, err := DetectKind(tt.n)
		if err != nil || got != tt.want {
			t.Errorf("DetectKind(%d) = %s, %v want %s", tt.n, got, err, tt.want)
		}
	}
	if _, err := DetectKind(HeaderSize + 10); !errs.Is(err, errs.Kind_Truncated) {
		t.Errorf("short payload err = %v", err)
	}
}

func TestKindOfExtension(t *testing.T) {
	tests := []struct {
		name string
		want FileKind
	}{
		{"SONG.m8s", FileKind_Song},
		{"songs/BASS.M8I", FileKind_Instrument},
		{"/Scales/DORIAN.m8n", FileKind_Scale},
		{"NIGHT.m8t", FileKind_Theme},
		{"NIGHT.bin", FileKind_Unknown},
		{"m8t", FileKind_Unknown},
	}
	for _, tt := range tests {
		if got := KindOfExtension(tt.name); got != tt.want {
			t.Errorf("KindOfExtension(%q) = %s want %s", tt.name, got, tt.want)
		}
	}
	if got, _ := DetectKind(HeaderSize + MinScalePayload); got != FileKind_Scale {
		t.Errorf("a padded theme is expected to read as a scale by length, got %s", got)
	}
}

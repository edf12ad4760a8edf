package settings

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/layout"
)

var scaleNotes = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteOffset moves one note of a scale by semitones and cents.
type NoteOffset struct {
	Semitones uint8 `json:"semitones"`
	Cents     uint8 `json:"cents"`
}

// Offset returns the offset in semitones.
func (n NoteOffset) Offset() float64 {
	return float64(n.Semitones) + float64(n.Cents)/100
}

// Scale
//     +0 | enabled notes (u16, bit 0 = C) |
//  +2..  | 12 x (semitones, cents)        |
//  +26.. | name[16]                       |
type Scale struct {
	Enabled uint16         `json:"enabled"`
	Notes   [12]NoteOffset `json:"notes"`
	Name    string         `json:"name"`

	Remainder codec.Remainder `json:"-"`
}

func (s *Scale) raw() *codec.Remainder { return &s.Remainder }

// DefaultScale returns the chromatic scale with every note enabled.
func DefaultScale() *Scale {
	return &Scale{Enabled: 0x0FFF, Name: "CHROMATIC"}
}

func DecodeScale(c *cursor.Cursor, diags *codec.Diagnostics) (*Scale, error) {
	s := &Scale{}
	if err := decode(c, layout.ScaleTable, s, diags); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scale) Encode() ([]byte, error) {
	return encode(layout.ScaleTable, s)
}

// NoteEnabled tells whether note n (0 = C) is in the scale.
func (s *Scale) NoteEnabled(n int) bool {
	return s.Enabled>>uint(n)&1 == 1
}

func (s *Scale) SetNoteEnabled(n int, on bool) {
	if on {
		s.Enabled |= 1 << uint(n)
	} else {
		s.Enabled &^= 1 << uint(n)
	}
}

// Screen renders the scale page. number is the slot shown in the title.
func (s *Scale) Screen(number int) string {
	lines := []string{fmt.Sprintf("SCALE %X", number), "KEY   C", "", "   EN OFFSET"}
	for i, n := range s.Notes {
		v := " -- -- --"
		if s.NoteEnabled(i) {
			v = fmt.Sprintf(" ON %05.2f", n.Offset())
		}
		lines = append(lines, fmt.Sprintf("%-2s%s", scaleNotes[i], v))
	}
	return strings.Join(append(lines, "", "NAME  "+s.Name), "\n")
}

func (s *Scale) String() string {
	return s.Screen(0)
}

package settings

import (
	"fmt"
	"math"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/layout"
)

// EqBand
//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
// +0 |   MODE    | -   - |   TYPE    |
// +1 |           FREQ FINE           |
// +2 |             FREQ              |
// +3 |          LEVEL FINE           |
// +4 |             LEVEL             |
// +5 |               Q               |
type EqBand struct {
	Type      enums.EqType `json:"type"`
	Mode      enums.EqMode `json:"mode"`
	FreqFine  uint8        `json:"freq_fine"`
	Freq      uint8        `json:"freq"`
	LevelFine uint8        `json:"level_fine"`
	Level     uint8        `json:"level"`
	Q         uint8        `json:"q"`
}

func newBand(t enums.EqType, hz int) EqBand {
	b := EqBand{Type: t, Mode: enums.EqMode_Stereo, Q: 50}
	b.SetFrequency(hz)
	return b
}

// Gain returns the level in dB. Level and LevelFine form a signed
// hundredth of a dB.
func (b EqBand) Gain() float64 {
	return float64(int16(uint16(b.Level)<<8|uint16(b.LevelFine))) / 100
}

// Limits of the values an EqBand can store.
const (
	MinGain      = -327.68
	MaxGain      = 327.67
	MaxFrequency = 0xFFFF
)

// SetGain stores a level in dB, rounded to a hundredth and clamped to
// MinGain..MaxGain. NaN stores 0.
func (b *EqBand) SetGain(db float64) {
	n := math.Round(db * 100)
	switch {
	case math.IsNaN(n):
		n = 0
	case n < math.MinInt16:
		n = math.MinInt16
	case math.MaxInt16 < n:
		n = math.MaxInt16
	}
	v := uint16(int16(n))
	b.Level = uint8(v >> 8)
	b.LevelFine = uint8(v)
}

// Frequency returns the center or corner frequency in Hz.
func (b EqBand) Frequency() int {
	return int(b.Freq)<<8 | int(b.FreqFine)
}

// SetFrequency stores hz clamped to 0..MaxFrequency.
func (b *EqBand) SetFrequency(hz int) {
	switch {
	case hz < 0:
		hz = 0
	case MaxFrequency < hz:
		hz = MaxFrequency
	}
	b.Freq = uint8(hz >> 8)
	b.FreqFine = uint8(hz)
}

// IsFlat tells whether the band has no gain.
func (b EqBand) IsFlat() bool {
	return b.Level == 0 && b.LevelFine == 0
}

func (b EqBand) String() string {
	return fmt.Sprintf("%-8s %-6s %5dHz %+6.2fdB Q%3d", b.Type, b.Mode, b.Frequency(), b.Gain(), b.Q)
}

// EQ is a three band equalizer, shared by instruments which refer to it by number.
type EQ struct {
	Low  EqBand `json:"low"`
	Mid  EqBand `json:"mid"`
	High EqBand `json:"high"`

	Remainder codec.Remainder `json:"-"`
}

func (e *EQ) raw() *codec.Remainder { return &e.Remainder }

// DefaultEQ returns the EQ a new song starts with.
func DefaultEQ() *EQ {
	return &EQ{
		Low:  newBand(enums.EqType_LowShelf, 100),
		Mid:  newBand(enums.EqType_Bell, 1000),
		High: newBand(enums.EqType_HiShelf, 5000),
	}
}

func DecodeEQ(c *cursor.Cursor, diags *codec.Diagnostics) (*EQ, error) {
	e := &EQ{}
	if err := decode(c, layout.EQTable, e, diags); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *EQ) Encode() ([]byte, error) {
	return encode(layout.EQTable, e)
}

// IsEmpty tells whether all bands are still the defaults.
func (e *EQ) IsEmpty() bool {
	d := DefaultEQ()
	return e.Low == d.Low && e.Mid == d.Mid && e.High == d.High
}

// Clear resets the bands to the defaults.
func (e *EQ) Clear() {
	d := DefaultEQ()
	e.Low, e.Mid, e.High = d.Low, d.Mid, d.High
}

// Equal compares the bands only.
func (e *EQ) Equal(o *EQ) bool {
	return e.Low == o.Low && e.Mid == o.Mid && e.High == o.High
}

func (e *EQ) String() string {
	return strings.Join([]string{
		"LOW  " + e.Low.String(),
		"MID  " + e.Mid.String(),
		"HIGH " + e.High.String(),
	}, "\n")
}

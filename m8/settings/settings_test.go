package settings

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/layout"
)

func TestDefaultEQ(t *testing.T) {
	b, err := DefaultEQ().Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x01, 0x64, 0x00, 0x00, 0x00, 0x32,
		0x02, 0xE8, 0x03, 0x00, 0x00, 0x32,
		0x04, 0x88, 0x13, 0x00, 0x00, 0x32,
	}
	if !bytes.Equal(b, want) {
		t.Fatalf("default EQ = % X\nwant % X", b, want)
	}
	e, err := DecodeEQ(cursor.New(b, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !e.IsEmpty() || e.Mid.Frequency() != 1000 || e.High.Type != enums.EqType_HiShelf {
		t.Errorf("decoded %s", e)
	}
}

func TestEqBand(t *testing.T) {
	b := []byte{0x4D, 0x10, 0x27, 0x38, 0xFF, 0x07}
	b = append(b, make([]byte, 12)...)
	e, err := DecodeEQ(cursor.New(b, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	low := e.Low
	if low.Type != enums.EqType_HiCut || low.Mode != enums.EqMode_Side {
		t.Errorf("type/mode = %s/%s", low.Type, low.Mode)
	}
	if low.Frequency() != 10000 {
		t.Errorf("frequency = %d", low.Frequency())
	}
	if low.Gain() != -2 {
		t.Errorf("gain = %f", low.Gain())
	}
	if e.IsEmpty() || low.IsFlat() {
		t.Error("band reported as empty")
	}
	got, err := e.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, b) {
		t.Errorf("re-encoded % X\nwant % X", got, b)
	}

	var band EqBand
	band.SetGain(-2)
	if band.Level != 0xFF || band.LevelFine != 0x38 {
		t.Errorf("SetGain(-2) = %02X %02X", band.Level, band.LevelFine)
	}
	band.SetGain(1.5)
	if band.Gain() != 1.5 {
		t.Errorf("SetGain(1.5) reads back %f", band.Gain())
	}
}

func TestEqBandLimits(t *testing.T) {
	gains := []struct {
		db, want float64
	}{
		{1.5, 1.5},
		{-2.004, -2},
		{327.67, MaxGain},
		{400, MaxGain},
		{-327.68, MinGain},
		{-1000, MinGain},
		{math.Inf(1), MaxGain},
		{math.NaN(), 0},
	}
	for _, tt := range gains {
		var band EqBand
		band.SetGain(tt.db)
		if got := band.Gain(); got != tt.want {
			t.Errorf("SetGain(%v) reads back %v want %v", tt.db, got, tt.want)
		}
	}

	freqs := []struct {
		hz, want int
	}{
		{1000, 1000},
		{MaxFrequency, MaxFrequency},
		{70000, MaxFrequency},
		{-5, 0},
	}
	for _, tt := range freqs {
		var band EqBand
		band.SetFrequency(tt.hz)
		if got := band.Frequency(); got != tt.want {
			t.Errorf("SetFrequency(%d) reads back %d want %d", tt.hz, got, tt.want)
		}
	}
}

func TestEQClear(t *testing.T) {
	e := DefaultEQ()
	e.Mid.SetGain(3)
	if e.IsEmpty() || e.Equal(DefaultEQ()) {
		t.Error("modified EQ is empty")
	}
	e.Clear()
	if !e.IsEmpty() {
		t.Error("cleared EQ is not empty")
	}
}

func TestMixerStereo(t *testing.T) {
	b := make([]byte, layout.MixerSize)
	b[13], b[14] = 0xE0, 0xFF
	s, err := DecodeMixerSettings(cursor.New(b, layout.MixerOffset), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Stereo() || s.Analog(0).Volume != 0xE0 {
		t.Errorf("stereo input not detected: %s", s)
	}
	s.AnalogVolume[1] = 0xC0
	if s.Stereo() || !strings.Contains(s.String(), "INPUT R C0") {
		t.Errorf("dual mono input: %s", s)
	}
}

func TestEffectsTables(t *testing.T) {
	b := make([]byte, 21)
	for i := range b {
		b[i] = uint8(i)
	}
	v2, err := DecodeEffects(cursor.New(b, layout.EffectsOffset), layout.V3_0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v2.DelayHP != 6 || v2.DelayTimeL != 8 || v2.ReverbWidth != 20 || !HasFilters(layout.V3_0) {
		t.Errorf("v2 effects = %+v", v2)
	}
	v4, err := DecodeEffects(cursor.New(b[:17], layout.EffectsOffset), layout.V4_1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v4.DelayHP != 0 || v4.DelayTimeL != 6 || v4.ReverbWidth != 16 || HasFilters(layout.V4_1) {
		t.Errorf("v4 effects = %+v", v4)
	}
	_, err = DecodeEffects(cursor.New(b[:16], layout.EffectsOffset), layout.V4_1, nil)
	if !errs.Is(err, errs.Kind_Truncated) {
		t.Errorf("short effects err = %v", err)
	}
}

func TestMidiMapping(t *testing.T) {
	m, err := DecodeMidiMapping(cursor.New(make([]byte, layout.MidiMappingSize), layout.MidiMappingsOffset), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsEmpty() || m.String() != "--" {
		t.Errorf("zero mapping = %s", m)
	}
	m.Channel = 1
	if m.IsEmpty() {
		t.Error("channel 1 mapping is empty")
	}
}

func TestScale(t *testing.T) {
	s := DefaultScale()
	for n := 0; n < 12; n++ {
		if !s.NoteEnabled(n) {
			t.Fatalf("note %d disabled", n)
		}
	}
	s.SetNoteEnabled(1, false)
	s.Notes[2] = NoteOffset{Semitones: 1, Cents: 50}
	b, err := s.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0xFD || b[1] != 0x0F || b[6] != 1 || b[7] != 50 || string(b[26:35]) != "CHROMATIC" || b[35] != 0 {
		t.Errorf("encoded % X", b)
	}
	back, err := DecodeScale(cursor.New(b, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	screen := back.Screen(3)
	for _, want := range []string{"SCALE 3", "C# -- -- --", "D  ON 01.50", "NAME  CHROMATIC"} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen lacks %q:\n%s", want, screen)
		}
	}
}

func TestTheme(t *testing.T) {
	b := make([]byte, layout.ThemeSize)
	for i := range b {
		b[i] = uint8(i)
	}
	th, err := DecodeTheme(cursor.New(b, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if th.Background != (RGB{0, 1, 2}) || th.MeterPeak != (RGB{36, 37, 38}) {
		t.Errorf("theme = %+v", th)
	}
	if c, ok := th.Color("Cursor"); !ok || c.String() != "#151617" {
		t.Errorf("cursor color = %s", c)
	}
	if len(strings.Split(th.String(), "\n")) != len(layout.ThemeColors) {
		t.Errorf("theme view:\n%s", th)
	}
}

func TestRandomRoundTrip(t *testing.T) {
	type entity interface {
		raw() *codec.Remainder
	}
	tests := []struct {
		name   string
		size   int
		decode func(c *cursor.Cursor) (entity, error)
		encode func(e entity) ([]byte, error)
	}{
		{"midi", layout.MidiSize,
			func(c *cursor.Cursor) (entity, error) { return DecodeMidiSettings(c, nil) },
			func(e entity) ([]byte, error) { return e.(*MidiSettings).Encode() }},
		{"mixer", layout.MixerSize,
			func(c *cursor.Cursor) (entity, error) { return DecodeMixerSettings(c, nil) },
			func(e entity) ([]byte, error) { return e.(*MixerSettings).Encode() }},
		{"effects v2", 21,
			func(c *cursor.Cursor) (entity, error) { return DecodeEffects(c, layout.V2_5, nil) },
			func(e entity) ([]byte, error) { return e.(*EffectsSettings).Encode(layout.V2_5) }},
		{"effects v4", 17,
			func(c *cursor.Cursor) (entity, error) { return DecodeEffects(c, layout.V4_0, nil) },
			func(e entity) ([]byte, error) { return e.(*EffectsSettings).Encode(layout.V4_0) }},
		{"mapping", layout.MidiMappingSize,
			func(c *cursor.Cursor) (entity, error) { return DecodeMidiMapping(c, nil) },
			func(e entity) ([]byte, error) { return e.(*MidiMapping).Encode() }},
		{"eq", layout.EQSize,
			func(c *cursor.Cursor) (entity, error) { return DecodeEQ(c, nil) },
			func(e entity) ([]byte, error) { return e.(*EQ).Encode() }},
		{"scale", layout.ScaleSize,
			func(c *cursor.Cursor) (entity, error) { return DecodeScale(c, nil) },
			func(e entity) ([]byte, error) { return e.(*Scale).Encode() }},
		{"theme", layout.ThemeSize,
			func(c *cursor.Cursor) (entity, error) { return DecodeTheme(c, nil) },
			func(e entity) ([]byte, error) { return e.(*Theme).Encode() }},
	}
	rnd := rand.New(rand.NewSource(4))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n := 0; n < 50; n++ {
				b := make([]byte, tt.size)
				rnd.Read(b)
				e, err := tt.decode(cursor.New(b, 0))
				if err != nil {
					t.Fatal(err)
				}
				got, err := tt.encode(e)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, b) {
					t.Fatalf("round trip differs\n got % X\nwant % X", got, b)
				}
			}
		})
	}
}

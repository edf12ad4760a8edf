package song

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/fx"
	"github.com/but80/m8kit/m8/instrument"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/settings"
	"github.com/but80/m8kit/m8/version"
	"github.com/pkg/errors"
)

// Song is a decoded song file.
type Song struct {
	Header version.Header `json:"header"`
	Layout *layout.Layout `json:"-"`

	Directory string  `json:"directory"`
	Transpose uint8   `json:"transpose"`
	Tempo     float32 `json:"tempo"`
	Quantize  uint8   `json:"quantize"`
	Name      string  `json:"name"`
	Key       uint8   `json:"key"`

	MidiSettings *settings.MidiSettings                        `json:"midi_settings"`
	Mixer        *settings.MixerSettings                       `json:"mixer"`
	Grooves      [layout.NumGrooves]*Groove                    `json:"grooves"`
	SongSteps    *SongSteps                                    `json:"song_steps"`
	Phrases      [layout.NumPhrases]*Phrase                    `json:"phrases"`
	Chains       [layout.NumChains]*Chain                      `json:"chains"`
	Tables       [layout.NumTables]*Table                      `json:"tables"`
	Instruments  [layout.NumInstruments]instrument.Instrument  `json:"instruments"`
	Effects      *settings.EffectsSettings                     `json:"effects"`
	MidiMappings [layout.NumMidiMappings]*settings.MidiMapping `json:"midi_mappings"`
	// Scales is empty before 2.5, EQs before 4.0.
	Scales []*settings.Scale `json:"scales,omitempty"`
	EQs    []*settings.EQ    `json:"eqs,omitempty"`

	// Size is the length of the encoded file.
	Size      int             `json:"size"`
	Remainder codec.Remainder `json:"-"`
}

// New returns an empty song laid out by l.
func New(l *layout.Layout) *Song {
	s := &Song{
		Header:       version.Header{Version: l.Min},
		Layout:       l,
		Directory:    "/Songs/",
		Tempo:        120,
		Name:         "UNTITLED",
		MidiSettings: &settings.MidiSettings{},
		Mixer:        &settings.MixerSettings{},
		SongSteps:    NewSongSteps(),
		Effects:      &settings.EffectsSettings{},
		Size:         l.MinSongSize(),
	}
	for i := range s.Grooves {
		s.Grooves[i] = NewGroove()
	}
	for i := range s.Phrases {
		s.Phrases[i] = NewPhrase()
	}
	for i := range s.Chains {
		s.Chains[i] = NewChain()
	}
	for i := range s.Tables {
		s.Tables[i] = NewTable()
	}
	for i := range s.Instruments {
		s.Instruments[i] = instrument.NewNone()
	}
	for i := range s.MidiMappings {
		s.MidiMappings[i] = &settings.MidiMapping{}
	}
	for i := 0; i < l.Scales.Count; i++ {
		s.Scales = append(s.Scales, settings.DefaultScale())
	}
	for i := 0; i < l.EQs.Count; i++ {
		s.EQs = append(s.EQs, settings.DefaultEQ())
	}
	return s
}

// Decode reads a whole song file laid out by l.
// Every byte outside the header fields and the sections of l is kept in
// the song remainder.
func Decode(buf []byte, l *layout.Layout, diags *codec.Diagnostics) (*Song, error) {
	h, err := version.ReadHeader(buf)
	if err != nil {
		return nil, err
	}
	if n := l.MinSongSize(); len(buf) < n {
		return nil, errs.New(errs.Kind_Truncated, len(buf), "layout %s needs a %d byte song, file has %d", l, n, len(buf))
	}
	log.Debugf("song: version %s, layout %s, %d bytes", h.Version, l, len(buf))
	log.Enter()
	defer log.Leave()

	s := &Song{Header: h, Layout: l, Size: len(buf)}
	c := cursor.New(buf, 0)
	m := codec.NewMask(len(buf))
	m.Claim(0, version.HeaderSize)
	if err := codec.DecodeFields(c, l.Header, s, m, diags); err != nil {
		return nil, err
	}
	for _, sec := range l.Sections() {
		m.Claim(sec.Offset, sec.End()-sec.Offset)
	}

	d := decoder{c: c}
	d.run(l.MidiSettings, func(i int, c *cursor.Cursor) (err error) {
		s.MidiSettings, err = settings.DecodeMidiSettings(c, diags)
		return
	})
	d.run(l.Mixer, func(i int, c *cursor.Cursor) (err error) {
		s.Mixer, err = settings.DecodeMixerSettings(c, diags)
		return
	})
	d.run(l.Grooves, func(i int, c *cursor.Cursor) error {
		s.Grooves[i] = &Groove{}
		return decodeEntity(c, 0, layout.GrooveTable, s.Grooves[i], diags)
	})
	d.run(l.SongSteps, func(i int, c *cursor.Cursor) error {
		s.SongSteps = &SongSteps{}
		return decodeEntity(c, 0, layout.SongStepsTable, s.SongSteps, diags)
	})
	d.run(l.Phrases, func(i int, c *cursor.Cursor) (err error) {
		s.Phrases[i], err = DecodePhrase(c, diags)
		return
	})
	d.run(l.Chains, func(i int, c *cursor.Cursor) (err error) {
		s.Chains[i], err = DecodeChain(c, diags)
		return
	})
	d.run(l.Tables, func(i int, c *cursor.Cursor) (err error) {
		s.Tables[i], err = DecodeTable(c, diags)
		return
	})
	d.run(l.Instruments, func(i int, c *cursor.Cursor) (err error) {
		s.Instruments[i], err = instrument.Decode(c, l, diags)
		return
	})
	d.run(l.Effects, func(i int, c *cursor.Cursor) (err error) {
		s.Effects, err = settings.DecodeEffects(c, l, diags)
		return
	})
	d.run(l.MidiMappings, func(i int, c *cursor.Cursor) (err error) {
		s.MidiMappings[i], err = settings.DecodeMidiMapping(c, diags)
		return
	})
	if l.Scales.Present() {
		s.Scales = make([]*settings.Scale, l.Scales.Count)
	}
	d.run(l.Scales, func(i int, c *cursor.Cursor) (err error) {
		s.Scales[i], err = settings.DecodeScale(c, diags)
		return
	})
	if l.EQs.Present() {
		s.EQs = make([]*settings.EQ, l.EQs.Count)
	}
	d.run(l.EQs, func(i int, c *cursor.Cursor) (err error) {
		s.EQs[i], err = settings.DecodeEQ(c, diags)
		return
	})
	if d.err != nil {
		return nil, d.err
	}

	s.Remainder = m.Remainder(buf)
	log.Debugf("song remainder: %d bytes", s.Remainder.Len())
	return s, nil
}

// decoder walks the entities of sections and stops at the first error.
type decoder struct {
	c   *cursor.Cursor
	err error
}

func (d *decoder) run(sec layout.Section, f func(i int, c *cursor.Cursor) error) {
	if d.err != nil || !sec.Present() {
		return
	}
	log.Debugf("%s: %d x %d bytes at 0x%05X", sec.Name, sec.Count, sec.Stride, sec.Offset)
	for i := 0; i < sec.Count; i++ {
		c, err := d.c.Sub(sec.At(i), sec.Stride)
		if err == nil {
			err = f(i, c)
		}
		if err != nil {
			d.err = errors.Wrapf(err, "%s %d", sec.Name, i)
			return
		}
	}
}

// Encode writes the song in the layout it was decoded with.
func (s *Song) Encode() ([]byte, error) {
	l := s.Layout
	if l == nil {
		return nil, errors.New("song has no layout")
	}
	if n := l.MinSongSize(); s.Size < n {
		return nil, errs.New(errs.Kind_FieldOverflow, s.Size, "layout %s needs a %d byte song, size is %d", l, n, s.Size)
	}
	buf := make([]byte, s.Size)
	s.Remainder.Apply(buf)
	copy(buf, s.Header.Bytes())
	if err := codec.EncodeFields(cursor.New(buf, 0), l.Header, s, s.Remainder); err != nil {
		return nil, err
	}

	e := encoder{buf: buf}
	e.one(l.MidiSettings, func() ([]byte, error) { return s.MidiSettings.Encode() })
	e.one(l.Mixer, func() ([]byte, error) { return s.Mixer.Encode() })
	e.each(l.Grooves, func(i int) ([]byte, error) {
		return codec.Encode(layout.GrooveTable, s.Grooves[i], s.Grooves[i].Remainder)
	})
	e.one(l.SongSteps, func() ([]byte, error) {
		return codec.Encode(layout.SongStepsTable, s.SongSteps, s.SongSteps.Remainder)
	})
	e.each(l.Phrases, func(i int) ([]byte, error) { return s.Phrases[i].Encode() })
	e.each(l.Chains, func(i int) ([]byte, error) { return s.Chains[i].Encode() })
	e.each(l.Tables, func(i int) ([]byte, error) { return s.Tables[i].Encode() })
	e.each(l.Instruments, func(i int) ([]byte, error) { return instrument.Encode(s.Instruments[i], l) })
	e.one(l.Effects, func() ([]byte, error) { return s.Effects.Encode(l) })
	e.each(l.MidiMappings, func(i int) ([]byte, error) { return s.MidiMappings[i].Encode() })
	if l.Scales.Present() && len(s.Scales) != l.Scales.Count {
		return nil, errors.Errorf("layout %s has %d scales, song has %d", l, l.Scales.Count, len(s.Scales))
	}
	e.each(l.Scales, func(i int) ([]byte, error) { return s.Scales[i].Encode() })
	if l.EQs.Present() && len(s.EQs) != l.EQs.Count {
		return nil, errors.Errorf("layout %s has %d EQs, song has %d", l, l.EQs.Count, len(s.EQs))
	}
	e.each(l.EQs, func(i int) ([]byte, error) { return s.EQs[i].Encode() })
	if e.err != nil {
		return nil, e.err
	}
	return buf, nil
}

type encoder struct {
	buf []byte
	err error
}

func (e *encoder) each(sec layout.Section, f func(i int) ([]byte, error)) {
	for i := 0; i < sec.Count && e.err == nil; i++ {
		b, err := f(i)
		if err == nil && len(b) != sec.Stride {
			err = errors.Errorf("encoded %d bytes, section stride is %d", len(b), sec.Stride)
		}
		if err != nil {
			e.err = errors.Wrapf(err, "%s %d at 0x%X", sec.Name, i, sec.At(i))
			return
		}
		copy(e.buf[sec.At(i):], b)
	}
}

func (e *encoder) one(sec layout.Section, f func() ([]byte, error)) {
	e.each(sec, func(int) ([]byte, error) { return f() })
}

// Pack returns the instrument commands of instrument i, or the empty pack
// when i is not an instrument number.
func (s *Song) Pack(i uint8) fx.Pack {
	if int(i) < len(s.Instruments) && s.Instruments[i] != nil {
		return instrument.Pack(s.Instruments[i])
	}
	return fx.Pack{}
}

// EQ returns the EQ instrument i refers to.
func (s *Song) EQ(i int) (*settings.EQ, bool) {
	eq, ok := instrument.AssociatedEQ(s.Instruments[i])
	if !ok || len(s.EQs) <= int(eq) {
		return nil, false
	}
	return s.EQs[eq], true
}

func (s *Song) String() string {
	used := func(n int, empty func(i int) bool) int {
		c := 0
		for i := 0; i < n; i++ {
			if !empty(i) {
				c++
			}
		}
		return c
	}
	lines := []string{
		s.Header.String(),
		fmt.Sprintf("LAYOUT    %s", s.Layout),
		fmt.Sprintf("NAME      %s", s.Name),
		fmt.Sprintf("DIRECTORY %s", s.Directory),
		fmt.Sprintf("TEMPO     %.2f", s.Tempo),
		fmt.Sprintf("TRANSPOSE %02X KEY %02X QUANTIZE %02X", s.Transpose, s.Key, s.Quantize),
		fmt.Sprintf("CHAINS      %3d used", used(len(s.Chains), func(i int) bool { return s.Chains[i].IsEmpty() })),
		fmt.Sprintf("PHRASES     %3d used", used(len(s.Phrases), func(i int) bool { return s.Phrases[i].IsEmpty() })),
		fmt.Sprintf("TABLES      %3d used", used(len(s.Tables), func(i int) bool { return s.Tables[i].IsEmpty() })),
		fmt.Sprintf("INSTRUMENTS %3d used", used(len(s.Instruments), func(i int) bool { return instrument.IsEmpty(s.Instruments[i]) })),
		fmt.Sprintf("MAPPINGS    %3d used", used(len(s.MidiMappings), func(i int) bool { return s.MidiMappings[i].IsEmpty() })),
	}
	if 0 < len(s.EQs) {
		lines = append(lines, fmt.Sprintf("EQS         %3d used", used(len(s.EQs), func(i int) bool { return s.EQs[i].IsEmpty() })))
	}
	if !s.Remainder.IsEmpty() {
		lines = append(lines, fmt.Sprintf("REMAINDER   %d bytes", s.Remainder.Len()))
	}
	return strings.Join(lines, "\n")
}

package layout

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/version"
)

// Absolute section offsets of a song file.
const (
	MidiSettingsOffset = 0xA0
	MixerOffset        = 0xCE
	GroovesOffset      = 0xEE
	SongStepsOffset    = 0x2EE
	PhrasesOffset      = 0xAEE
	ChainsOffset       = 0x9A5E
	TablesOffset       = 0xBA3E
	InstrumentsOffset  = 0x13A3E
	EffectsOffset      = 0x1A5C1
	MidiMappingsOffset = 0x1A5FE
	ScalesOffset       = 0x1AA7E
	EQsOffset          = 0x1AD5E
	// InstrumentFileEQOffset is where instrument files from 4.0 on keep the EQ.
	InstrumentFileEQOffset = 0x165
)

// Layout is the complete set of tables for one firmware revision.
type Layout struct {
	Name   string          `json:"name"`
	Min    version.Version `json:"min"`
	Family enums.FXFamily  `json:"family"`

	Header       *Table  `json:"-"`
	MidiSettings Section `json:"midi_settings"`
	Mixer        Section `json:"mixer"`
	Grooves      Section `json:"grooves"`
	SongSteps    Section `json:"song_steps"`
	Phrases      Section `json:"phrases"`
	Chains       Section `json:"chains"`
	Tables       Section `json:"tables"`
	Instruments  Section `json:"instruments"`
	Effects      Section `json:"effects"`
	MidiMappings Section `json:"midi_mappings"`
	Scales       Section `json:"scales"`
	EQs          Section `json:"eqs"`

	// Instrument tables by type byte. Tags missing here decode as None.
	InstrumentTables map[enums.InstrumentKind]*Table `json:"-"`
	// Offset of the EQ in an instrument file, or 0 when there is none.
	InstrumentFileEQ int `json:"instrument_file_eq,omitempty"`
}

func (l *Layout) String() string {
	return l.Name
}

// Sections lists the song sections in decode order.
func (l *Layout) Sections() []Section {
	all := []Section{
		l.MidiSettings,
		l.Mixer,
		l.Grooves,
		l.SongSteps,
		l.Phrases,
		l.Chains,
		l.Tables,
		l.Instruments,
		l.Effects,
		l.MidiMappings,
		l.Scales,
		l.EQs,
	}
	result := all[:0]
	for _, s := range all {
		if s.Present() {
			result = append(result, s)
		}
	}
	return result
}

// MinSongSize is the smallest song file holding every section.
func (l *Layout) MinSongSize() int {
	n := l.Header.Size
	for _, s := range l.Sections() {
		if n < s.End() {
			n = s.End()
		}
	}
	return n
}

// InstrumentTable returns the table of a type byte, or NoneTable with ok
// false when the revision does not know the tag.
func (l *Layout) InstrumentTable(kind enums.InstrumentKind) (*Table, bool) {
	if t, ok := l.InstrumentTables[kind]; ok {
		return t, true
	}
	return NoneTable, kind == enums.InstrumentKind_None
}

type layoutParams struct {
	name    string
	min     version.Version
	gen     instrumentGen
	effects *Table
	scales  bool
	eqCount int
	fileEQ  bool
}

func build(s layoutParams) *Layout {
	l := &Layout{
		Name:             s.name,
		Min:              s.min,
		Family:           enums.FXFamilyOf(s.min.Major),
		Header:           SongHeaderTable,
		MidiSettings:     section("midi_settings", MidiSettingsOffset, 1, MidiSettingsTable),
		Mixer:            section("mixer", MixerOffset, 1, MixerTable),
		Grooves:          section("grooves", GroovesOffset, NumGrooves, GrooveTable),
		SongSteps:        section("song", SongStepsOffset, 1, SongStepsTable),
		Phrases:          section("phrases", PhrasesOffset, NumPhrases, PhraseTable),
		Chains:           section("chains", ChainsOffset, NumChains, ChainTable),
		Tables:           section("tables", TablesOffset, NumTables, TableTable),
		Instruments:      section("instruments", InstrumentsOffset, NumInstruments, NoneTable),
		Effects:          section("effects", EffectsOffset, 1, s.effects),
		MidiMappings:     section("midi_mappings", MidiMappingsOffset, NumMidiMappings, MidiMappingTable),
		InstrumentTables: instrumentTables(s.gen),
	}
	if s.scales {
		l.Scales = section("scales", ScalesOffset, NumScales, ScaleTable)
	}
	if 0 < s.eqCount {
		l.EQs = section("eqs", EQsOffset, s.eqCount, EQTable)
	}
	if s.fileEQ {
		l.InstrumentFileEQ = InstrumentFileEQOffset
	}
	return l
}

var (
	V2_0 = build(layoutParams{
		name:    "2.0",
		min:     version.New(2, 0, 0),
		gen:     instrumentGen{inlineMods: true},
		effects: EffectsV2Table,
	})
	V2_5 = build(layoutParams{
		name:    "2.5",
		min:     version.New(2, 5, 0),
		gen:     instrumentGen{inlineMods: true},
		effects: EffectsV2Table,
		scales:  true,
	})
	V3_0 = build(layoutParams{
		name:    "3.0",
		min:     version.New(3, 0, 0),
		gen:     instrumentGen{hyper: true},
		effects: EffectsV2Table,
		scales:  true,
	})
	V4_0 = build(layoutParams{
		name:    "4.0",
		min:     version.New(4, 0, 0),
		gen:     instrumentGen{hyper: true, eqInBits: true},
		effects: EffectsV4Table,
		scales:  true,
		eqCount: 32,
		fileEQ:  true,
	})
	// V4_0EQ128 is a 4.0 layout with the 128 instrument EQs of 4.1. Only
	// ExtendedEQ or an explicit choice selects it.
	V4_0EQ128 = build(layoutParams{
		name:    "4.0+eq128",
		min:     version.New(4, 0, 0),
		gen:     instrumentGen{hyper: true, eqInBits: true},
		effects: EffectsV4Table,
		scales:  true,
		eqCount: 128,
		fileEQ:  true,
	})
	V4_1 = build(layoutParams{
		name:    "4.1",
		min:     version.New(4, 1, 0),
		gen:     instrumentGen{hyper: true, eqInByte: true},
		effects: EffectsV4Table,
		scales:  true,
		eqCount: 128,
		fileEQ:  true,
	})
)

// registry is ordered by Min.
var registry = []*Layout{V2_0, V2_5, V3_0, V4_0, V4_1}

// Supported major versions.
const (
	MinMajor = 2
	MaxMajor = 4
)

// All returns every layout, including discriminator-only ones.
func All() []*Layout {
	return []*Layout{V2_0, V2_5, V3_0, V4_0, V4_0EQ128, V4_1}
}

// Lookup selects the layout introduced last at or before v.
func Lookup(v version.Version) (*Layout, error) {
	if v.Major < MinMajor || MaxMajor < v.Major {
		return nil, errs.New(errs.Kind_UnsupportedVersion, 0x0A, "no layout for version %s", v)
	}
	var found *Layout
	for _, l := range registry {
		if l.Min.Compare(v) <= 0 {
			found = l
		}
	}
	if found == nil {
		return nil, errs.New(errs.Kind_UnsupportedVersion, 0x0A, "no layout for version %s", v)
	}
	return found, nil
}

// ByName finds a layout by its name, e.g. "4.0+eq128".
func ByName(name string) (*Layout, error) {
	var names []string
	for _, l := range All() {
		if l.Name == name {
			return l, nil
		}
		names = append(names, l.Name)
	}
	return nil, errs.New(errs.Kind_UnsupportedVersion, -1, "unknown layout %q (known: %s)", name, strings.Join(names, ", "))
}

// Describe prints the section map of a layout.
func (l *Layout) Describe() string {
	s := []string{fmt.Sprintf("layout %s from %s, FX family %s", l.Name, l.Min, l.Family)}
	for _, sec := range l.Sections() {
		s = append(s, fmt.Sprintf("  %-14s 0x%05X-0x%05X %3d x %d", sec.Name, sec.Offset, sec.End(), sec.Count, sec.Stride))
	}
	s = append(s, fmt.Sprintf("  minimum song size 0x%X", l.MinSongSize()))
	return strings.Join(s, "\n")
}

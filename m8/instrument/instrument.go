package instrument

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/fx"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/util"
)

// NoEQ is the associated EQ number of an instrument without one.
const NoEQ = 0xFF

// Instrument is one of the variants of an instrument slot.
type Instrument interface {
	fmt.Stringer
	// Kind returns the variant. Unknown tags report InstrumentKind_None.
	Kind() enums.InstrumentKind
	// Common returns the shared header, or nil for an empty slot.
	Common() *Header
	// Modulators returns the modulator slots, or nil when there are none.
	Modulators() *[layout.NumMods]Modulator
	// Params lists the variant-specific parameters.
	Params() []Param
	raw() *codec.Remainder
}

//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
// +0  |             TYPE              |
// +1  |          NAME (12)            |
// +13 |                           |TSP|
// +14 |          TABLE TICK           |
type Header struct {
	Type      enums.InstrumentKind `json:"type"`
	Name      string               `json:"name"`
	Transpose bool                 `json:"transpose"`
	TableTick uint8                `json:"table_tick"`
}

func (h *Header) Common() *Header {
	return h
}

// Modulator is one of the four modulation sources of an instrument.
type Modulator struct {
	Type   enums.ModType `json:"type"`
	Dest   uint8         `json:"dest"`
	Amount uint8         `json:"amount"`
	Params [4]uint8      `json:"params"`
}

func (m Modulator) Format(kind enums.InstrumentKind) string {
	s := []string{
		fmt.Sprintf("%-8s", m.Type.Name()),
		"DEST " + enums.Destinations(kind).Label(m.Dest),
		fmt.Sprintf("AMT %02X", m.Amount),
	}
	for i, n := range m.Type.ParamNames() {
		s = append(s, n+" "+m.Type.ParamDomain(i).Label(m.Params[i]))
	}
	return strings.Join(s, " ")
}

// SynthParams are the parameters shared by every sound-producing variant.
type SynthParams struct {
	Volume       uint8 `json:"volume"`
	Pitch        uint8 `json:"pitch"`
	FineTune     uint8 `json:"fine_tune"`
	FilterType   uint8 `json:"filter_type"`
	Cutoff       uint8 `json:"cutoff"`
	Resonance    uint8 `json:"resonance"`
	Amp          uint8 `json:"amp"`
	Limit        uint8 `json:"limit"`
	Pan          uint8 `json:"pan"`
	Dry          uint8 `json:"dry"`
	Chorus       uint8 `json:"chorus"`
	Delay        uint8 `json:"delay"`
	Reverb       uint8 `json:"reverb"`
	AssociatedEQ uint8 `json:"associated_eq"`

	Mods [layout.NumMods]Modulator `json:"mods"`
}

func (p *SynthParams) Modulators() *[layout.NumMods]Modulator {
	return &p.Mods
}

func defaultSynthParams() SynthParams {
	return SynthParams{
		FineTune:     0x80,
		Cutoff:       0xFF,
		Pan:          0x80,
		Dry:          0xC0,
		AssociatedEQ: NoEQ,
		Mods:         defaultMods(),
	}
}

func defaultMods() [layout.NumMods]Modulator {
	return [layout.NumMods]Modulator{
		{Type: enums.ModType_AHD, Amount: 0xFF, Params: [4]uint8{0, 0, 0x80, 0}},
		{Type: enums.ModType_AHD, Amount: 0xFF, Params: [4]uint8{0, 0, 0x80, 0}},
		{Type: enums.ModType_LFO, Amount: 0xFF, Params: [4]uint8{0, 0, 0x10, 0}},
		{Type: enums.ModType_LFO, Amount: 0xFF, Params: [4]uint8{0, 0, 0x10, 0}},
	}
}

func (p *SynthParams) format(kind enums.InstrumentKind) string {
	return fmt.Sprintf(
		"VOL %02X PIT %02X FIN %02X\n"+
			"FILTER %s CUT %02X RES %02X\n"+
			"AMP %02X LIM %s PAN %02X DRY %02X\n"+
			"CHO %02X DEL %02X REV %02X",
		p.Volume, p.Pitch, p.FineTune,
		enums.FilterTypesOf(kind).Label(p.FilterType), p.Cutoff, p.Resonance,
		p.Amp, enums.LimitTypes.Label(p.Limit), p.Pan, p.Dry,
		p.Chorus, p.Delay, p.Reverb,
	)
}

// Param is a named variant parameter, labelled through its domain if any.
type Param struct {
	Name   string
	Value  uint8
	Domain *enums.Domain
}

func (p Param) String() string {
	if p.Domain != nil {
		return p.Name + " " + p.Domain.Label(p.Value)
	}
	return fmt.Sprintf("%s %02X", p.Name, p.Value)
}

func formatParams(params []Param) string {
	s := make([]string, len(params))
	for i, p := range params {
		s[i] = p.String()
	}
	return strings.Join(s, " ")
}

type eqParams interface {
	associatedEQ() uint8
	setAssociatedEQ(uint8)
}

// AssociatedEQ returns the EQ number of inst, if it has one.
func AssociatedEQ(inst Instrument) (uint8, bool) {
	if p, ok := inst.(eqParams); ok {
		if eq := p.associatedEQ(); eq != NoEQ {
			return eq, true
		}
	}
	return NoEQ, false
}

// SetAssociatedEQ changes the EQ number. It does nothing for variants without one.
func SetAssociatedEQ(inst Instrument, eq uint8) {
	if p, ok := inst.(eqParams); ok {
		p.setAssociatedEQ(eq)
	}
}

// Synth returns the synth parameters of inst, if it has them.
func Synth(inst Instrument) (*SynthParams, bool) {
	if p, ok := inst.(interface{ synthParams() *SynthParams }); ok {
		return p.synthParams(), true
	}
	return nil, false
}

func (p *SynthParams) synthParams() *SynthParams { return p }

func (p *SynthParams) associatedEQ() uint8 {
	return p.AssociatedEQ
}

func (p *SynthParams) setAssociatedEQ(eq uint8) {
	p.AssociatedEQ = eq
}

// Pack returns the FX commands the instrument makes available.
func Pack(inst Instrument) fx.Pack {
	var types [layout.NumMods]enums.ModType
	if mods := inst.Modulators(); mods != nil {
		for i, m := range mods {
			types[i] = m.Type
		}
	}
	return fx.NewPack(inst.Kind(), types)
}

// IsEmpty tells whether inst is an empty slot.
func IsEmpty(inst Instrument) bool {
	return inst == nil || inst.Kind() == enums.InstrumentKind_None
}

// Remainder returns the bytes of inst that no field accounts for.
func Remainder(inst Instrument) codec.Remainder {
	return *inst.raw()
}

// New returns an instrument of kind with the firmware's default values.
func New(kind enums.InstrumentKind) Instrument {
	h := Header{Type: kind}
	switch kind {
	case enums.InstrumentKind_WavSynth:
		return &WavSynth{Header: h, SynthParams: defaultSynthParams(), Size: 0x20, Mult: 0x80}
	case enums.InstrumentKind_MacroSynth:
		return &MacroSynth{Header: h, SynthParams: defaultSynthParams(), Timbre: 0x80, Color: 0x80}
	case enums.InstrumentKind_Sampler:
		return &Sampler{Header: h, SynthParams: defaultSynthParams(), Length: 0xFF}
	case enums.InstrumentKind_MIDIOut:
		inst := &MIDIOut{Header: h, BankSelect: 0xFF, ProgramChange: 0xFF, Mods: defaultMods()}
		for i := range inst.CC {
			inst.CC[i] = ControlChange{Number: 0xFF, Value: 0xFF}
		}
		return inst
	case enums.InstrumentKind_FMSynth:
		inst := &FMSynth{Header: h, SynthParams: defaultSynthParams()}
		for i := range inst.Operators {
			inst.Operators[i].Ratio = 0x08
		}
		return inst
	case enums.InstrumentKind_HyperSynth:
		inst := &HyperSynth{Header: h, SynthParams: defaultSynthParams()}
		for i := range inst.DefaultChord {
			inst.DefaultChord[i] = 0xFF
		}
		return inst
	case enums.InstrumentKind_External:
		inst := &External{Header: h, SynthParams: defaultSynthParams(), Bank: 0xFF, Program: 0xFF}
		for i := range inst.CC {
			inst.CC[i] = ControlChange{Number: 0xFF, Value: 0xFF}
		}
		return inst
	}
	return NewNone()
}

func blank(kind enums.InstrumentKind) Instrument {
	switch kind {
	case enums.InstrumentKind_WavSynth:
		return &WavSynth{}
	case enums.InstrumentKind_MacroSynth:
		return &MacroSynth{}
	case enums.InstrumentKind_Sampler:
		return &Sampler{}
	case enums.InstrumentKind_MIDIOut:
		return &MIDIOut{}
	case enums.InstrumentKind_FMSynth:
		return &FMSynth{}
	case enums.InstrumentKind_HyperSynth:
		return &HyperSynth{}
	case enums.InstrumentKind_External:
		return &External{}
	}
	return &None{}
}

// Decode reads one instrument from the layout.InstrumentSize bytes under c.
// A type byte the layout does not know yields a None holding the raw bytes.
func Decode(c *cursor.Cursor, l *layout.Layout, diags *codec.Diagnostics) (Instrument, error) {
	if c.Len() < layout.InstrumentSize {
		return nil, errs.New(errs.Kind_Truncated, c.Base()+c.Len(), "instrument needs %d bytes, span has %d", layout.InstrumentSize, c.Len())
	}
	tag := c.Bytes()[0]
	kind := enums.InstrumentKind(tag)
	table, ok := l.InstrumentTable(kind)
	if !ok {
		diags.Add(errs.Kind_UnknownCode, c.Base(), "instrument type 0x%02X is unknown to layout %s", tag, l)
		kind = enums.InstrumentKind_None
	}
	inst := blank(kind)
	rem, err := codec.Decode(c, table, inst, diags)
	if err != nil {
		return nil, err
	}
	*inst.raw() = rem
	log.Debugf("instrument at 0x%X: %s %q", c.Base(), inst.Kind().Name(), name(inst))
	return inst, nil
}

// Encode writes inst in the layout's format.
func Encode(inst Instrument, l *layout.Layout) ([]byte, error) {
	table := layout.NoneTable
	if kind := inst.Kind(); kind != enums.InstrumentKind_None {
		t, ok := l.InstrumentTable(kind)
		if !ok {
			return nil, errs.New(errs.Kind_UnsupportedVersion, -1, "%s does not exist in layout %s", kind.Name(), l)
		}
		table = t
	}
	return codec.Encode(table, inst, *inst.raw())
}

func name(inst Instrument) string {
	if h := inst.Common(); h != nil {
		return h.Name
	}
	return ""
}

func format(inst Instrument, body ...string) string {
	h := inst.Common()
	s := []string{fmt.Sprintf("%s %q TRANSP %s TBL.TIC %02X", h.Type.Name(), h.Name, onOff(h.Transpose), h.TableTick)}
	s = append(s, body...)
	if mods := inst.Modulators(); mods != nil {
		for i, m := range mods {
			s = append(s, fmt.Sprintf("MOD%d %s", i+1, m.Format(h.Type)))
		}
	}
	if r := inst.raw(); !r.IsEmpty() {
		s = append(s, fmt.Sprintf("%d raw bytes kept", r.Len()))
	}
	return s[0] + "\n" + util.Indent(strings.Join(s[1:], "\n"), "\t")
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

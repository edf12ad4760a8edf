package instrument

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/util"
)

type WavSynth struct {
	Header
	SynthParams
	Shape uint8 `json:"shape"`
	Size  uint8 `json:"size"`
	Mult  uint8 `json:"mult"`
	Warp  uint8 `json:"warp"`
	Scan  uint8 `json:"scan"`

	Remainder codec.Remainder `json:"-"`
}

func (i *WavSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_WavSynth }
func (i *WavSynth) raw() *codec.Remainder { return &i.Remainder }

func (i *WavSynth) Params() []Param {
	return []Param{
		{"SHAPE", i.Shape, enums.WavShapes},
		{"SIZE", i.Size, nil},
		{"MULT", i.Mult, nil},
		{"WARP", i.Warp, nil},
		{"SCAN", i.Scan, nil},
	}
}

func (i *WavSynth) String() string {
	return format(i, formatParams(i.Params()), i.SynthParams.format(i.Kind()))
}

type MacroSynth struct {
	Header
	SynthParams
	Shape   uint8 `json:"shape"`
	Timbre  uint8 `json:"timbre"`
	Color   uint8 `json:"color"`
	Degrade uint8 `json:"degrade"`
	Redux   uint8 `json:"redux"`

	Remainder codec.Remainder `json:"-"`
}

func (i *MacroSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_MacroSynth }
func (i *MacroSynth) raw() *codec.Remainder { return &i.Remainder }

func (i *MacroSynth) Params() []Param {
	return []Param{
		{"SHAPE", i.Shape, enums.MacroOscs},
		{"TIMBRE", i.Timbre, nil},
		{"COLOR", i.Color, nil},
		{"DEGRADE", i.Degrade, nil},
		{"REDUX", i.Redux, nil},
	}
}

func (i *MacroSynth) String() string {
	return format(i, formatParams(i.Params()), i.SynthParams.format(i.Kind()))
}

type Sampler struct {
	Header
	SynthParams
	PlayMode   uint8  `json:"play_mode"`
	Slice      uint8  `json:"slice"`
	Start      uint8  `json:"start"`
	LoopStart  uint8  `json:"loop_start"`
	Length     uint8  `json:"length"`
	Degrade    uint8  `json:"degrade"`
	SamplePath string `json:"sample_path"`

	Remainder codec.Remainder `json:"-"`
}

func (i *Sampler) Kind() enums.InstrumentKind { return enums.InstrumentKind_Sampler }
func (i *Sampler) raw() *codec.Remainder { return &i.Remainder }

func (i *Sampler) Params() []Param {
	return []Param{
		{"PLAY", i.PlayMode, enums.PlayModes},
		{"SLICE", i.Slice, nil},
		{"START", i.Start, nil},
		{"LOOP ST", i.LoopStart, nil},
		{"LENGTH", i.Length, nil},
		{"DEGRADE", i.Degrade, nil},
	}
}

func (i *Sampler) String() string {
	return format(i, "SAMPLE "+i.SamplePath, formatParams(i.Params()), i.SynthParams.format(i.Kind()))
}

// Operator is one of the four FM operators.
type Operator struct {
	Shape     uint8 `json:"shape"`
	Ratio     uint8 `json:"ratio"`
	RatioFine uint8 `json:"ratio_fine"`
	Level     uint8 `json:"level"`
	Feedback  uint8 `json:"feedback"`
	ModA      uint8 `json:"mod_a"`
	ModB      uint8 `json:"mod_b"`
}

type FMSynth struct {
	Header
	SynthParams
	Algo      uint8       `json:"algo"`
	Operators [4]Operator `json:"operators"`
	OpMods    [4]uint8    `json:"op_mods"`

	Remainder codec.Remainder `json:"-"`
}

func (i *FMSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_FMSynth }
func (i *FMSynth) raw() *codec.Remainder { return &i.Remainder }

func (i *FMSynth) Params() []Param {
	params := []Param{{"ALGO", i.Algo, enums.FMAlgos}}
	for n, op := range i.Operators {
		p := fmt.Sprintf("OP%c ", 'A'+n)
		params = append(params,
			Param{p + "SHAPE", op.Shape, enums.FMWaves},
			Param{p + "RATIO", op.Ratio, nil},
			Param{p + "FINE", op.RatioFine, nil},
			Param{p + "LEVEL", op.Level, nil},
			Param{p + "FBK", op.Feedback, nil},
			Param{p + "MOD A", op.ModA, nil},
			Param{p + "MOD B", op.ModB, nil},
		)
	}
	for n, m := range i.OpMods {
		params = append(params, Param{fmt.Sprintf("MOD%d", n+1), m, nil})
	}
	return params
}

func (i *FMSynth) String() string {
	ops := make([]string, len(i.Operators))
	for n, op := range i.Operators {
		ops[n] = fmt.Sprintf("OP%c %-8s RATIO %02X.%02X LEV/FB %02X/%02X MOD %02X %02X",
			'A'+n, enums.FMWaves.Label(op.Shape), op.Ratio, op.RatioFine, op.Level, op.Feedback, op.ModA, op.ModB)
	}
	return format(i,
		"ALGO "+enums.FMAlgos.Label(i.Algo),
		strings.Join(ops, "\n"),
		"OP MODS "+util.Hex(i.OpMods[:]),
		i.SynthParams.format(i.Kind()),
	)
}

// ControlChange is a CC number and its default value.
type ControlChange struct {
	Number uint8 `json:"number"`
	Value  uint8 `json:"value"`
}

type MIDIOut struct {
	Header
	Port          uint8             `json:"port"`
	Channel       uint8             `json:"channel"`
	BankSelect    uint8             `json:"bank_select"`
	ProgramChange uint8             `json:"program_change"`
	CC            [10]ControlChange `json:"cc"`

	Mods [layout.NumMods]Modulator `json:"mods"`

	Remainder codec.Remainder `json:"-"`
}

func (i *MIDIOut) Kind() enums.InstrumentKind { return enums.InstrumentKind_MIDIOut }
func (i *MIDIOut) raw() *codec.Remainder { return &i.Remainder }

func (i *MIDIOut) Modulators() *[layout.NumMods]Modulator {
	return &i.Mods
}

func (i *MIDIOut) Params() []Param {
	params := []Param{
		{"PORT", i.Port, enums.MIDIPorts},
		{"CHANNEL", i.Channel, nil},
		{"BANK", i.BankSelect, nil},
		{"PROGRAM", i.ProgramChange, nil},
	}
	for n, cc := range i.CC {
		c := string(rune('A' + n))
		params = append(params, Param{"CC" + c + " NUM", cc.Number, nil}, Param{"CC" + c + " VAL", cc.Value, nil})
	}
	return params
}

func (i *MIDIOut) String() string {
	return format(i, formatParams(i.Params()[:4]), formatCC(i.CC[:]))
}

func formatCC(ccs []ControlChange) string {
	s := make([]string, len(ccs))
	for n, cc := range ccs {
		s[n] = fmt.Sprintf("CC%c %s:%s", 'A'+n, util.HexOr(cc.Number, "--"), util.HexOr(cc.Value, "--"))
	}
	return strings.Join(s, " ")
}

type HyperSynth struct {
	Header
	SynthParams
	DefaultChord [7]uint8     `json:"default_chord"`
	Scale        uint8        `json:"scale"`
	Shift        uint8        `json:"shift"`
	Swarm        uint8        `json:"swarm"`
	Width        uint8        `json:"width"`
	SubOsc       uint8        `json:"sub_osc"`
	Chords       [16][6]uint8 `json:"chords"`

	Remainder codec.Remainder `json:"-"`
}

func (i *HyperSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_HyperSynth }
func (i *HyperSynth) raw() *codec.Remainder { return &i.Remainder }

func (i *HyperSynth) Params() []Param {
	return []Param{
		{"SCALE", i.Scale, nil},
		{"SHIFT", i.Shift, nil},
		{"SWARM", i.Swarm, nil},
		{"WIDTH", i.Width, nil},
		{"SUBOSC", i.SubOsc, nil},
	}
}

func (i *HyperSynth) String() string {
	chords := make([]string, len(i.Chords))
	for n, c := range i.Chords {
		chords[n] = fmt.Sprintf("CHORD %X %s", n, util.Hex(c[:]))
	}
	return format(i,
		"DEFAULT CHORD "+util.Hex(i.DefaultChord[:]),
		formatParams(i.Params()),
		strings.Join(chords, "\n"),
		i.SynthParams.format(i.Kind()),
	)
}

type External struct {
	Header
	SynthParams
	Input   uint8            `json:"input"`
	Port    uint8            `json:"port"`
	Channel uint8            `json:"channel"`
	Bank    uint8            `json:"bank"`
	Program uint8            `json:"program"`
	CC      [4]ControlChange `json:"cc"`

	Remainder codec.Remainder `json:"-"`
}

func (i *External) Kind() enums.InstrumentKind { return enums.InstrumentKind_External }
func (i *External) raw() *codec.Remainder { return &i.Remainder }

func (i *External) Params() []Param {
	params := []Param{
		{"INPUT", i.Input, nil},
		{"PORT", i.Port, enums.ExternalPorts},
		{"CHANNEL", i.Channel, nil},
		{"BANK", i.Bank, nil},
		{"PROGRAM", i.Program, nil},
	}
	for n, cc := range i.CC {
		c := string(rune('A' + n))
		params = append(params, Param{"CC" + c + " NUM", cc.Number, nil}, Param{"CC" + c + " VAL", cc.Value, nil})
	}
	return params
}

func (i *External) String() string {
	return format(i, formatParams(i.Params()[:5]), formatCC(i.CC[:]), i.SynthParams.format(i.Kind()))
}

// None is an empty slot, or a type byte the layout does not know.
type None struct {
	// Tag is the raw type byte, 0xFF for an empty slot.
	Tag uint8 `json:"tag"`

	Remainder codec.Remainder `json:"-"`
}

// NewNone returns an empty slot.
func NewNone() *None {
	return &None{Tag: uint8(enums.InstrumentKind_None)}
}

func (i *None) Kind() enums.InstrumentKind { return enums.InstrumentKind_None }
func (i *None) Common() *Header { return nil }
func (i *None) Modulators() *[layout.NumMods]Modulator { return nil }
func (i *None) Params() []Param { return nil }
func (i *None) raw() *codec.Remainder { return &i.Remainder }

func (i *None) String() string {
	if i.Tag == uint8(enums.InstrumentKind_None) {
		return "NONE"
	}
	return fmt.Sprintf("NONE (unknown type 0x%02X, %d raw bytes kept)", i.Tag, i.Remainder.Len())
}

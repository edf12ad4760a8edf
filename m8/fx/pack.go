package fx

import (
	"fmt"

	"github.com/but80/m8kit/m8/enums"
)

// Instrument command codes start at InstrumentBase. The first BaseCount
// belong to the instrument, then ModCount per modulator slot, then the
// instrument's extra commands.
const (
	InstrumentBase = 0x80
	BaseCount      = 18
	ModCount       = 5
	ModSlots       = 4
)

var instrumentCommands = map[enums.InstrumentKind][]string{
	enums.InstrumentKind_WavSynth: {
		"VOL", "PIT", "FIN", "OSC", "SIZ", "MUL", "WRP", "MIR", "FIL",
		"CUT", "RES", "AMP", "LIM", "PAN", "DRY", "SCH", "SDL", "SRV",
	},
	enums.InstrumentKind_MacroSynth: {
		"VOL", "PIT", "FIN", "OSC", "TBR", "COL", "DEG", "RED", "FIL",
		"CUT", "RES", "AMP", "LIM", "PAN", "DRY", "SCH", "SDL", "SRV",
		"TRG",
	},
	enums.InstrumentKind_Sampler: {
		"VOL", "PIT", "FIN", "PLY", "STA", "LOP", "LEN", "DEG", "FLT",
		"CUT", "RES", "AMP", "LIM", "PAN", "DRY", "SCH", "SDL", "SRV",
		"SLI",
	},
	enums.InstrumentKind_FMSynth: {
		"VOL", "PIT", "FIN", "ALG", "FM1", "FM2", "FM3", "FM4", "FLT",
		"CUT", "RES", "AMP", "LIM", "PAN", "DRY", "SCH", "SDL", "SRV",
		"FMP",
	},
	enums.InstrumentKind_MIDIOut: {
		"VOL", "PIT", "MPG", "MPB", "ADD", "CHD", "CCA", "CCB",
		"CCC", "CCD", "CCE", "CCF", "CCG", "CCH", "CCI", "CCJ",
	},
	enums.InstrumentKind_HyperSynth: {
		"VOL", "PIT", "FIN", "CRD", "SHF", "SWM", "WID", "SUB", "FLT",
		"CUT", "RES", "AMP", "LIM", "PAN", "DRY", "SCH", "SDL", "SRV",
		"CVO", "SNC",
	},
	enums.InstrumentKind_External: {
		"VOL", "PIT", "MPB", "MPG", "CCA", "CCB", "CCC", "CCD", "FLT",
		"CUT", "RES", "AMP", "LIM", "PAN", "DRY", "SCH", "SDL", "SRV",
		"ADD", "CHD",
	},
}

var modCommandStems = map[enums.ModType][]string{
	enums.ModType_AHD:      {"EA", "AT", "HO", "DE", "ET"},
	enums.ModType_ADSR:     {"EA", "AT", "DE", "SU", "ET"},
	enums.ModType_Drum:     {"EA", "PK", "BO", "DE", "ET"},
	enums.ModType_LFO:      {"LA", "LO", "LS", "LF", "LT"},
	enums.ModType_Trig:     {"EA", "AT", "HO", "SU", "ET"},
	enums.ModType_Tracking: {"TA", "TS", "TL", "TH", "TX"},
}

// InstrumentCommands returns the command names of an instrument kind.
func InstrumentCommands(kind enums.InstrumentKind) []string {
	return instrumentCommands[kind]
}

// ModCommands returns the five commands of a modulator in slot (0-3).
func ModCommands(t enums.ModType, slot int) []string {
	stems := modCommandStems[t]
	if stems == nil {
		return nil
	}
	result := make([]string, len(stems))
	for i, s := range stems {
		result[i] = fmt.Sprintf("%s%d", s, slot+1)
	}
	return result
}

// Pack holds the instrument commands in effect for a step.
// The zero Pack belongs to an empty instrument and names nothing.
type Pack struct {
	Kind  enums.InstrumentKind
	Instr []string
	Mods  [ModSlots][]string
	// ModTypes is kept to attach LFO parameter domains.
	ModTypes [ModSlots]enums.ModType
}

// NewPack builds the pack of an instrument kind with the given modulator types.
func NewPack(kind enums.InstrumentKind, mods [ModSlots]enums.ModType) Pack {
	p := Pack{Kind: kind, Instr: InstrumentCommands(kind), ModTypes: mods}
	if p.Instr == nil {
		return Pack{Kind: kind}
	}
	for i, t := range mods {
		p.Mods[i] = ModCommands(t, i)
	}
	return p
}

// Accepts tells whether code falls in the instrument command range. The
// modulator commands always follow BaseCount slots, even for instruments
// with fewer base commands.
func (p Pack) Accepts(code uint8) bool {
	n := len(p.Instr)
	if 0 < n && n < BaseCount {
		n = BaseCount
	}
	c := int(code)
	return InstrumentBase <= c && c <= InstrumentBase+ModCount*ModSlots+n
}

// Lookup names an instrument command code. It returns the mod slot the
// command belongs to, or -1.
func (p Pack) Lookup(code uint8) (string, int, bool) {
	if len(p.Instr) == 0 || int(code) < InstrumentBase {
		return "", -1, false
	}
	c := int(code) - InstrumentBase
	if c < BaseCount {
		if c < len(p.Instr) {
			return p.Instr[c], -1, true
		}
		return "", -1, false
	}
	m := c - BaseCount
	if slot := m / ModCount; slot < ModSlots {
		names := p.Mods[slot]
		if i := m % ModCount; i < len(names) {
			return names[i], slot, true
		}
		return "", slot, false
	}
	if extra := c - ModCount*ModSlots; extra < len(p.Instr) {
		return p.Instr[extra], -1, true
	}
	return "", -1, false
}

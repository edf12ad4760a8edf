package enums

import (
	"encoding/json"
	"fmt"
)

// InstrumentKind is the type byte at offset 0 of an instrument.
type InstrumentKind int

const (
	InstrumentKind_WavSynth   InstrumentKind = 0x00
	InstrumentKind_MacroSynth InstrumentKind = 0x01
	InstrumentKind_Sampler    InstrumentKind = 0x02
	InstrumentKind_MIDIOut    InstrumentKind = 0x03
	InstrumentKind_FMSynth    InstrumentKind = 0x04
	InstrumentKind_HyperSynth InstrumentKind = 0x05
	InstrumentKind_External   InstrumentKind = 0x06
	InstrumentKind_None       InstrumentKind = 0xFF
)

// InstrumentKinds lists every variant that carries parameters.
var InstrumentKinds = []InstrumentKind{
	InstrumentKind_WavSynth,
	InstrumentKind_MacroSynth,
	InstrumentKind_Sampler,
	InstrumentKind_MIDIOut,
	InstrumentKind_FMSynth,
	InstrumentKind_HyperSynth,
	InstrumentKind_External,
}

func (k InstrumentKind) Name() string {
	switch k {
	case InstrumentKind_WavSynth:
		return "WAVSYNTH"
	case InstrumentKind_MacroSynth:
		return "MACROSYN"
	case InstrumentKind_Sampler:
		return "SAMPLER"
	case InstrumentKind_MIDIOut:
		return "MIDI OUT"
	case InstrumentKind_FMSynth:
		return "FMSYNTH"
	case InstrumentKind_HyperSynth:
		return "HYPERSYN"
	case InstrumentKind_External:
		return "EXTERNAL"
	case InstrumentKind_None:
		return "NONE"
	}
	return "unknown"
}

func (k InstrumentKind) String() string {
	return fmt.Sprintf("%s(0x%02X)", k.Name(), int(k))
}

func (k InstrumentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Name())
}

// Since returns the first major version where the kind exists.
func (k InstrumentKind) Since() uint8 {
	switch k {
	case InstrumentKind_HyperSynth, InstrumentKind_External:
		return 3
	}
	return 0
}

// ModType is the high nibble of a modulator's first byte.
type ModType int

const (
	ModType_AHD ModType = iota
	ModType_ADSR
	ModType_Drum
	ModType_LFO
	ModType_Trig
	ModType_Tracking
)

var modTypeNames = []string{"AHD ENV", "ADSR ENV", "DRUM ENV", "LFO", "TRIG ENV", "TRACKING"}

// modParamNames lists the parameter labels after DEST and AMT.
var modParamNames = [][]string{
	{"ATK", "HOLD", "DEC"},
	{"ATK", "DEC", "SUS", "REL"},
	{"PEAK", "BODY", "DEC"},
	{"OSC", "TRIG", "FREQ", "RETRIG"},
	{"ATK", "HOLD", "DEC", "SRC"},
	{"SRC", "LVAL", "HVAL"},
}

func (t ModType) Name() string {
	if 0 <= t && int(t) < len(modTypeNames) {
		return modTypeNames[t]
	}
	return fmt.Sprintf("MOD %X", int(t))
}

func (t ModType) String() string {
	return name(modTypeNames, int(t))
}

func (t ModType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name())
}

func (t ModType) Known() bool {
	return 0 <= t && int(t) < len(modTypeNames)
}

// ParamNames returns the labels of the parameter bytes following the amount.
func (t ModType) ParamNames() []string {
	if t.Known() {
		return modParamNames[t]
	}
	return nil
}

// ParamDomain returns the value table of the i-th parameter, or nil for raw values.
func (t ModType) ParamDomain(i int) *Domain {
	if t == ModType_LFO {
		switch i {
		case 0:
			return LFOShapes
		case 1:
			return LFOTriggers
		}
	}
	return nil
}

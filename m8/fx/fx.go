package fx

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/enums"
)

// Empty is the command byte of an unused FX slot.
const Empty = 0xFF

// FX is one (command, value) pair of a phrase or table step.
type FX struct {
	Command uint8 `json:"command"`
	Value   uint8 `json:"value"`
}

// EmptyFX is the content of an unused slot.
var EmptyFX = FX{Command: Empty}

func (f FX) IsEmpty() bool {
	return f.Command == Empty
}

// Format renders the slot the way the tracker screens do: "---  " when
// empty, otherwise the command name followed by the value in hex.
func (f FX) Format(family enums.FXFamily, pack Pack) string {
	if f.IsEmpty() {
		return "---  "
	}
	return fmt.Sprintf("%s%02x", Interpret(family, pack, f.Command).Name, f.Value)
}

// CommandKind classifies a command code.
type CommandKind int

const (
	CommandKind_Empty CommandKind = iota
	CommandKind_Sequencer
	CommandKind_Mixer
	CommandKind_Instrument
	CommandKind_Modulator
	CommandKind_Unknown
)

func (k CommandKind) String() string {
	switch k {
	case CommandKind_Empty:
		return "empty"
	case CommandKind_Sequencer:
		return "sequencer"
	case CommandKind_Mixer:
		return "mixer"
	case CommandKind_Instrument:
		return "instrument"
	case CommandKind_Modulator:
		return "modulator"
	case CommandKind_Unknown:
		return "unknown"
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

func (k CommandKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Command is the interpretation of one command code.
type Command struct {
	Code uint8       `json:"code"`
	Name string      `json:"name"`
	Kind CommandKind `json:"kind"`
	// Domain names the parameter values, or is nil for raw 00-FF.
	Domain *enums.Domain `json:"-"`
}

func (c Command) String() string {
	return c.Name
}

// Label renders a parameter value of the command.
func (c Command) Label(v uint8) string {
	if c.Domain != nil && c.Domain.Has(v) {
		return c.Domain.Label(v)
	}
	return fmt.Sprintf("%02X", v)
}

// Interpret names code for the instrument described by pack. It is total:
// every code yields a Command, unknown ones marked as such.
//
// 優先順位: シーケンサ/ミキサ共通コマンド → 楽器固有コマンド → 不明マーカー
func Interpret(family enums.FXFamily, pack Pack, code uint8) Command {
	if code == Empty {
		return Command{Code: code, Name: "---", Kind: CommandKind_Empty}
	}
	names := Names(family)
	if int(code) < len(names) {
		kind := CommandKind_Mixer
		if int(code) < SequencerCount(family) {
			kind = CommandKind_Sequencer
		}
		return Command{Code: code, Name: names[code], Kind: kind}
	}
	if !pack.Accepts(code) {
		return Command{Code: code, Name: fmt.Sprintf("?%02x", code), Kind: CommandKind_Unknown}
	}
	name, slot, ok := pack.Lookup(code)
	if !ok {
		return Command{Code: code, Name: fmt.Sprintf("I%02X", int(code)-InstrumentBase), Kind: CommandKind_Unknown}
	}
	cmd := Command{Code: code, Name: name, Kind: CommandKind_Instrument}
	if 0 <= slot {
		cmd.Kind = CommandKind_Modulator
		cmd.Domain = modDomain(pack.ModTypes[slot], name)
	} else {
		cmd.Domain = instrumentDomain(pack.Kind, name)
	}
	return cmd
}

func instrumentDomain(kind enums.InstrumentKind, name string) *enums.Domain {
	switch name {
	case "OSC":
		switch kind {
		case enums.InstrumentKind_WavSynth:
			return enums.WavShapes
		case enums.InstrumentKind_MacroSynth:
			return enums.MacroOscs
		}
	case "PLY":
		return enums.PlayModes
	case "ALG":
		return enums.FMAlgos
	case "FIL", "FLT":
		return enums.FilterTypesOf(kind)
	case "LIM":
		return enums.LimitTypes
	}
	return nil
}

func modDomain(t enums.ModType, name string) *enums.Domain {
	if t != enums.ModType_LFO {
		return nil
	}
	switch {
	case strings.HasPrefix(name, "LO"):
		return enums.LFOShapes
	case strings.HasPrefix(name, "LS"):
		return enums.LFOTriggers
	}
	return nil
}

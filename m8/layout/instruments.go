package layout

import (
	"fmt"

	"github.com/but80/m8kit/m8/enums"
)

// Modulator slots per instrument and bytes per slot.
const (
	NumMods    = 4
	ModSize    = 6
	modsOffset = 63
	// InstrumentEQOffset is where 4.1 stores the associated EQ of synth variants.
	InstrumentEQOffset = 62
)

// instrumentGen describes how a firmware generation stores the parts all
// instrument variants share.
type instrumentGen struct {
	inlineMods bool // 2.x: AHD, AHD, LFO, LFO right after the synth parameters
	eqInBits   bool // 4.0: EQ number in bits 1-7 of the transpose byte
	eqInByte   bool // 4.1: EQ number at InstrumentEQOffset
	hyper      bool // 3.0: HyperSynth and External exist
}

//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
// +0  |             TYPE              |
// +1  |          NAME (12)            |
// +13 |      EQ (4.0 only)        |TSP|
// +14 |          TABLE TICK           |
func instrumentHeader() []Field {
	return []Field{
		U8("Type", 0),
		String("Name", 1, 12),
		Bits("Transpose", 13, 0, 1),
		U8("TableTick", 14),
	}
}

func synthFields(g instrumentGen, paramsAt int) []Field {
	fields := []Field{
		U8("Volume", 15),
		U8("Pitch", 16),
		U8("FineTune", 17),
	}
	fields = append(fields, At(paramsAt,
		U8("FilterType", 0),
		U8("Cutoff", 1),
		U8("Resonance", 2),
		U8("Amp", 3),
		U8("Limit", 4),
		U8("Pan", 5),
		U8("Dry", 6),
		U8("Chorus", 7),
		U8("Delay", 8),
		U8("Reverb", 9),
	)...)
	switch {
	case g.eqInBits:
		fields = append(fields, Bits("AssociatedEQ", 13, 1, 7).WithEmpty(0xFF))
	case g.eqInByte:
		fields = append(fields, U8("AssociatedEQ", InstrumentEQOffset))
	default:
		fields = append(fields, Const("AssociatedEQ", 0xFF))
	}
	return append(fields, modFields(g, paramsAt+10)...)
}

// modFields places the four modulators. From 3.0 every slot is typed:
//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
// +0 |     TYPE      |     DEST      |
// +1 |            AMOUNT             |
// +2 |          PARAMS (4)           |
// 2.x files have two AHD envelopes then two LFOs at inlineAt.
func modFields(g instrumentGen, inlineAt int) []Field {
	if !g.inlineMods {
		return Repeat("Mods", NumMods, ModSize, At(modsOffset,
			Bits("Type", 0, 4, 4),
			Bits("Dest", 0, 0, 4),
			U8("Amount", 1),
			U8("Params.0", 2),
			U8("Params.1", 3),
			U8("Params.2", 4),
			U8("Params.3", 5),
		)...)
	}
	ahd := []Field{
		Const("Type", int(enums.ModType_AHD)),
		U8("Dest", 0),
		U8("Amount", 1),
		U8("Params.0", 2),
		U8("Params.1", 3),
		U8("Params.2", 4),
	}
	lfo := []Field{
		Const("Type", int(enums.ModType_LFO)),
		U8("Params.0", 0),
		U8("Dest", 1),
		U8("Params.1", 2),
		U8("Params.2", 3),
		U8("Amount", 4),
		U8("Params.3", 5),
	}
	var fields []Field
	for i := 0; i < NumMods; i++ {
		sub := ahd
		if 2 <= i {
			sub = lfo
		}
		fields = append(fields, Prefix(fmt.Sprintf("Mods.%d", i), At(inlineAt+i*ModSize, sub...)...)...)
	}
	return fields
}

func instrumentTable(name string, g instrumentGen, groups ...[]Field) *Table {
	return NewTable(name, InstrumentSize, append([][]Field{instrumentHeader()}, groups...)...)
}

func wavSynthTable(g instrumentGen) *Table {
	return instrumentTable("WavSynth", g, []Field{
		U8("Shape", 18),
		U8("Size", 19),
		U8("Mult", 20),
		U8("Warp", 21),
		U8("Scan", 22),
	}, synthFields(g, 23))
}

func macroSynthTable(g instrumentGen) *Table {
	return instrumentTable("MacroSynth", g, []Field{
		U8("Shape", 18),
		U8("Timbre", 19),
		U8("Color", 20),
		U8("Degrade", 21),
		U8("Redux", 22),
	}, synthFields(g, 23))
}

func samplerTable(g instrumentGen) *Table {
	return instrumentTable("Sampler", g, []Field{
		U8("PlayMode", 18),
		U8("Slice", 19),
		U8("Start", 20),
		U8("LoopStart", 21),
		U8("Length", 22),
		U8("Degrade", 23),
		String("SamplePath", 87, 128),
	}, synthFields(g, 24))
}

func fmSynthTable(g instrumentGen) *Table {
	return instrumentTable("FMSynth", g,
		[]Field{U8("Algo", 18)},
		Repeat("Operators", 4, 1, U8("Shape", 19)),
		Repeat("Operators", 4, 2, U8("Ratio", 23), U8("RatioFine", 24)),
		Repeat("Operators", 4, 2, U8("Level", 31), U8("Feedback", 32)),
		Repeat("Operators", 4, 1, U8("ModA", 39)),
		Repeat("Operators", 4, 1, U8("ModB", 43)),
		[]Field{Bytes("OpMods", 47, 4)},
		synthFields(g, 51),
	)
}

func midiOutTable(g instrumentGen) *Table {
	var mods []Field
	if !g.inlineMods {
		mods = modFields(g, 0)
	}
	return instrumentTable("MIDIOut", g, []Field{
		U8("Port", 15),
		U8("Channel", 16),
		U8("BankSelect", 17),
		U8("ProgramChange", 18),
	}, Repeat("CC", 10, 2, U8("Number", 22), U8("Value", 23)), mods)
}

func hyperSynthTable(g instrumentGen) *Table {
	return instrumentTable("HyperSynth", g, []Field{
		Bytes("DefaultChord", 18, 7),
		U8("Scale", 25),
		U8("Shift", 26),
		U8("Swarm", 27),
		U8("Width", 28),
		U8("SubOsc", 29),
	}, synthFields(g, 30), Repeat("Chords", 16, 7, Bytes("", 88, 6)))
}

func externalTable(g instrumentGen) *Table {
	return instrumentTable("External", g, []Field{
		U8("Input", 18),
		U8("Port", 19),
		U8("Channel", 20),
		U8("Bank", 21),
		U8("Program", 22),
	}, Repeat("CC", 4, 2, U8("Number", 23), U8("Value", 24)), synthFields(g, 31))
}

// NoneTable keeps only the type byte, so unknown tags survive a round trip.
var NoneTable = NewTable("None", InstrumentSize, []Field{U8("Tag", 0)})

func instrumentTables(g instrumentGen) map[enums.InstrumentKind]*Table {
	m := map[enums.InstrumentKind]*Table{
		enums.InstrumentKind_WavSynth:   wavSynthTable(g),
		enums.InstrumentKind_MacroSynth: macroSynthTable(g),
		enums.InstrumentKind_Sampler:    samplerTable(g),
		enums.InstrumentKind_MIDIOut:    midiOutTable(g),
		enums.InstrumentKind_FMSynth:    fmSynthTable(g),
	}
	if g.hyper {
		m[enums.InstrumentKind_HyperSynth] = hyperSynthTable(g)
		m[enums.InstrumentKind_External] = externalTable(g)
	}
	return m
}

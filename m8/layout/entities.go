package layout

// Capacities shared by every song layout.
const (
	NumPhrases      = 255
	NumChains       = 255
	NumInstruments  = 128
	NumTables       = 256
	NumGrooves      = 32
	NumScales       = 16
	NumMidiMappings = 128
	NumTracks       = 8
	NumSongRows     = 256
	NumSteps        = 16
	NumFX           = 3
)

// Entity sizes in bytes.
const (
	StepSize        = 9
	PhraseSize      = NumSteps * StepSize
	ChainStepSize   = 2
	ChainSize       = NumSteps * ChainStepSize
	TableStepSize   = 8
	TableSize       = NumSteps * TableStepSize
	GrooveSize      = 16
	SongStepsSize   = NumTracks * NumSongRows
	InstrumentSize  = 215
	MidiMappingSize = 7
	ScaleSize       = 42
	EQSize          = 18
	ThemeSize       = 39
	MidiSize        = 27
	MixerSize       = 32
)

func fx(base int) []Field {
	return Repeat("FX", NumFX, 2, At(base, U8("Command", 0), U8("Value", 1))...)
}

var (
	// Step
	//    +0 | note      |
	//    +1 | velocity  |
	//    +2 | instrument|
	//  +3.. | FX1 FX2 FX3 (command, value)
	stepFields = append([]Field{
		U8("Note", 0),
		U8("Velocity", 1),
		Index("Instrument", 2, NumInstruments),
	}, fx(3)...)

	PhraseTable = NewTable("Phrase", PhraseSize, Repeat("Steps", NumSteps, StepSize, stepFields...))

	ChainTable = NewTable("Chain", ChainSize, Repeat("Steps", NumSteps, ChainStepSize,
		Index("Phrase", 0, NumPhrases),
		U8("Transpose", 1),
	))

	TableTable = NewTable("Table", TableSize, Repeat("Steps", NumSteps, TableStepSize,
		append([]Field{U8("Transpose", 0), U8("Velocity", 1)}, fx(2)...)...,
	))

	GrooveTable = NewTable("Groove", GrooveSize, []Field{Bytes("Steps", 0, GrooveSize)})

	SongStepsTable = NewTable("SongSteps", SongStepsSize, Repeat("Steps", SongStepsSize, 1, Index("", 0, NumChains)))

	MidiMappingTable = NewTable("MidiMapping", MidiMappingSize, []Field{
		U8("Channel", 0),
		U8("ControlNumber", 1),
		U8("Value", 2),
		U8("Type", 3),
		U8("ParamIndex", 4),
		U8("Min", 5),
		U8("Max", 6),
	})

	ScaleTable = NewTable("Scale", ScaleSize,
		[]Field{U16("Enabled", 0)},
		Repeat("Notes", 12, 2, U8("Semitones", 2), U8("Cents", 3)),
		[]Field{String("Name", 26, 16)},
	)

	// EqBand
	//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +0 |   MODE    | -   - |   TYPE    |
	// +1 |           FREQ FINE           |
	// +2 |             FREQ              |
	// +3 |          LEVEL FINE           |
	// +4 |             LEVEL             |
	// +5 |               Q               |
	eqBand = []Field{
		Bits("Type", 0, 0, 3),
		Bits("Mode", 0, 5, 3),
		U8("FreqFine", 1),
		U8("Freq", 2),
		U8("LevelFine", 3),
		U8("Level", 4),
		U8("Q", 5),
	}

	EQTable = NewTable("EQ", EQSize,
		Prefix("Low", eqBand...),
		Prefix("Mid", At(6, eqBand...)...),
		Prefix("High", At(12, eqBand...)...),
	)

	MidiSettingsTable = NewTable("MidiSettings", MidiSize,
		[]Field{
			U8("ReceiveSync", 0),
			U8("ReceiveTransport", 1),
			U8("SendSync", 2),
			U8("SendTransport", 3),
			U8("RecordNoteChannel", 4),
			U8("RecordNoteVelocity", 5),
			U8("RecordNoteDelayKill", 6),
			U8("ControlMapChannel", 7),
			U8("SongRowCueChannel", 8),
			Bytes("TrackInputChannel", 9, NumTracks),
			Bytes("TrackInputInstrument", 17, NumTracks),
			U8("TrackInputProgramChange", 25),
			U8("TrackInputMode", 26),
		},
	)

	MixerTable = NewTable("MixerSettings", MixerSize, []Field{
		U8("MasterVolume", 0),
		U8("MasterLimit", 1),
		Bytes("TrackVolume", 2, NumTracks),
		U8("ChorusVolume", 10),
		U8("DelayVolume", 11),
		U8("ReverbVolume", 12),
		Bytes("AnalogVolume", 13, 2),
		U8("USBVolume", 15),
		Bytes("AnalogChorus", 16, 2),
		Bytes("AnalogDelay", 18, 2),
		Bytes("AnalogReverb", 20, 2),
		U8("USBChorus", 22),
		U8("USBDelay", 23),
		U8("USBReverb", 24),
		U8("DJFilter", 25),
		U8("DJPeak", 26),
		U8("DJFilterType", 27),
	})

	// EffectsV2Table is used before 4.0, where delay and reverb carry HP/LP filters.
	EffectsV2Table = NewTable("EffectsSettings", 21, []Field{
		U8("ChorusModDepth", 0),
		U8("ChorusModFreq", 1),
		U8("ChorusReverbSend", 2),
		U8("DelayHP", 6),
		U8("DelayLP", 7),
		U8("DelayTimeL", 8),
		U8("DelayTimeR", 9),
		U8("DelayFeedback", 10),
		U8("DelayWidth", 11),
		U8("DelayReverbSend", 12),
		U8("ReverbHP", 14),
		U8("ReverbLP", 15),
		U8("ReverbSize", 16),
		U8("ReverbDamping", 17),
		U8("ReverbModDepth", 18),
		U8("ReverbModFreq", 19),
		U8("ReverbWidth", 20),
	})

	EffectsV4Table = NewTable("EffectsSettings", 17, []Field{
		U8("ChorusModDepth", 0),
		U8("ChorusModFreq", 1),
		U8("ChorusReverbSend", 2),
		U8("DelayTimeL", 6),
		U8("DelayTimeR", 7),
		U8("DelayFeedback", 8),
		U8("DelayWidth", 9),
		U8("DelayReverbSend", 10),
		U8("ReverbSize", 12),
		U8("ReverbDamping", 13),
		U8("ReverbModDepth", 14),
		U8("ReverbModFreq", 15),
		U8("ReverbWidth", 16),
	})

	ThemeTable = NewTable("Theme", ThemeSize, themeFields())

	// Song header fields, at absolute file offsets.
	SongHeaderTable = NewTable("SongHeader", 0xEE, []Field{
		String("Directory", 0x0E, 128),
		U8("Transpose", 0x8E),
		F32("Tempo", 0x8F),
		U8("Quantize", 0x93),
		String("Name", 0x94, 12),
		U8("Key", 0xBB),
	})
)

var ThemeColors = []string{
	"Background",
	"TextEmpty",
	"TextInfo",
	"TextDefault",
	"TextValue",
	"TextTitle",
	"PlayMarker",
	"Cursor",
	"Selection",
	"ScopeSlider",
	"MeterLow",
	"MeterMid",
	"MeterPeak",
}

func themeFields() []Field {
	var fields []Field
	for i, c := range ThemeColors {
		fields = append(fields, Prefix(c, At(i*3, U8("R", 0), U8("G", 1), U8("B", 2))...)...)
	}
	return fields
}

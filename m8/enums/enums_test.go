package enums

import "testing"

func TestNoteString(t *testing.T) {
	tests := []struct {
		note Note
		want string
	}{
		{0, "C-1"},
		{13, "C#2"},
		{0x3C, "C-6"},
		{0x7F, "G-B"},
		{Note_Off, "OFF"},
		{Note_Empty, "---"},
	}
	for _, tt := range tests {
		if got := tt.note.String(); got != tt.want {
			t.Errorf("Note(%d).String() = %s want %s", int(tt.note), got, tt.want)
		}
	}
}

func TestDomainLabel(t *testing.T) {
	tests := []struct {
		d    *Domain
		v    uint8
		want string
	}{
		{WavShapes, 0, "PULSE12"},
		{WavShapes, 69, "WT VOXSYNTH"},
		{WavShapes, 70, "46"},
		{MacroOscs, 47, "MORSE NOISE"},
		{PlayModes, 8, "OSC PP"},
		{FMAlgos, 11, "A+B+C+D"},
		{WavFilterTypes, 11, "WAV BS"},
		{FilterTypes, 11, "0B"},
		{LFOTriggers, 3, "ONCE"},
		{nil, 0xAB, "AB"},
	}
	for _, tt := range tests {
		if got := tt.d.Label(tt.v); got != tt.want {
			t.Errorf("%s.Label(%d) = %s want %s", tt.d, tt.v, got, tt.want)
		}
	}
}

func TestDestinations(t *testing.T) {
	tests := []struct {
		kind InstrumentKind
		n    int
		at   int
		want string
	}{
		{InstrumentKind_WavSynth, 15, 3, "SIZE"},
		{InstrumentKind_MacroSynth, 15, 6, "REDUX"},
		{InstrumentKind_Sampler, 14, 5, "DEGRADE"},
		{InstrumentKind_FMSynth, 15, 6, "MOD4"},
		{InstrumentKind_HyperSynth, 15, 7, "CUTOFF"},
		{InstrumentKind_External, 14, 6, "CCA"},
		{InstrumentKind_MIDIOut, 15, 10, "CCJ"},
	}
	for _, tt := range tests {
		d := Destinations(tt.kind)
		if len(d.Names) != tt.n {
			t.Errorf("%s has %d destinations want %d", tt.kind, len(d.Names), tt.n)
			continue
		}
		if d.Names[tt.at] != tt.want {
			t.Errorf("%s destination %d = %s want %s", tt.kind, tt.at, d.Names[tt.at], tt.want)
		}
	}
	if Destinations(InstrumentKind_None) != nil {
		t.Errorf("None has destinations")
	}
}

func TestFXFamilyOf(t *testing.T) {
	tests := []struct {
		major uint8
		want  FXFamily
	}{
		{2, FXFamily_V2},
		{3, FXFamily_V3},
		{4, FXFamily_V4},
	}
	for _, tt := range tests {
		if got := FXFamilyOf(tt.major); got != tt.want {
			t.Errorf("FXFamilyOf(%d) = %s want %s", tt.major, got, tt.want)
		}
	}
}

func TestModTypeParams(t *testing.T) {
	if got := ModType_LFO.ParamDomain(0); got != LFOShapes {
		t.Errorf("LFO param 0 domain = %s", got)
	}
	if got := ModType_AHD.ParamDomain(0); got != nil {
		t.Errorf("AHD param 0 domain = %s", got)
	}
	if ModType(9).Known() || len(ModType(9).ParamNames()) != 0 {
		t.Errorf("ModType(9) reported as known")
	}
}

package enums

var WavShapes = &Domain{Name: "WAV SHAPE", Names: []string{
	"PULSE12", "PULSE25", "PULSE50", "PULSE75", "SAW", "TRIANGLE", "SINE", "NOISE PITCHED", "NOISE",
	"WT CRUSH", "WT FOLDING", "WT FREQ", "WT FUZZY", "WT GHOST", "WT GRAPHIC", "WT LFOPLAY",
	"WT LIQUID", "WT MORPHING", "WT MYSTIC", "WT STICKY", "WT TIDAL", "WT TIDY", "WT TUBE",
	"WT UMBRELLA", "WT UNWIND", "WT VIRAL", "WT WAVES", "WT DRIP", "WT FROGGY", "WT INSONIC",
	"WT RADIUS", "WT SCRATCH", "WT SMOOTH", "WT WOBBLE", "WT ASIMMTRY", "WT BLEEN", "WT FRACTAL",
	"WT GENTLE", "WT HARMONIC", "WT HYPNOTIC", "WT ITERATIV", "WT MICROWAV", "WT PLAITS01",
	"WT PLAITS02", "WT RISEFALL", "WT TONAL", "WT TWINE", "WT ALIEN", "WT CYBERNET", "WT DISORDR",
	"WT FORMANT", "WT HYPER", "WT JAGGED", "WT MIXED", "WT MULTIPLY", "WT NOWHERE", "WT PINBALL",
	"WT RINGS", "WT SHIMMER", "WT SPECTRAL", "WT SPOOKY", "WT TRANSFRM", "WT TWISTED", "WT VOCAL",
	"WT WASHED", "WT WONDER", "WT WOWEE", "WT ZAP", "WT BRAIDS", "WT VOXSYNTH",
}}

var MacroOscs = &Domain{Name: "MACRO OSC", Names: []string{
	"CSAW", "MORPH", "SAW SQUARE", "SINE TRIANGLE", "BUZZ", "SQUARE SUB", "SAW SUB", "SQUARE SYNC",
	"SAW SYNC", "TRIPLE SAW", "TRIPLE SQUARE", "TRIPLE TRIANGLE", "TRIPLE SIN", "TRIPLE RNG",
	"SAW SWARM", "SAW COMB", "TOY", "DIGITAL FILTER LP", "DIGITAL FILTER PK", "DIGITAL FILTER BP",
	"DIGITAL FILTER HP", "VOSIM", "VOWEL", "VOWEL FOF", "HARMONICS", "FM", "FEEDBACK FM",
	"CHAOTIC FEEDBACK FM", "PLUCKED", "BOWED", "BLOWN", "FLUTED", "STRUCK BELL", "STRUCK DRUM",
	"KICK", "CYMBAL", "SNARE", "WAVETABLES", "WAVE MAP", "WAV LINE", "WAV PARAPHONIC",
	"FILTERED NOISE", "TWIN PEAKS NOISE", "CLOCKED NOISE", "GRANULAR CLOUD", "PARTICLE NOISE",
	"DIGITAL MOD", "MORSE NOISE",
}}

var PlayModes = &Domain{Name: "PLAY MODE", Names: []string{
	"FWD", "REV", "FWDLOOP", "REVLOOP", "FWD PP", "REV PP", "OSC", "OSC REV", "OSC PP",
}}

var FMWaves = &Domain{Name: "FM WAVE", Names: []string{
	"SIN", "SW2", "SW3", "SW4", "SW5", "SW6", "TRI", "SAW",
	"SQR", "PUL", "IMP", "NOI", "NLP", "NHP", "NBP", "CLK",
}}

var FMAlgos = &Domain{Name: "FM ALGO", Names: []string{
	"A>B>C>D",
	"[A+B]>C>D",
	"[A>B+C]>D",
	"[A>B+A>C]>D",
	"[A+B+C]>D",
	"[A>B>C]+D",
	"[A>B>C]+[A>B>D]",
	"[A>B]+[C>D]",
	"[A>B]+[A>C]+[A>D]",
	"[A>B]+[A>C]+D",
	"[A>B]+C+D",
	"A+B+C+D",
}}

var LimitTypes = &Domain{Name: "LIMIT", Names: []string{
	"CLIP", "SIN", "FOLD", "WRAP", "POST", "POSTAD", "POST:W1", "POST:W2",
}}

var FilterTypes = &Domain{Name: "FILTER", Names: []string{
	"OFF", "LOWPASS", "HIGHPAS", "BANDPAS", "BANDSTP", "LP > HP", "ZDF LP", "ZDF HP",
}}

// WavFilterTypes extends FilterTypes with the wavefolding filters of the wave synth.
var WavFilterTypes = &Domain{Name: "WAV FILTER", Names: append(append([]string{}, FilterTypes.Names...),
	"WAV LP", "WAV HP", "WAV BP", "WAV BS",
)}

var LFOShapes = &Domain{Name: "LFO SHAPE", Names: []string{
	"TRI", "SIN", "RAMP DOWN", "RAMP UP", "EXP DN", "EXP UP", "SQR DN", "SQR UP", "RANDOM", "DRUNK",
	"TRI T", "SIN T", "RAMPD T", "RAMPU T", "EXPD T", "EXPU T", "SQ D T", "SQ U T", "RAND T", "DRNK T",
}}

var LFOTriggers = &Domain{Name: "LFO TRIGGER", Names: []string{
	"FREE", "RETRIG", "HOLD", "ONCE",
}}

var MIDIPorts = &Domain{Name: "MIDI PORT", Names: []string{
	"MIDI + USB", "MIDI", "USB", "INTERNAL",
}}

var ExternalPorts = &Domain{Name: "EXT PORT", Names: []string{
	"NONE", "MIDI+USB", "MIDI", "USB",
}}

// Modulation destinations.
const (
	destOff     = "OFF"
	destVolume  = "VOLUME"
	destPitch   = "PITCH"
	destCutoff  = "CUTOFF"
	destRes     = "RES"
	destAmp     = "AMP"
	destPan     = "PAN"
	destDegrade = "DEGRADE"
)

var destModTargets = []string{"MOD AMT", "MOD RATE", "MOD BOTH", "MOD BINV"}

func synthDests(variant ...string) []string {
	d := []string{destOff, destVolume, destPitch}
	d = append(d, variant...)
	d = append(d, destCutoff, destRes, destAmp, destPan)
	return append(d, destModTargets...)
}

var destinations = map[InstrumentKind]*Domain{
	InstrumentKind_WavSynth:   {Name: "DEST", Names: synthDests("SIZE", "MULT", "WARP", "SCAN")},
	InstrumentKind_MacroSynth: {Name: "DEST", Names: synthDests("TIMBRE", "COLOR", destDegrade, "REDUX")},
	InstrumentKind_Sampler:    {Name: "DEST", Names: synthDests("LOOP ST", "LENGTH", destDegrade)},
	InstrumentKind_FMSynth:    {Name: "DEST", Names: synthDests("MOD1", "MOD2", "MOD3", "MOD4")},
	InstrumentKind_HyperSynth: {Name: "DEST", Names: synthDests("SHIFT", "SWARM", "WIDTH", "SUBOSC")},
	InstrumentKind_External: {Name: "DEST", Names: append([]string{
		destOff, destVolume, destCutoff, destRes, destAmp, destPan, "CCA", "CCB", "CCC", "CCD",
	}, destModTargets...)},
	InstrumentKind_MIDIOut: {Name: "DEST", Names: append([]string{
		destOff, "CCA", "CCB", "CCC", "CCD", "CCE", "CCF", "CCG", "CCH", "CCI", "CCJ",
	}, destModTargets...)},
}

// Destinations returns the modulation destination table of an instrument kind.
func Destinations(k InstrumentKind) *Domain {
	return destinations[k]
}

// FilterTypesOf returns the filter table an instrument kind uses.
func FilterTypesOf(k InstrumentKind) *Domain {
	if k == InstrumentKind_WavSynth {
		return WavFilterTypes
	}
	return FilterTypes
}

package song

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/fx"
	"github.com/but80/m8kit/m8/instrument"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/util"
	"github.com/but80/m8kit/m8/version"
)

func encode(t *testing.T, s *Song) []byte {
	t.Helper()
	b, err := s.Encode()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEmptySong(t *testing.T) {
	for _, l := range layout.All() {
		t.Run(l.Name, func(t *testing.T) {
			b := encode(t, New(l))
			if len(b) != l.MinSongSize() || string(b[:10]) != version.Magic {
				t.Fatalf("encoded %d bytes starting % X", len(b), b[:14])
			}
			var diags codec.Diagnostics
			s, err := Decode(b, l, &diags)
			if err != nil {
				t.Fatal(err)
			}
			if len(diags) != 0 {
				t.Errorf("diagnostics:\n%s", diags)
			}
			if s.Name != "UNTITLED" || s.Tempo != 120 || s.Header.Version != l.Min {
				t.Errorf("header: %q %f %s", s.Name, s.Tempo, s.Header.Version)
			}
			if !s.Phrases[0].IsEmpty() || !s.Chains[254].IsEmpty() || !instrument.IsEmpty(s.Instruments[127]) {
				t.Error("new song is not empty")
			}
			if len(s.Scales) != l.Scales.Count || len(s.EQs) != l.EQs.Count {
				t.Errorf("%d scales, %d EQs", len(s.Scales), len(s.EQs))
			}
			if 0 < len(s.Scales) && s.Scales[15].Name != "CHROMATIC" {
				t.Errorf("scale 15 = %q", s.Scales[15].Name)
			}
			if 0 < len(s.EQs) && !s.EQs[0].IsEmpty() {
				t.Errorf("EQ 0 = %s", s.EQs[0])
			}
			if got := encode(t, s); !bytes.Equal(got, b) {
				t.Errorf("re-encoded song differs at 0x%X", util.FirstDiff(got, b))
			}
		})
	}
}

func TestRandomRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	for _, l := range layout.All() {
		t.Run(l.Name, func(t *testing.T) {
			for n := 0; n < 3; n++ {
				b := make([]byte, l.MinSongSize()+n*37)
				rnd.Read(b)
				copy(b, version.Header{Version: l.Min}.Bytes())
				s, err := Decode(b, l, nil)
				if err != nil {
					t.Fatal(err)
				}
				got := encode(t, s)
				if i := util.FirstDiff(got, b); 0 <= i {
					t.Fatalf("round trip differs at 0x%X", i)
				}
			}
		})
	}
}

func TestLocalizedMutation(t *testing.T) {
	b := encode(t, New(layout.V4_1))
	s, err := Decode(b, layout.V4_1, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Phrases[0].Steps[0].Note = 0x30
	got := encode(t, s)
	for i := range b {
		want := b[i]
		if i == layout.PhrasesOffset {
			want = 0x30
		}
		if got[i] != want {
			t.Fatalf("byte 0x%X = %02X want %02X", i, got[i], want)
		}
	}
}

func TestIndexSafety(t *testing.T) {
	b := encode(t, New(layout.V4_1))
	at := layout.PhrasesOffset + 2
	b[at] = 0x90
	var diags codec.Diagnostics
	s, err := Decode(b, layout.V4_1, &diags)
	if err != nil {
		t.Fatal(err)
	}
	if s.Phrases[0].Steps[0].Instrument != Empty {
		t.Errorf("instrument 0x90 decoded as %02X", s.Phrases[0].Steps[0].Instrument)
	}
	if len(diags) != 1 || diags[0].Kind != errs.Kind_OutOfRangeIndex || diags[0].Offset != at {
		t.Errorf("diagnostics:\n%s", diags)
	}
	if got := encode(t, s); !bytes.Equal(got, b) {
		t.Errorf("clamped index not restored: %02X", got[at])
	}

	s.Phrases[0].Steps[0].Instrument = 0x81
	if _, err := s.Encode(); !errs.Is(err, errs.Kind_OutOfRangeIndex) {
		t.Errorf("encode err = %v", err)
	}
}

func TestClearDropsClampedIndex(t *testing.T) {
	at := layout.PhrasesOffset + 3*layout.StepSize + 2
	tests := []struct {
		name  string
		clear func(p *Phrase)
		want  uint8
	}{
		{"phrase step", func(p *Phrase) { p.ClearStep(3) }, Empty},
		{"other phrase step", func(p *Phrase) { p.ClearStep(4) }, 0xF0},
		{"phrase", func(p *Phrase) { p.Clear() }, Empty},
		{"step field", func(p *Phrase) {
			p.Steps[3].Instrument = Empty
			p.Remainder.Forget(3*layout.StepSize+2, 1)
		}, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := encode(t, New(layout.V4_1))
			b[at] = 0xF0
			var diags codec.Diagnostics
			s, err := Decode(b, layout.V4_1, &diags)
			if err != nil {
				t.Fatal(err)
			}
			if len(diags) != 1 || diags[0].Offset != at {
				t.Fatalf("diagnostics:\n%s", diags)
			}
			if got := encode(t, s); got[at] != 0xF0 {
				t.Fatalf("dangling index not kept: %02X", got[at])
			}
			tt.clear(s.Phrases[0])
			if got := encode(t, s); got[at] != tt.want {
				t.Errorf("index encoded as %02X want %02X", got[at], tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	b := encode(t, New(layout.V3_0))
	if _, err := Decode(b[:len(b)-1], layout.V3_0, nil); !errs.Is(err, errs.Kind_Truncated) {
		t.Errorf("short song err = %v", err)
	}
	bad := append([]byte("M8VERSIOX"), b[9:]...)
	if _, err := Decode(bad, layout.V3_0, nil); !errs.Is(err, errs.Kind_BadMagic) {
		t.Errorf("bad magic err = %v", err)
	}
	s := New(layout.V4_1)
	s.EQs = s.EQs[:32]
	if _, err := s.Encode(); err == nil {
		t.Error("encoded a 4.1 song with 32 EQs")
	}
}

func TestScreens(t *testing.T) {
	s := New(layout.V4_1)
	s.Instruments[1] = instrument.New(enums.InstrumentKind_Sampler)
	p := s.Phrases[0]
	p.Steps[0] = Step{Note: 0x24, Velocity: 0x7F, Instrument: 1, FX: [layout.NumFX]fx.FX{{Command: 0x83, Value: 0x01}, fx.EmptyFX, fx.EmptyFX}}
	p.Steps[1].FX[0] = fx.FX{Command: 0x80, Value: 0x10}
	s.Chains[0].Steps[0] = ChainStep{Phrase: 2}
	s.SongSteps.Set(0, 1, 5)
	s.Tables[1].Steps[0].FX[0] = fx.FX{Command: 0x8C}

	tests := []struct {
		name, screen string
		want         []string
	}{
		{"phrase", s.PhraseScreen(0), []string{"PHRASE 00", "0 C-4 7f 01 PLY01 ---   ---  ", "1 --- -- -- VOL10"}},
		{"chain", s.ChainScreen(0), []string{"  PH TSP", "0 02 00", "1 -- 00"}},
		{"song", s.SongSteps.String(), []string{"   1  2  3", "00 -- 05 -- -- -- -- -- -- "}},
		{"table", s.TableScreen(1), []string{"TABLE 01", "0 00 -- LIM00 ---   ---  "}},
		{"groove", s.GrooveScreen(0), []string{"[06 06]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.screen, w) {
					t.Errorf("screen lacks %q:\n%s", w, tt.screen)
				}
			}
		})
	}
}

func TestSongString(t *testing.T) {
	s := New(layout.V4_0)
	s.Chains[4].Steps[0].Phrase = 1
	str := s.String()
	for _, w := range []string{"LAYOUT    4.0", "CHAINS        1 used", "EQS           0 used"} {
		if !strings.Contains(str, w) {
			t.Errorf("summary lacks %q:\n%s", w, str)
		}
	}
}

// fxCase is one FX slot of a phrase step and the name the catalog gives it.
type fxCase struct {
	phrase, step, slot int
	code               uint8
	name               string
}

// catalogCodes lists every documented command code for an instrument kind
// with the given modulator types, with its catalog name.
func catalogCodes(family enums.FXFamily, kind enums.InstrumentKind, types [fx.ModSlots]enums.ModType) []fxCase {
	var result []fxCase
	add := func(code int, name string) {
		result = append(result, fxCase{code: uint8(code), name: name})
	}
	for c, name := range fx.Names(family) {
		add(c, name)
	}
	instr := fx.InstrumentCommands(kind)
	for i := 0; i < len(instr) && i < fx.BaseCount; i++ {
		add(fx.InstrumentBase+i, instr[i])
	}
	for slot, t := range types {
		for i, name := range fx.ModCommands(t, slot) {
			add(fx.InstrumentBase+fx.BaseCount+slot*fx.ModCount+i, name)
		}
	}
	for i := fx.BaseCount; i < len(instr); i++ {
		add(fx.InstrumentBase+fx.ModCount*fx.ModSlots+i, instr[i])
	}
	return result
}

func TestFXMappingFixture(t *testing.T) {
	allTypes := []enums.ModType{
		enums.ModType_AHD, enums.ModType_ADSR, enums.ModType_Drum,
		enums.ModType_LFO, enums.ModType_Trig, enums.ModType_Tracking,
	}
	for _, l := range layout.All() {
		t.Run(l.Name, func(t *testing.T) {
			// 2.x stores two AHD envelopes then two LFOs, untyped.
			configs := [][fx.ModSlots]enums.ModType{
				{enums.ModType_AHD, enums.ModType_AHD, enums.ModType_LFO, enums.ModType_LFO},
			}
			if 3 <= l.Min.Major {
				configs = nil
				for k := range allTypes {
					var types [fx.ModSlots]enums.ModType
					for slot := range types {
						types[slot] = allTypes[(k+slot)%len(allTypes)]
					}
					configs = append(configs, types)
				}
			}

			s := New(l)
			var cases []fxCase
			inst, phrase := 0, 0
			for _, kind := range enums.InstrumentKinds {
				if _, ok := l.InstrumentTables[kind]; !ok {
					continue
				}
				for _, types := range configs {
					if kind == enums.InstrumentKind_MIDIOut && l.Min.Major < 3 {
						// 2.x MIDI out has no modulators on disk.
						types = [fx.ModSlots]enums.ModType{}
					}
					in := instrument.New(kind)
					if mods := in.Modulators(); mods != nil {
						for slot, mt := range types {
							mods[slot].Type = mt
						}
					}
					s.Instruments[inst] = in
					codes := catalogCodes(l.Family, kind, types)
					for n := 0; n < len(codes); n += layout.NumFX * layout.NumSteps {
						p := NewPhrase()
						for j := n; j < len(codes) && j < n+layout.NumFX*layout.NumSteps; j++ {
							c := codes[j]
							c.phrase = phrase
							c.step = (j - n) / layout.NumFX
							c.slot = (j - n) % layout.NumFX
							p.Steps[c.step].Instrument = uint8(inst)
							p.Steps[c.step].FX[c.slot] = fx.FX{Command: c.code, Value: uint8(j)}
							cases = append(cases, c)
						}
						s.Phrases[phrase] = p
						phrase++
					}
					inst++
				}
			}

			var diags codec.Diagnostics
			back, err := Decode(encode(t, s), l, &diags)
			if err != nil {
				t.Fatal(err)
			}
			if len(diags) != 0 {
				t.Fatalf("diagnostics:\n%s", diags)
			}
			for _, c := range cases {
				step := back.Phrases[c.phrase].Steps[c.step]
				got := fx.Interpret(l.Family, back.Pack(step.Instrument), step.FX[c.slot].Command)
				if got.Kind == fx.CommandKind_Unknown || got.Name != c.name {
					t.Errorf("phrase %02X step %X fx %d: 0x%02X = %s (%s) want %s",
						c.phrase, c.step, c.slot+1, c.code, got.Name, got.Kind, c.name)
				}
			}
		})
	}
}

package song

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/fx"
	"github.com/but80/m8kit/m8/instrument"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/util"
)

func hexOrDash(v uint8) string {
	if v == Empty {
		return "--"
	}
	return fmt.Sprintf("%02x", v)
}

// Screen renders 16 rows of the song page from row start.
func (s *SongSteps) Screen(start int) string {
	var b strings.Builder
	b.WriteString("   1  2  3  4  5  6  7  8  \n")
	for row := start; row < start+layout.NumSteps && row < layout.NumSongRows; row++ {
		fmt.Fprintf(&b, "%02x ", row)
		for track := 0; track < layout.NumTracks; track++ {
			b.WriteString(hexOrDash(s.At(row, track)) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SongSteps) String() string {
	return "SONG\n\n" + s.Screen(0)
}

// Screen renders the chain page.
func (ch *Chain) Screen() string {
	var b strings.Builder
	b.WriteString("  PH TSP\n")
	for i, st := range ch.Steps {
		if st.IsEmpty() {
			fmt.Fprintf(&b, "%x -- 00\n", i)
		} else {
			fmt.Fprintf(&b, "%x %02x %02x\n", i, st.Phrase, st.Transpose)
		}
	}
	return b.String()
}

func (ch *Chain) String() string {
	return "CHAIN\n\n" + ch.Screen()
}

func formatFX(f [layout.NumFX]fx.FX, family enums.FXFamily, pack fx.Pack) string {
	s := make([]string, len(f))
	for i, x := range f {
		s[i] = x.Format(family, pack)
	}
	return strings.Join(s, " ")
}

// Screen renders the phrase page. Instrument commands are named after the
// last instrument set on a step, starting from none.
func (p *Phrase) Screen(family enums.FXFamily, instruments []instrument.Instrument) string {
	var b strings.Builder
	b.WriteString("  N   V  I  FX1   FX2   FX3  \n")
	pack := fx.Pack{}
	for i, st := range p.Steps {
		if int(st.Instrument) < len(instruments) && instruments[st.Instrument] != nil {
			pack = instrument.Pack(instruments[st.Instrument])
		}
		fmt.Fprintf(&b, "%x %s %s %s %s\n", i, st.Note, hexOrDash(st.Velocity), hexOrDash(st.Instrument), formatFX(st.FX, family, pack))
	}
	return b.String()
}

// Screen renders the table page with the commands of pack.
func (t *Table) Screen(family enums.FXFamily, pack fx.Pack) string {
	var b strings.Builder
	b.WriteString("  N  V  FX1   FX2   FX3  \n")
	for i, st := range t.Steps {
		fmt.Fprintf(&b, "%x %s %s %s\n", i, hexOrDash(st.Transpose), hexOrDash(st.Velocity), formatFX(st.FX, family, pack))
	}
	return b.String()
}

func (g *Groove) String() string {
	return util.Hex(g.Active())
}

// PhraseScreen renders phrase i with the instruments of the song.
func (s *Song) PhraseScreen(i int) string {
	return fmt.Sprintf("PHRASE %02X\n\n", i) + s.Phrases[i].Screen(s.Layout.Family, s.Instruments[:])
}

// TableScreen renders table i. Tables of instrument numbers use the commands
// of that instrument.
func (s *Song) TableScreen(i int) string {
	pack := fx.Pack{}
	if i < layout.NumInstruments {
		pack = s.Pack(uint8(i))
	}
	return fmt.Sprintf("TABLE %02X\n\n", i) + s.Tables[i].Screen(s.Layout.Family, pack)
}

func (s *Song) ChainScreen(i int) string {
	return fmt.Sprintf("CHAIN %02X\n\n", i) + s.Chains[i].Screen()
}

func (s *Song) GrooveScreen(i int) string {
	return fmt.Sprintf("GROOVE %02X\n\n", i) + s.Grooves[i].String()
}

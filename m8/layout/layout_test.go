package layout

import (
	"sort"
	"testing"

	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/version"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		v    version.Version
		want *Layout
	}{
		{version.New(2, 0, 0), V2_0},
		{version.New(2, 4, 9), V2_0},
		{version.New(2, 5, 0), V2_5},
		{version.New(2, 7, 8), V2_5},
		{version.New(3, 0, 0), V3_0},
		{version.New(3, 9, 1), V3_0},
		{version.New(4, 0, 0), V4_0},
		{version.New(4, 0, 1), V4_0},
		{version.New(4, 1, 0), V4_1},
		{version.New(4, 15, 15), V4_1},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			for i := 0; i < 3; i++ {
				got, err := Lookup(tt.v)
				if err != nil {
					t.Fatal(err)
				}
				if got != tt.want {
					t.Errorf("Lookup(%s) = %s want %s", tt.v, got, tt.want)
				}
			}
		})
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, v := range []version.Version{version.New(1, 9, 0), version.New(0, 0, 0), version.New(5, 0, 0)} {
		_, err := Lookup(v)
		if !errs.Is(err, errs.Kind_UnsupportedVersion) {
			t.Errorf("Lookup(%s) err = %v", v, err)
		}
	}
}

func TestMinSongSize(t *testing.T) {
	tests := []struct {
		l    *Layout
		want int
	}{
		{V2_0, 0x1A97E},
		{V2_5, 0x1AD1E},
		{V3_0, 0x1AD1E},
		{V4_0, 0x1AF9E},
		{V4_0EQ128, 0x1B65E},
		{V4_1, 0x1B65E},
	}
	for _, tt := range tests {
		if got := tt.l.MinSongSize(); got != tt.want {
			t.Errorf("%s: MinSongSize() = 0x%X want 0x%X", tt.l, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	h := version.Header{Version: version.New(4, 0, 0)}
	tests := []struct {
		name string
		size int
		kind version.FileKind
		ds   []Discriminator
		want *Layout
	}{
		{"short 4.0", V4_0.MinSongSize(), version.FileKind_Song, nil, V4_0},
		{"long 4.0", V4_1.MinSongSize(), version.FileKind_Song, nil, V4_0},
		{"long 4.0 with ExtendedEQ", V4_1.MinSongSize(), version.FileKind_Song, []Discriminator{ExtendedEQ}, V4_0EQ128},
		{"short 4.0 with ExtendedEQ", V4_0.MinSongSize(), version.FileKind_Song, []Discriminator{ExtendedEQ}, V4_0},
		{"long 4.0 without discriminators", V4_1.MinSongSize(), version.FileKind_Song, []Discriminator{}, V4_0},
		{"instrument", V4_1.MinSongSize(), version.FileKind_Instrument, nil, V4_0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(h, tt.size-version.HeaderSize, tt.kind, tt.ds)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Select() = %s want %s", got, tt.want)
			}
		})
	}
}

func TestSectionsDoNotOverlap(t *testing.T) {
	for _, l := range All() {
		t.Run(l.Name, func(t *testing.T) {
			owner := make([]string, l.MinSongSize())
			own := func(name string, from, to int) {
				for i := from; i < to; i++ {
					if owner[i] != "" {
						t.Errorf("%s at 0x%X overlaps %s", name, i, owner[i])
						return
					}
					owner[i] = name
				}
			}
			own("header", 0, version.HeaderSize)
			for _, f := range l.Header.Fields {
				if f.Kind != Kind_Const {
					own(f.Name, f.Offset, f.End())
				}
			}
			secs := l.Sections()
			sort.Slice(secs, func(i, j int) bool { return secs[i].Offset < secs[j].Offset })
			for _, s := range secs {
				own(s.Name, s.Offset, s.End())
			}
		})
	}
}

// claimed reports overlapping bits between the fields of a table.
func claimed(t *testing.T, tbl *Table) {
	mask := make([]uint8, tbl.Size)
	for _, f := range tbl.Fields {
		if f.Kind == Kind_Const {
			continue
		}
		for i := f.Offset; i < f.End(); i++ {
			if mask[i]&f.BitMask() != 0 {
				t.Errorf("%s: field %s overlaps at +%d", tbl.Name, f, i)
			}
			mask[i] |= f.BitMask()
		}
	}
}

func TestTablesDoNotOverlap(t *testing.T) {
	tables := []*Table{
		PhraseTable, ChainTable, TableTable, GrooveTable, SongStepsTable,
		MidiMappingTable, ScaleTable, EQTable, MidiSettingsTable, MixerTable,
		EffectsV2Table, EffectsV4Table, ThemeTable, SongHeaderTable, NoneTable,
	}
	for _, l := range All() {
		for _, tbl := range l.InstrumentTables {
			tables = append(tables, tbl)
		}
	}
	for _, tbl := range tables {
		claimed(t, tbl)
	}
}

func TestInstrumentTables(t *testing.T) {
	tests := []struct {
		l     *Layout
		kind  enums.InstrumentKind
		known bool
	}{
		{V2_0, enums.InstrumentKind_WavSynth, true},
		{V2_0, enums.InstrumentKind_HyperSynth, false},
		{V2_5, enums.InstrumentKind_External, false},
		{V3_0, enums.InstrumentKind_HyperSynth, true},
		{V4_1, enums.InstrumentKind_External, true},
		{V4_1, enums.InstrumentKind(0x42), false},
		{V4_1, enums.InstrumentKind_None, true},
	}
	for _, tt := range tests {
		tbl, ok := tt.l.InstrumentTable(tt.kind)
		if ok != tt.known {
			t.Errorf("%s %s: known = %v want %v", tt.l, tt.kind, ok, tt.known)
		}
		if !tt.known && tbl != NoneTable {
			t.Errorf("%s %s: table = %s want None", tt.l, tt.kind, tbl.Name)
		}
	}
}

func TestAssociatedEQ(t *testing.T) {
	tests := []struct {
		l    *Layout
		kind Kind
		off  int
	}{
		{V3_0, Kind_Const, 0},
		{V4_0, Kind_Bits, 13},
		{V4_1, Kind_U8, InstrumentEQOffset},
	}
	for _, tt := range tests {
		tbl, _ := tt.l.InstrumentTable(enums.InstrumentKind_Sampler)
		f, ok := tbl.Field("AssociatedEQ")
		if !ok {
			t.Fatalf("%s: no AssociatedEQ", tt.l)
		}
		if f.Kind != tt.kind || f.Offset != tt.off {
			t.Errorf("%s: AssociatedEQ = %s", tt.l, f)
		}
	}
}

func TestInlineMods(t *testing.T) {
	tbl, _ := V2_0.InstrumentTable(enums.InstrumentKind_WavSynth)
	tests := []struct {
		name string
		kind Kind
		off  int
	}{
		{"Mods.0.Type", Kind_Const, 0},
		{"Mods.0.Dest", Kind_U8, 33},
		{"Mods.2.Params.0", Kind_U8, 45},
		{"Mods.2.Dest", Kind_U8, 46},
		{"Mods.3.Params.3", Kind_U8, 56},
	}
	for _, tt := range tests {
		f, ok := tbl.Field(tt.name)
		if !ok {
			t.Errorf("no field %s", tt.name)
			continue
		}
		if f.Kind != tt.kind || (f.Kind != Kind_Const && f.Offset != tt.off) {
			t.Errorf("%s = %s", tt.name, f)
		}
	}
}

func TestRepeat(t *testing.T) {
	fields := Repeat("Steps", 2, 9, U8("Note", 0), Const("Fixed", 7))
	want := []Field{
		{Name: "Steps.0.Note", Offset: 0, Kind: Kind_U8},
		{Name: "Steps.0.Fixed", Kind: Kind_Const, Const: 7},
		{Name: "Steps.1.Note", Offset: 9, Kind: Kind_U8},
		{Name: "Steps.1.Fixed", Kind: Kind_Const, Const: 7},
	}
	if len(fields) != len(want) {
		t.Fatalf("len = %d want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("[%d] = %+v want %+v", i, fields[i], want[i])
		}
	}
}

func TestByName(t *testing.T) {
	l, err := ByName("4.0+eq128")
	if err != nil || l != V4_0EQ128 {
		t.Errorf("ByName = %v, %v", l, err)
	}
	if _, err := ByName("9.9"); err == nil {
		t.Error("ByName(9.9) succeeded")
	}
}

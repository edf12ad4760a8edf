package song

import (
	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/fx"
	"github.com/but80/m8kit/m8/layout"
	"github.com/pkg/errors"
)

// Empty marks an unused note, velocity or reference.
const Empty = 0xFF

type entity interface {
	raw() *codec.Remainder
}

func decodeEntity(c *cursor.Cursor, off int, t *layout.Table, e entity, diags *codec.Diagnostics) error {
	span, err := c.Sub(off, t.Size)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", t.Name)
	}
	rem, err := codec.Decode(span, t, e, diags)
	if err != nil {
		return err
	}
	*e.raw() = rem
	return nil
}

func emptyFX() [layout.NumFX]fx.FX {
	return [layout.NumFX]fx.FX{fx.EmptyFX, fx.EmptyFX, fx.EmptyFX}
}

func fxEmpty(f [layout.NumFX]fx.FX) bool {
	return f[0].IsEmpty() && f[1].IsEmpty() && f[2].IsEmpty()
}

// Step
//    +0 | note       |
//    +1 | velocity   |
//    +2 | instrument |
//  +3.. | FX1 FX2 FX3 (command, value)
type Step struct {
	Note       enums.Note          `json:"note"`
	Velocity   uint8               `json:"velocity"`
	Instrument uint8               `json:"instrument"`
	FX         [layout.NumFX]fx.FX `json:"fx"`
}

func EmptyStep() Step {
	return Step{Note: enums.Note_Empty, Velocity: Empty, Instrument: Empty, FX: emptyFX()}
}

func (s Step) IsEmpty() bool {
	return s.Note.IsEmpty() && s.Velocity == Empty && s.Instrument == Empty && fxEmpty(s.FX)
}

type Phrase struct {
	Steps [layout.NumSteps]Step `json:"steps"`

	Remainder codec.Remainder `json:"-"`
}

func (p *Phrase) raw() *codec.Remainder { return &p.Remainder }

func NewPhrase() *Phrase {
	p := &Phrase{}
	p.Clear()
	return p
}

func (p *Phrase) IsEmpty() bool {
	for _, s := range p.Steps {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// Clear empties every step, dropping clamped index bytes kept from decoding.
func (p *Phrase) Clear() {
	for i := range p.Steps {
		p.Steps[i] = EmptyStep()
	}
	p.Remainder.Forget(0, layout.PhraseSize)
}

// ClearStep empties step i.
func (p *Phrase) ClearStep(i int) {
	p.Steps[i] = EmptyStep()
	p.Remainder.Forget(i*layout.StepSize, layout.StepSize)
}

// SameSteps compares the steps only.
func (p *Phrase) SameSteps(o *Phrase) bool {
	return p.Steps == o.Steps
}

// Clone returns a deep copy.
func (p *Phrase) Clone() *Phrase {
	q := *p
	q.Remainder = p.Remainder.Clone()
	return &q
}

func DecodePhrase(c *cursor.Cursor, diags *codec.Diagnostics) (*Phrase, error) {
	p := &Phrase{}
	if err := decodeEntity(c, 0, layout.PhraseTable, p, diags); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Phrase) Encode() ([]byte, error) {
	return codec.Encode(layout.PhraseTable, p, p.Remainder)
}

type ChainStep struct {
	Phrase    uint8 `json:"phrase"`
	Transpose uint8 `json:"transpose"`
}

func (s ChainStep) IsEmpty() bool {
	return s.Phrase == Empty
}

type Chain struct {
	Steps [layout.NumSteps]ChainStep `json:"steps"`

	Remainder codec.Remainder `json:"-"`
}

func (ch *Chain) raw() *codec.Remainder { return &ch.Remainder }

func NewChain() *Chain {
	ch := &Chain{}
	ch.Clear()
	return ch
}

func (ch *Chain) IsEmpty() bool {
	for _, s := range ch.Steps {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

func (ch *Chain) Clear() {
	for i := range ch.Steps {
		ch.Steps[i] = ChainStep{Phrase: Empty}
	}
}

func (ch *Chain) Clone() *Chain {
	d := *ch
	d.Remainder = ch.Remainder.Clone()
	return &d
}

func DecodeChain(c *cursor.Cursor, diags *codec.Diagnostics) (*Chain, error) {
	ch := &Chain{}
	if err := decodeEntity(c, 0, layout.ChainTable, ch, diags); err != nil {
		return nil, err
	}
	return ch, nil
}

func (ch *Chain) Encode() ([]byte, error) {
	return codec.Encode(layout.ChainTable, ch, ch.Remainder)
}

type TableStep struct {
	Transpose uint8               `json:"transpose"`
	Velocity  uint8               `json:"velocity"`
	FX        [layout.NumFX]fx.FX `json:"fx"`
}

func (s TableStep) IsEmpty() bool {
	return s.Transpose == 0 && s.Velocity == Empty && fxEmpty(s.FX)
}

// Table is the instrument table. Tables below layout.NumInstruments belong
// to the instrument of the same number.
type Table struct {
	Steps [layout.NumSteps]TableStep `json:"steps"`

	Remainder codec.Remainder `json:"-"`
}

func (t *Table) raw() *codec.Remainder { return &t.Remainder }

func NewTable() *Table {
	t := &Table{}
	t.Clear()
	return t
}

func (t *Table) IsEmpty() bool {
	for _, s := range t.Steps {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

func (t *Table) Clear() {
	for i := range t.Steps {
		t.Steps[i] = TableStep{Velocity: Empty, FX: emptyFX()}
	}
}

func (t *Table) Clone() *Table {
	d := *t
	d.Remainder = t.Remainder.Clone()
	return &d
}

func DecodeTable(c *cursor.Cursor, diags *codec.Diagnostics) (*Table, error) {
	t := &Table{}
	if err := decodeEntity(c, 0, layout.TableTable, t, diags); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Encode() ([]byte, error) {
	return codec.Encode(layout.TableTable, t, t.Remainder)
}

// Groove is a list of step lengths in ticks, ending at the first 0xFF.
type Groove struct {
	Steps [layout.GrooveSize]uint8 `json:"steps"`

	Remainder codec.Remainder `json:"-"`
}

func (g *Groove) raw() *codec.Remainder { return &g.Remainder }

// NewGroove returns the default groove of six ticks per step.
func NewGroove() *Groove {
	g := &Groove{}
	for i := range g.Steps {
		g.Steps[i] = Empty
	}
	g.Steps[0], g.Steps[1] = 6, 6
	return g
}

// Active returns the steps before the first 0xFF.
func (g *Groove) Active() []uint8 {
	for i, s := range g.Steps {
		if s == Empty {
			return g.Steps[:i]
		}
	}
	return g.Steps[:]
}

// SongSteps is the song arrangement: 256 rows of one chain number per track.
type SongSteps struct {
	Steps [layout.SongStepsSize]uint8 `json:"steps"`

	Remainder codec.Remainder `json:"-"`
}

func (s *SongSteps) raw() *codec.Remainder { return &s.Remainder }

func NewSongSteps() *SongSteps {
	s := &SongSteps{}
	for i := range s.Steps {
		s.Steps[i] = Empty
	}
	return s
}

// At returns the chain of a track in a row.
func (s *SongSteps) At(row, track int) uint8 {
	return s.Steps[row*layout.NumTracks+track]
}

func (s *SongSteps) Set(row, track int, chain uint8) {
	s.Steps[row*layout.NumTracks+track] = chain
}

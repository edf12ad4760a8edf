package song

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/instrument"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/settings"
	"github.com/pkg/errors"
)

type MoveKind int

const (
	MoveKind_EQ MoveKind = iota
	MoveKind_Instrument
	MoveKind_Phrase
	MoveKind_Chain
)

func (k MoveKind) String() string {
	switch k {
	case MoveKind_EQ:
		return "eq"
	case MoveKind_Instrument:
		return "instrument"
	case MoveKind_Phrase:
		return "phrase"
	case MoveKind_Chain:
		return "chain"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Mapping renumbers the entities of one kind. Numbers not listed in Moved
// map to themselves unless an identical entity was found elsewhere.
type Mapping struct {
	Kind MoveKind `json:"kind"`
	// To is the destination number of every source number.
	To []uint8 `json:"to"`
	// Moved lists the source numbers which have to be copied.
	Moved []uint8 `json:"moved"`
}

func identity(kind MoveKind, n int) Mapping {
	m := Mapping{Kind: kind, To: make([]uint8, n)}
	for i := range m.To {
		m.To[i] = uint8(i)
	}
	return m
}

// Map returns the destination of v. Values outside the mapping, such as
// the empty sentinel, are kept.
func (m *Mapping) Map(v uint8) uint8 {
	if int(v) < len(m.To) {
		return m.To[v]
	}
	return v
}

// Move records that from is copied to to.
func (m *Mapping) Move(from, to uint8) {
	m.To[from] = to
	m.Moved = append(m.Moved, from)
}

func (m *Mapping) String() string {
	s := make([]string, len(m.Moved))
	for i, v := range m.Moved {
		s[i] = fmt.Sprintf("%s %02X => %02X", m.Kind, v, m.To[v])
	}
	return strings.Join(s, "\n")
}

// Remapper copies chains from one song to another together with the
// phrases, instruments, tables and EQs they use.
type Remapper struct {
	EQs         Mapping `json:"eqs"`
	Instruments Mapping `json:"instruments"`
	Phrases     Mapping `json:"phrases"`
	Chains      Mapping `json:"chains"`
}

// NewIdentity returns a remapper which moves nothing.
func NewIdentity() *Remapper {
	return &Remapper{
		EQs:         identity(MoveKind_EQ, layout.NumInstruments),
		Instruments: identity(MoveKind_Instrument, layout.NumInstruments),
		Phrases:     identity(MoveKind_Phrase, layout.NumPhrases),
		Chains:      identity(MoveKind_Chain, layout.NumChains),
	}
}

// allocate prefers the previous number, then a free slot above it, then any.
func allocate(used []bool, prev uint8) (uint8, bool) {
	p := int(prev)
	if p < len(used) && !used[p] {
		return prev, true
	}
	for i := p; i < len(used); i++ {
		if !used[i] {
			return uint8(i), true
		}
	}
	for i := range used {
		if !used[i] {
			return uint8(i), true
		}
	}
	return 0, false
}

// NewRemapper plans the copy of chains from one song to another. Entities
// identical to one already in to are reused. It fails when to runs out of
// slots.
func NewRemapper(from, to *Song, chains []uint8) (*Remapper, error) {
	r := NewIdentity()
	if err := r.allocateInstruments(from, to, chains); err != nil {
		return nil, err
	}
	if err := r.allocatePhrases(from, to, chains); err != nil {
		return nil, err
	}
	if err := r.allocateChains(from, to, chains); err != nil {
		return nil, err
	}
	return r, nil
}

// Chain returns the destination number of chain id.
func (r *Remapper) Chain(id uint8) uint8 {
	return r.Chains.Map(id)
}

func (r *Remapper) String() string {
	var s []string
	for _, m := range []*Mapping{&r.EQs, &r.Instruments, &r.Phrases, &r.Chains} {
		if 0 < len(m.Moved) {
			s = append(s, m.String())
		}
	}
	if len(s) == 0 {
		return "nothing to move"
	}
	return strings.Join(s, "\n")
}

// phrasesOf lists the phrases of chains in order of first use.
func phrasesOf(s *Song, chains []uint8) []uint8 {
	seen := map[uint8]bool{}
	var result []uint8
	for _, c := range chains {
		if layout.NumChains <= int(c) {
			continue
		}
		for _, st := range s.Chains[c].Steps {
			if layout.NumPhrases <= int(st.Phrase) || seen[st.Phrase] {
				continue
			}
			seen[st.Phrase] = true
			result = append(result, st.Phrase)
		}
	}
	return result
}

func cloneInstrument(inst instrument.Instrument, l *layout.Layout) (instrument.Instrument, error) {
	b, err := instrument.Encode(inst, l)
	if err != nil {
		return nil, err
	}
	return instrument.Decode(cursor.New(b, 0), l, nil)
}

func sameInstrument(a, b instrument.Instrument, l *layout.Layout) bool {
	x, err := instrument.Encode(a, l)
	if err != nil {
		return false
	}
	y, err := instrument.Encode(b, l)
	return err == nil && bytes.Equal(x, y)
}

func (r *Remapper) allocateInstruments(from, to *Song, chains []uint8) error {
	eqUsed := make([]bool, len(to.EQs))
	for _, inst := range to.Instruments {
		if eq, ok := instrument.AssociatedEQ(inst); ok && int(eq) < len(eqUsed) {
			eqUsed[eq] = true
		}
	}
	used := make([]bool, layout.NumInstruments)
	for i, inst := range to.Instruments {
		used[i] = !instrument.IsEmpty(inst)
	}
	eqSeen := map[uint8]bool{}
	seen := map[uint8]bool{}

	for _, p := range phrasesOf(from, chains) {
		for _, st := range from.Phrases[p].Steps {
			n := st.Instrument
			if layout.NumInstruments <= int(n) || seen[n] {
				continue
			}
			seen[n] = true
			inst, err := cloneInstrument(from.Instruments[n], from.Layout)
			if err != nil {
				return errors.Wrapf(err, "instrument %02X", n)
			}

			if eq, ok := instrument.AssociatedEQ(inst); ok && int(eq) < len(from.EQs) && 0 < len(to.EQs) {
				if !eqSeen[eq] {
					eqSeen[eq] = true
					if err := r.allocateEQ(from.EQs[eq], eq, to, eqUsed); err != nil {
						return errors.Wrapf(err, "instrument %02X", n)
					}
				}
				instrument.SetAssociatedEQ(inst, r.EQs.Map(eq))
			}

			found := false
			for i, t := range to.Instruments {
				if sameInstrument(inst, t, to.Layout) {
					r.Instruments.To[n] = uint8(i)
					used[i] = true
					found = true
					break
				}
			}
			if found {
				continue
			}
			slot, ok := allocate(used, n)
			if !ok {
				return errors.Errorf("no free instrument slot for instrument %02X", n)
			}
			used[slot] = true
			r.Instruments.Move(n, slot)
		}
	}
	return nil
}

func (r *Remapper) allocateEQ(eq *settings.EQ, n uint8, to *Song, used []bool) error {
	for i, t := range to.EQs {
		if t.Equal(eq) {
			r.EQs.To[n] = uint8(i)
			used[i] = true
			return nil
		}
	}
	slot, ok := allocate(used, n)
	if !ok {
		return errors.Errorf("no free EQ slot for EQ %02X", n)
	}
	used[slot] = true
	r.EQs.Move(n, slot)
	return nil
}

func (r *Remapper) mapPhrase(p *Phrase) *Phrase {
	q := p.Clone()
	for i := range q.Steps {
		q.Steps[i].Instrument = r.Instruments.Map(q.Steps[i].Instrument)
	}
	return q
}

func (r *Remapper) mapChain(ch *Chain) *Chain {
	d := ch.Clone()
	for i := range d.Steps {
		d.Steps[i].Phrase = r.Phrases.Map(d.Steps[i].Phrase)
	}
	return d
}

func (r *Remapper) allocatePhrases(from, to *Song, chains []uint8) error {
	used := make([]bool, layout.NumPhrases)
	for _, ch := range to.Chains {
		for _, st := range ch.Steps {
			if int(st.Phrase) < len(used) {
				used[st.Phrase] = true
			}
		}
	}
	for i, p := range to.Phrases {
		if !p.IsEmpty() {
			used[i] = true
		}
	}

	for _, n := range phrasesOf(from, chains) {
		p := r.mapPhrase(from.Phrases[n])
		found := false
		for i, t := range to.Phrases {
			if t.SameSteps(p) {
				r.Phrases.To[n] = uint8(i)
				used[i] = true
				found = true
				break
			}
		}
		if found {
			continue
		}
		slot, ok := allocate(used, n)
		if !ok {
			return errors.Errorf("no free phrase slot for phrase %02X", n)
		}
		used[slot] = true
		r.Phrases.Move(n, slot)
	}
	return nil
}

func (r *Remapper) allocateChains(from, to *Song, chains []uint8) error {
	used := make([]bool, layout.NumChains)
	for _, c := range to.SongSteps.Steps {
		if int(c) < len(used) {
			used[c] = true
		}
	}
	for i, ch := range to.Chains {
		if !ch.IsEmpty() {
			used[i] = true
		}
	}

	seen := map[uint8]bool{}
	for _, n := range chains {
		if layout.NumChains <= int(n) || seen[n] {
			continue
		}
		seen[n] = true
		ch := r.mapChain(from.Chains[n])
		found := false
		for i, t := range to.Chains {
			if t.Steps == ch.Steps {
				r.Chains.To[n] = uint8(i)
				used[i] = true
				found = true
				break
			}
		}
		if found {
			continue
		}
		slot, ok := allocate(used, n)
		if !ok {
			return errors.Errorf("no free chain slot for chain %02X", n)
		}
		used[slot] = true
		r.Chains.Move(n, slot)
	}
	return nil
}

func cloneEQ(e *settings.EQ) *settings.EQ {
	c := *e
	c.Remainder = e.Remainder.Clone()
	return &c
}

// Apply copies the planned entities from one song to another. Instrument
// tables travel with their instruments.
func (r *Remapper) Apply(from, to *Song) error {
	for _, n := range r.EQs.Moved {
		to.EQs[r.EQs.To[n]] = cloneEQ(from.EQs[n])
	}
	for _, n := range r.Instruments.Moved {
		inst, err := cloneInstrument(from.Instruments[n], from.Layout)
		if err != nil {
			return errors.Wrapf(err, "instrument %02X", n)
		}
		r.remapEQ(inst, len(from.EQs), len(to.EQs))
		dst := r.Instruments.To[n]
		to.Instruments[dst] = inst
		to.Tables[dst] = from.Tables[n].Clone()
	}
	for _, n := range r.Phrases.Moved {
		to.Phrases[r.Phrases.To[n]] = r.mapPhrase(from.Phrases[n])
	}
	for _, n := range r.Chains.Moved {
		to.Chains[r.Chains.To[n]] = r.mapChain(from.Chains[n])
	}
	return nil
}

func (r *Remapper) remapEQ(inst instrument.Instrument, fromEQs, toEQs int) {
	if eq, ok := instrument.AssociatedEQ(inst); ok && int(eq) < fromEQs && 0 < toEQs {
		instrument.SetAssociatedEQ(inst, r.EQs.Map(eq))
	}
}

// Renumber moves entities within one song and updates every reference,
// including the song rows.
func (r *Remapper) Renumber(s *Song) {
	for _, n := range r.EQs.Moved {
		dst := r.EQs.To[n]
		if dst != n && int(n) < len(s.EQs) && int(dst) < len(s.EQs) {
			s.EQs[dst] = cloneEQ(s.EQs[n])
			s.EQs[n].Clear()
		}
	}
	for _, n := range r.Instruments.Moved {
		dst := r.Instruments.To[n]
		if dst == n {
			continue
		}
		s.Instruments[dst] = s.Instruments[n]
		s.Tables[dst] = s.Tables[n]
		s.Instruments[n] = instrument.NewNone()
		s.Tables[n] = NewTable()
	}
	for _, inst := range s.Instruments {
		r.remapEQ(inst, len(s.EQs), len(s.EQs))
	}
	for _, n := range r.Phrases.Moved {
		dst := r.Phrases.To[n]
		if dst == n {
			continue
		}
		s.Phrases[dst] = s.Phrases[n]
		s.Phrases[n] = NewPhrase()
	}
	for i, p := range s.Phrases {
		s.Phrases[i] = r.mapPhrase(p)
	}
	for _, n := range r.Chains.Moved {
		dst := r.Chains.To[n]
		if dst == n {
			continue
		}
		s.Chains[dst] = s.Chains[n]
		s.Chains[n] = NewChain()
	}
	for i, ch := range s.Chains {
		s.Chains[i] = r.mapChain(ch)
	}
	for i, c := range s.SongSteps.Steps {
		s.SongSteps.Steps[i] = r.Chains.Map(c)
	}
}

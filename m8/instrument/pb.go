package instrument

import (
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/enums"
	"github.com/but80/m8kit/m8/layout"
	pb "github.com/but80/m8kit/pb/m8"
	"github.com/pkg/errors"
)

// ToPB converts inst in slot number to a protobuf message. Raw holds the
// slot encoded in l, so FromPB restores it exactly.
func ToPB(inst Instrument, number int, l *layout.Layout) (*pb.Instrument, error) {
	raw, err := Encode(inst, l)
	if err != nil {
		return nil, errors.Wrapf(err, "instrument %02X", number)
	}
	result := &pb.Instrument{
		Number: uint32(number),
		Kind:   pb.InstrumentKind(inst.Kind()),
		Raw:    raw,
	}
	if h := inst.Common(); h != nil {
		result.Name = h.Name
		result.Transpose = h.Transpose
		result.TableTick = uint32(h.TableTick)
	}
	if p, ok := Synth(inst); ok {
		result.Synth = &pb.SynthParams{
			Volume:       uint32(p.Volume),
			Pitch:        uint32(p.Pitch),
			FineTune:     uint32(p.FineTune),
			FilterType:   uint32(p.FilterType),
			Cutoff:       uint32(p.Cutoff),
			Resonance:    uint32(p.Resonance),
			Amp:          uint32(p.Amp),
			Limit:        uint32(p.Limit),
			Pan:          uint32(p.Pan),
			Dry:          uint32(p.Dry),
			Chorus:       uint32(p.Chorus),
			Delay:        uint32(p.Delay),
			Reverb:       uint32(p.Reverb),
			AssociatedEq: uint32(p.AssociatedEQ),
		}
	}
	if mods := inst.Modulators(); mods != nil {
		for _, m := range mods {
			params := make([]uint32, len(m.Params))
			for i, v := range m.Params {
				params[i] = uint32(v)
			}
			result.Mods = append(result.Mods, &pb.Modulator{
				Type:     uint32(m.Type),
				TypeName: m.Type.Name(),
				Dest:     uint32(m.Dest),
				Amount:   uint32(m.Amount),
				Params:   params,
			})
		}
	}
	for _, p := range inst.Params() {
		result.Params = append(result.Params, &pb.Param{Name: p.Name, Value: uint32(p.Value), Label: p.Domain.Label(p.Value)})
	}
	return result, nil
}

// FromPB restores an instrument from its raw bytes, or builds a default
// instrument of the message's kind and name when there are none.
func FromPB(p *pb.Instrument, l *layout.Layout) (Instrument, error) {
	if len(p.GetRaw()) == layout.InstrumentSize {
		return Decode(cursor.New(p.GetRaw(), 0), l, nil)
	}
	if p.GetRaw() != nil {
		return nil, errors.Errorf("instrument %02X has %d raw bytes", p.GetNumber(), len(p.GetRaw()))
	}
	inst := New(enums.InstrumentKind(p.GetKind()))
	if h := inst.Common(); h != nil {
		h.Name = p.GetName()
		h.Transpose = p.GetTranspose()
		h.TableTick = uint8(p.GetTableTick())
	}
	return inst, nil
}

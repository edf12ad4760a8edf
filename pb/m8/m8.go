package m8

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// InstrumentSize は、Raw に格納される1スロット分のバイト数です。
const InstrumentSize = 215

// Get は、番号 number の音色を取得します。
func (bank *InstrumentBank) Get(number int) (*Instrument, bool) {
	if bank == nil {
		return nil, false
	}
	for _, inst := range bank.Instruments {
		if inst != nil && int(inst.Number) == number {
			return inst, true
		}
	}
	return nil, false
}

// Bytes は、音色バンクをシリアライズします。
func (bank *InstrumentBank) Bytes() ([]byte, error) {
	b, err := proto.Marshal(bank)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling instrument bank")
	}
	return b, nil
}

// LoadBytes は、バイト列から音色バンクを読み込んで追加します。
func (bank *InstrumentBank) LoadBytes(b []byte) error {
	var loaded InstrumentBank
	if err := proto.Unmarshal(b, &loaded); err != nil {
		return errors.Wrap(err, "unmarshaling instrument bank")
	}
	if bank.Version == "" {
		bank.Version = loaded.Version
		bank.Layout = loaded.Layout
	}
	bank.Instruments = append(bank.Instruments, loaded.Instruments...)
	_ = bank.Normalize()
	return nil
}

// Normalize は、音色データから異常な値を排除し、正常化します。
// 異常が検出された音色の一覧を返します。
func (bank *InstrumentBank) Normalize() []*Instrument {
	if bank.Instruments == nil {
		bank.Instruments = []*Instrument{}
	}
	result := []*Instrument{}
	for i, inst := range bank.Instruments {
		if inst == nil {
			inst = &Instrument{Kind: InstrumentKind_NONE}
			bank.Instruments[i] = inst
		}
		if !inst.Normalize() {
			result = append(result, inst)
		}
	}
	return result
}

func normalizeUint32(ok *bool, target *uint32, min, max uint32) {
	if *target < min {
		*target = min
		*ok = false
	}
	if max < *target {
		*target = max
		*ok = false
	}
}

// Normalize は、音色データから異常な値を排除し、正常化します。
// 元から正常な音色だったときは true を返します。
func (inst *Instrument) Normalize() bool {
	ok := true
	normalizeUint32(&ok, &inst.Number, 0, 127)
	if _, known := InstrumentKind_name[int32(inst.Kind)]; !known {
		inst.Kind = InstrumentKind_NONE
		ok = false
	}
	if 12 < len(inst.Name) {
		inst.Name = inst.Name[:12]
		ok = false
	}
	normalizeUint32(&ok, &inst.TableTick, 0, 255)
	if inst.Raw != nil && len(inst.Raw) != InstrumentSize {
		inst.Raw = nil
		ok = false
	}
	if s := inst.Synth; s != nil {
		for _, v := range []*uint32{
			&s.Volume, &s.Pitch, &s.FineTune, &s.FilterType, &s.Cutoff, &s.Resonance, &s.Amp,
			&s.Limit, &s.Pan, &s.Dry, &s.Chorus, &s.Delay, &s.Reverb, &s.AssociatedEq,
		} {
			normalizeUint32(&ok, v, 0, 255)
		}
	}
	for _, m := range inst.Mods {
		if m == nil {
			continue
		}
		normalizeUint32(&ok, &m.Type, 0, 15)
		normalizeUint32(&ok, &m.Dest, 0, 15)
		normalizeUint32(&ok, &m.Amount, 0, 255)
		for i := range m.Params {
			normalizeUint32(&ok, &m.Params[i], 0, 255)
		}
	}
	return ok
}

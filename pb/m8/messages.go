package m8

// Message types of m8.proto. They carry no file descriptor; golang/protobuf
// marshals them through their struct tags.

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"
)

var _ = fmt.Errorf

const _ = proto.ProtoPackageIsVersion3

type InstrumentKind int32

const (
	InstrumentKind_WAVSYNTH   InstrumentKind = 0
	InstrumentKind_MACROSYNTH InstrumentKind = 1
	InstrumentKind_SAMPLER    InstrumentKind = 2
	InstrumentKind_MIDIOUT    InstrumentKind = 3
	InstrumentKind_FMSYNTH    InstrumentKind = 4
	InstrumentKind_HYPERSYNTH InstrumentKind = 5
	InstrumentKind_EXTERNAL   InstrumentKind = 6
	InstrumentKind_NONE       InstrumentKind = 255
)

var InstrumentKind_name = map[int32]string{
	0:   "WAVSYNTH",
	1:   "MACROSYNTH",
	2:   "SAMPLER",
	3:   "MIDIOUT",
	4:   "FMSYNTH",
	5:   "HYPERSYNTH",
	6:   "EXTERNAL",
	255: "NONE",
}

var InstrumentKind_value = map[string]int32{
	"WAVSYNTH":   0,
	"MACROSYNTH": 1,
	"SAMPLER":    2,
	"MIDIOUT":    3,
	"FMSYNTH":    4,
	"HYPERSYNTH": 5,
	"EXTERNAL":   6,
	"NONE":       255,
}

func (x InstrumentKind) String() string {
	return proto.EnumName(InstrumentKind_name, int32(x))
}

type Modulator struct {
	Type                 uint32   `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	TypeName             string   `protobuf:"bytes,2,opt,name=type_name,json=typeName,proto3" json:"type_name,omitempty"`
	Dest                 uint32   `protobuf:"varint,3,opt,name=dest,proto3" json:"dest,omitempty"`
	Amount               uint32   `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Params               []uint32 `protobuf:"varint,5,rep,packed,name=params,proto3" json:"params,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Modulator) Reset()         { *m = Modulator{} }
func (m *Modulator) String() string { return proto.CompactTextString(m) }
func (*Modulator) ProtoMessage()    {}

func (m *Modulator) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Modulator.Unmarshal(m, b)
}
func (m *Modulator) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Modulator.Marshal(b, m, deterministic)
}
func (m *Modulator) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Modulator.Merge(m, src)
}
func (m *Modulator) XXX_Size() int {
	return xxx_messageInfo_Modulator.Size(m)
}
func (m *Modulator) XXX_DiscardUnknown() {
	xxx_messageInfo_Modulator.DiscardUnknown(m)
}

var xxx_messageInfo_Modulator proto.InternalMessageInfo

func (m *Modulator) GetType() uint32 {
	if m != nil {
		return m.Type
	}
	return 0
}

func (m *Modulator) GetTypeName() string {
	if m != nil {
		return m.TypeName
	}
	return ""
}

func (m *Modulator) GetDest() uint32 {
	if m != nil {
		return m.Dest
	}
	return 0
}

func (m *Modulator) GetAmount() uint32 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Modulator) GetParams() []uint32 {
	if m != nil {
		return m.Params
	}
	return nil
}

type SynthParams struct {
	Volume               uint32   `protobuf:"varint,1,opt,name=volume,proto3" json:"volume,omitempty"`
	Pitch                uint32   `protobuf:"varint,2,opt,name=pitch,proto3" json:"pitch,omitempty"`
	FineTune             uint32   `protobuf:"varint,3,opt,name=fine_tune,json=fineTune,proto3" json:"fine_tune,omitempty"`
	FilterType           uint32   `protobuf:"varint,4,opt,name=filter_type,json=filterType,proto3" json:"filter_type,omitempty"`
	Cutoff               uint32   `protobuf:"varint,5,opt,name=cutoff,proto3" json:"cutoff,omitempty"`
	Resonance            uint32   `protobuf:"varint,6,opt,name=resonance,proto3" json:"resonance,omitempty"`
	Amp                  uint32   `protobuf:"varint,7,opt,name=amp,proto3" json:"amp,omitempty"`
	Limit                uint32   `protobuf:"varint,8,opt,name=limit,proto3" json:"limit,omitempty"`
	Pan                  uint32   `protobuf:"varint,9,opt,name=pan,proto3" json:"pan,omitempty"`
	Dry                  uint32   `protobuf:"varint,10,opt,name=dry,proto3" json:"dry,omitempty"`
	Chorus               uint32   `protobuf:"varint,11,opt,name=chorus,proto3" json:"chorus,omitempty"`
	Delay                uint32   `protobuf:"varint,12,opt,name=delay,proto3" json:"delay,omitempty"`
	Reverb               uint32   `protobuf:"varint,13,opt,name=reverb,proto3" json:"reverb,omitempty"`
	AssociatedEq         uint32   `protobuf:"varint,14,opt,name=associated_eq,json=associatedEq,proto3" json:"associated_eq,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SynthParams) Reset()         { *m = SynthParams{} }
func (m *SynthParams) String() string { return proto.CompactTextString(m) }
func (*SynthParams) ProtoMessage()    {}

func (m *SynthParams) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_SynthParams.Unmarshal(m, b)
}
func (m *SynthParams) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_SynthParams.Marshal(b, m, deterministic)
}
func (m *SynthParams) XXX_Merge(src proto.Message) {
	xxx_messageInfo_SynthParams.Merge(m, src)
}
func (m *SynthParams) XXX_Size() int {
	return xxx_messageInfo_SynthParams.Size(m)
}
func (m *SynthParams) XXX_DiscardUnknown() {
	xxx_messageInfo_SynthParams.DiscardUnknown(m)
}

var xxx_messageInfo_SynthParams proto.InternalMessageInfo

func (m *SynthParams) GetVolume() uint32 {
	if m != nil {
		return m.Volume
	}
	return 0
}

func (m *SynthParams) GetPitch() uint32 {
	if m != nil {
		return m.Pitch
	}
	return 0
}

func (m *SynthParams) GetFineTune() uint32 {
	if m != nil {
		return m.FineTune
	}
	return 0
}

func (m *SynthParams) GetFilterType() uint32 {
	if m != nil {
		return m.FilterType
	}
	return 0
}

func (m *SynthParams) GetCutoff() uint32 {
	if m != nil {
		return m.Cutoff
	}
	return 0
}

func (m *SynthParams) GetResonance() uint32 {
	if m != nil {
		return m.Resonance
	}
	return 0
}

func (m *SynthParams) GetAmp() uint32 {
	if m != nil {
		return m.Amp
	}
	return 0
}

func (m *SynthParams) GetLimit() uint32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

func (m *SynthParams) GetPan() uint32 {
	if m != nil {
		return m.Pan
	}
	return 0
}

func (m *SynthParams) GetDry() uint32 {
	if m != nil {
		return m.Dry
	}
	return 0
}

func (m *SynthParams) GetChorus() uint32 {
	if m != nil {
		return m.Chorus
	}
	return 0
}

func (m *SynthParams) GetDelay() uint32 {
	if m != nil {
		return m.Delay
	}
	return 0
}

func (m *SynthParams) GetReverb() uint32 {
	if m != nil {
		return m.Reverb
	}
	return 0
}

func (m *SynthParams) GetAssociatedEq() uint32 {
	if m != nil {
		return m.AssociatedEq
	}
	return 0
}

type Param struct {
	Name                 string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value                uint32   `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Label                string   `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Param) Reset()         { *m = Param{} }
func (m *Param) String() string { return proto.CompactTextString(m) }
func (*Param) ProtoMessage()    {}

func (m *Param) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Param.Unmarshal(m, b)
}
func (m *Param) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Param.Marshal(b, m, deterministic)
}
func (m *Param) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Param.Merge(m, src)
}
func (m *Param) XXX_Size() int {
	return xxx_messageInfo_Param.Size(m)
}
func (m *Param) XXX_DiscardUnknown() {
	xxx_messageInfo_Param.DiscardUnknown(m)
}

var xxx_messageInfo_Param proto.InternalMessageInfo

func (m *Param) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Param) GetValue() uint32 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *Param) GetLabel() string {
	if m != nil {
		return m.Label
	}
	return ""
}

type Instrument struct {
	Number               uint32         `protobuf:"varint,1,opt,name=number,proto3" json:"number,omitempty"`
	Kind                 InstrumentKind `protobuf:"varint,2,opt,name=kind,proto3,enum=m8.InstrumentKind" json:"kind,omitempty"`
	Name                 string         `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Transpose            bool           `protobuf:"varint,4,opt,name=transpose,proto3" json:"transpose,omitempty"`
	TableTick            uint32         `protobuf:"varint,5,opt,name=table_tick,json=tableTick,proto3" json:"table_tick,omitempty"`
	Synth                *SynthParams   `protobuf:"bytes,6,opt,name=synth,proto3" json:"synth,omitempty"`
	Mods                 []*Modulator   `protobuf:"bytes,7,rep,name=mods,proto3" json:"mods,omitempty"`
	Params               []*Param       `protobuf:"bytes,8,rep,name=params,proto3" json:"params,omitempty"`
	Raw                  []byte         `protobuf:"bytes,9,opt,name=raw,proto3" json:"raw,omitempty"`
	XXX_NoUnkeyedLiteral struct{}       `json:"-"`
	XXX_unrecognized     []byte         `json:"-"`
	XXX_sizecache        int32          `json:"-"`
}

func (m *Instrument) Reset()         { *m = Instrument{} }
func (m *Instrument) String() string { return proto.CompactTextString(m) }
func (*Instrument) ProtoMessage()    {}

func (m *Instrument) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Instrument.Unmarshal(m, b)
}
func (m *Instrument) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Instrument.Marshal(b, m, deterministic)
}
func (m *Instrument) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Instrument.Merge(m, src)
}
func (m *Instrument) XXX_Size() int {
	return xxx_messageInfo_Instrument.Size(m)
}
func (m *Instrument) XXX_DiscardUnknown() {
	xxx_messageInfo_Instrument.DiscardUnknown(m)
}

var xxx_messageInfo_Instrument proto.InternalMessageInfo

func (m *Instrument) GetNumber() uint32 {
	if m != nil {
		return m.Number
	}
	return 0
}

func (m *Instrument) GetKind() InstrumentKind {
	if m != nil {
		return m.Kind
	}
	return InstrumentKind_WAVSYNTH
}

func (m *Instrument) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Instrument) GetTranspose() bool {
	if m != nil {
		return m.Transpose
	}
	return false
}

func (m *Instrument) GetTableTick() uint32 {
	if m != nil {
		return m.TableTick
	}
	return 0
}

func (m *Instrument) GetSynth() *SynthParams {
	if m != nil {
		return m.Synth
	}
	return nil
}

func (m *Instrument) GetMods() []*Modulator {
	if m != nil {
		return m.Mods
	}
	return nil
}

func (m *Instrument) GetParams() []*Param {
	if m != nil {
		return m.Params
	}
	return nil
}

func (m *Instrument) GetRaw() []byte {
	if m != nil {
		return m.Raw
	}
	return nil
}

type InstrumentBank struct {
	Version              string        `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	Layout               string        `protobuf:"bytes,2,opt,name=layout,proto3" json:"layout,omitempty"`
	Instruments          []*Instrument `protobuf:"bytes,3,rep,name=instruments,proto3" json:"instruments,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *InstrumentBank) Reset()         { *m = InstrumentBank{} }
func (m *InstrumentBank) String() string { return proto.CompactTextString(m) }
func (*InstrumentBank) ProtoMessage()    {}

func (m *InstrumentBank) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_InstrumentBank.Unmarshal(m, b)
}
func (m *InstrumentBank) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_InstrumentBank.Marshal(b, m, deterministic)
}
func (m *InstrumentBank) XXX_Merge(src proto.Message) {
	xxx_messageInfo_InstrumentBank.Merge(m, src)
}
func (m *InstrumentBank) XXX_Size() int {
	return xxx_messageInfo_InstrumentBank.Size(m)
}
func (m *InstrumentBank) XXX_DiscardUnknown() {
	xxx_messageInfo_InstrumentBank.DiscardUnknown(m)
}

var xxx_messageInfo_InstrumentBank proto.InternalMessageInfo

func (m *InstrumentBank) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *InstrumentBank) GetLayout() string {
	if m != nil {
		return m.Layout
	}
	return ""
}

func (m *InstrumentBank) GetInstruments() []*Instrument {
	if m != nil {
		return m.Instruments
	}
	return nil
}

func init() {
	proto.RegisterEnum("m8.InstrumentKind", InstrumentKind_name, InstrumentKind_value)
	proto.RegisterType((*Modulator)(nil), "m8.Modulator")
	proto.RegisterType((*SynthParams)(nil), "m8.SynthParams")
	proto.RegisterType((*Param)(nil), "m8.Param")
	proto.RegisterType((*Instrument)(nil), "m8.Instrument")
	proto.RegisterType((*InstrumentBank)(nil), "m8.InstrumentBank")
}

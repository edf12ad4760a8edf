package settings

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/util"
	"github.com/pkg/errors"
)

// MixerSettings is the mixer page of a song.
// The analog input has a left and right channel, which are linked as one
// stereo input when the right volume is 0xFF.
type MixerSettings struct {
	MasterVolume uint8                   `json:"master_volume"`
	MasterLimit  uint8                   `json:"master_limit"`
	TrackVolume  [layout.NumTracks]uint8 `json:"track_volume"`
	ChorusVolume uint8                   `json:"chorus_volume"`
	DelayVolume  uint8                   `json:"delay_volume"`
	ReverbVolume uint8                   `json:"reverb_volume"`
	AnalogVolume [2]uint8                `json:"analog_volume"`
	USBVolume    uint8                   `json:"usb_volume"`
	AnalogChorus [2]uint8                `json:"analog_chorus"`
	AnalogDelay  [2]uint8                `json:"analog_delay"`
	AnalogReverb [2]uint8                `json:"analog_reverb"`
	USBChorus    uint8                   `json:"usb_chorus"`
	USBDelay     uint8                   `json:"usb_delay"`
	USBReverb    uint8                   `json:"usb_reverb"`
	DJFilter     uint8                   `json:"dj_filter"`
	DJPeak       uint8                   `json:"dj_peak"`
	DJFilterType uint8                   `json:"dj_filter_type"`

	Remainder codec.Remainder `json:"-"`
}

// InputMix is the send levels of one input channel.
type InputMix struct {
	Volume uint8 `json:"volume"`
	Chorus uint8 `json:"chorus"`
	Delay  uint8 `json:"delay"`
	Reverb uint8 `json:"reverb"`
}

func (m InputMix) String() string {
	return fmt.Sprintf("%02X %02X %02X %02X", m.Volume, m.Chorus, m.Delay, m.Reverb)
}

func (s *MixerSettings) raw() *codec.Remainder { return &s.Remainder }

func DecodeMixerSettings(c *cursor.Cursor, diags *codec.Diagnostics) (*MixerSettings, error) {
	s := &MixerSettings{}
	if err := decode(c, layout.MixerTable, s, diags); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MixerSettings) Encode() ([]byte, error) {
	return encode(layout.MixerTable, s)
}

// Stereo tells whether the analog inputs are linked.
func (s *MixerSettings) Stereo() bool {
	return s.AnalogVolume[1] == 0xFF
}

// Analog returns the mix of an analog input channel (0: left or stereo, 1: right).
func (s *MixerSettings) Analog(ch int) InputMix {
	return InputMix{s.AnalogVolume[ch], s.AnalogChorus[ch], s.AnalogDelay[ch], s.AnalogReverb[ch]}
}

func (s *MixerSettings) USB() InputMix {
	return InputMix{s.USBVolume, s.USBChorus, s.USBDelay, s.USBReverb}
}

func (s *MixerSettings) String() string {
	lines := []string{
		"MIXER",
		fmt.Sprintf("MASTER %02X LIMIT %02X", s.MasterVolume, s.MasterLimit),
		"TRACKS " + util.Hex(s.TrackVolume[:]),
		fmt.Sprintf("CHO %02X DEL %02X REV %02X", s.ChorusVolume, s.DelayVolume, s.ReverbVolume),
	}
	if s.Stereo() {
		lines = append(lines, "INPUT  "+s.Analog(0).String())
	} else {
		lines = append(lines, "INPUT L "+s.Analog(0).String(), "INPUT R "+s.Analog(1).String())
	}
	return strings.Join(append(lines,
		"USB    "+s.USB().String(),
		fmt.Sprintf("DJ FILTER %02X PEAK %02X TYPE %02X", s.DJFilter, s.DJPeak, s.DJFilterType),
	), "\n")
}

// EffectsSettings is the global chorus, delay and reverb. Delay and reverb
// filters exist only before 4.0 and stay zero otherwise.
type EffectsSettings struct {
	ChorusModDepth   uint8 `json:"chorus_mod_depth"`
	ChorusModFreq    uint8 `json:"chorus_mod_freq"`
	ChorusReverbSend uint8 `json:"chorus_reverb_send"`
	DelayHP          uint8 `json:"delay_hp"`
	DelayLP          uint8 `json:"delay_lp"`
	DelayTimeL       uint8 `json:"delay_time_l"`
	DelayTimeR       uint8 `json:"delay_time_r"`
	DelayFeedback    uint8 `json:"delay_feedback"`
	DelayWidth       uint8 `json:"delay_width"`
	DelayReverbSend  uint8 `json:"delay_reverb_send"`
	ReverbHP         uint8 `json:"reverb_hp"`
	ReverbLP         uint8 `json:"reverb_lp"`
	ReverbSize       uint8 `json:"reverb_size"`
	ReverbDamping    uint8 `json:"reverb_damping"`
	ReverbModDepth   uint8 `json:"reverb_mod_depth"`
	ReverbModFreq    uint8 `json:"reverb_mod_freq"`
	ReverbWidth      uint8 `json:"reverb_width"`

	Remainder codec.Remainder `json:"-"`
}

func (s *EffectsSettings) raw() *codec.Remainder { return &s.Remainder }

// DecodeEffects reads the effects with the table of a layout.
func DecodeEffects(c *cursor.Cursor, l *layout.Layout, diags *codec.Diagnostics) (*EffectsSettings, error) {
	s := &EffectsSettings{}
	if err := decode(c, l.Effects.Table, s, diags); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *EffectsSettings) Encode(l *layout.Layout) ([]byte, error) {
	if !l.Effects.Present() {
		return nil, errors.Errorf("layout %s has no effects settings", l)
	}
	return encode(l.Effects.Table, s)
}

// HasFilters tells whether delay and reverb filters are stored by l.
func HasFilters(l *layout.Layout) bool {
	_, ok := l.Effects.Table.Field("DelayHP")
	return ok
}

func (s *EffectsSettings) String() string {
	lines := []string{
		"EFFECTS",
		fmt.Sprintf("CHORUS MOD %02X/%02X REVERB %02X", s.ChorusModDepth, s.ChorusModFreq, s.ChorusReverbSend),
		fmt.Sprintf("DELAY  FILTER %02X %02X TIME %02X %02X FEEDBACK %02X WIDTH %02X REVERB %02X",
			s.DelayHP, s.DelayLP, s.DelayTimeL, s.DelayTimeR, s.DelayFeedback, s.DelayWidth, s.DelayReverbSend),
		fmt.Sprintf("REVERB FILTER %02X %02X SIZE %02X DAMP %02X MOD %02X/%02X WIDTH %02X",
			s.ReverbHP, s.ReverbLP, s.ReverbSize, s.ReverbDamping, s.ReverbModDepth, s.ReverbModFreq, s.ReverbWidth),
	}
	return strings.Join(lines, "\n")
}

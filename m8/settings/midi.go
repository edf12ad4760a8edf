package settings

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/util"
)

var transports = []string{"OFF", "PATTERN", "SONG"}

func transportName(v uint8) string {
	if int(v) < len(transports) {
		return transports[v]
	}
	return fmt.Sprintf("%02X", v)
}

// MidiSettings is the MIDI page of a song.
// Flags stay bytes so that values other than 0 and 1 survive a round trip.
type MidiSettings struct {
	ReceiveSync             uint8                   `json:"receive_sync"`
	ReceiveTransport        uint8                   `json:"receive_transport"`
	SendSync                uint8                   `json:"send_sync"`
	SendTransport           uint8                   `json:"send_transport"`
	RecordNoteChannel       uint8                   `json:"record_note_channel"`
	RecordNoteVelocity      uint8                   `json:"record_note_velocity"`
	RecordNoteDelayKill     uint8                   `json:"record_note_delay_kill"`
	ControlMapChannel       uint8                   `json:"control_map_channel"`
	SongRowCueChannel       uint8                   `json:"song_row_cue_channel"`
	TrackInputChannel       [layout.NumTracks]uint8 `json:"track_input_channel"`
	TrackInputInstrument    [layout.NumTracks]uint8 `json:"track_input_instrument"`
	TrackInputProgramChange uint8                   `json:"track_input_program_change"`
	TrackInputMode          uint8                   `json:"track_input_mode"`

	Remainder codec.Remainder `json:"-"`
}

func (s *MidiSettings) raw() *codec.Remainder { return &s.Remainder }

func DecodeMidiSettings(c *cursor.Cursor, diags *codec.Diagnostics) (*MidiSettings, error) {
	s := &MidiSettings{}
	if err := decode(c, layout.MidiSettingsTable, s, diags); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MidiSettings) Encode() ([]byte, error) {
	return encode(layout.MidiSettingsTable, s)
}

func (s *MidiSettings) String() string {
	return strings.Join([]string{
		"MIDI SETTINGS",
		fmt.Sprintf("RECEIVE SYNC      %s", onOff(s.ReceiveSync)),
		fmt.Sprintf("RECEIVE TRANSPORT %s", transportName(s.ReceiveTransport)),
		fmt.Sprintf("SEND SYNC         %s", onOff(s.SendSync)),
		fmt.Sprintf("SEND TRANSPORT    %s", transportName(s.SendTransport)),
		fmt.Sprintf("REC. NOTE CHAN    %02X", s.RecordNoteChannel),
		fmt.Sprintf("REC. VELOCITY     %s", onOff(s.RecordNoteVelocity)),
		fmt.Sprintf("REC. DELAY/KILL   %02X", s.RecordNoteDelayKill),
		fmt.Sprintf("CONTROL MAP CHAN  %02X", s.ControlMapChannel),
		fmt.Sprintf("SONG ROW CUE CHAN %02X", s.SongRowCueChannel),
		"TRACK CHANNELS    " + util.Hex(s.TrackInputChannel[:]),
		"TRACK INSTRUMENTS " + util.Hex(s.TrackInputInstrument[:]),
		fmt.Sprintf("PROGRAM CHANGE    %s", onOff(s.TrackInputProgramChange)),
		fmt.Sprintf("INPUT MODE        %02X", s.TrackInputMode),
	}, "\n")
}

// MidiMapping binds a MIDI controller to a parameter.
type MidiMapping struct {
	Channel       uint8 `json:"channel"`
	ControlNumber uint8 `json:"control_number"`
	Value         uint8 `json:"value"`
	Type          uint8 `json:"type"`
	ParamIndex    uint8 `json:"param_index"`
	Min           uint8 `json:"min"`
	Max           uint8 `json:"max"`

	Remainder codec.Remainder `json:"-"`
}

func (m *MidiMapping) raw() *codec.Remainder { return &m.Remainder }

func DecodeMidiMapping(c *cursor.Cursor, diags *codec.Diagnostics) (*MidiMapping, error) {
	m := &MidiMapping{}
	if err := decode(c, layout.MidiMappingTable, m, diags); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MidiMapping) Encode() ([]byte, error) {
	return encode(layout.MidiMappingTable, m)
}

// IsEmpty reports an unused mapping slot. Channel 0 means none.
func (m *MidiMapping) IsEmpty() bool {
	return m.Channel == 0
}

func (m *MidiMapping) String() string {
	if m.IsEmpty() {
		return "--"
	}
	return fmt.Sprintf("CH %02X CC %02X VAL %02X TYPE %02X PARAM %02X MIN %02X MAX %02X",
		m.Channel, m.ControlNumber, m.Value, m.Type, m.ParamIndex, m.Min, m.Max)
}

package enums

import (
	"encoding/json"
)

type EqType int

const (
	EqType_LowCut EqType = iota
	EqType_LowShelf
	EqType_Bell
	EqType_BandPass
	EqType_HiShelf
	EqType_HiCut
)

var eqTypeNames = []string{"LOWCUT", "LOWSHELF", "BELL", "BANDPASS", "HI.SHELF", "HI.CUT"}

func (t EqType) Name() string {
	if 0 <= t && int(t) < len(eqTypeNames) {
		return eqTypeNames[t]
	}
	return ""
}

func (t EqType) String() string {
	return name(eqTypeNames, int(t))
}

func (t EqType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name())
}

type EqMode int

const (
	EqMode_Stereo EqMode = iota
	EqMode_Mid
	EqMode_Side
	EqMode_Left
	EqMode_Right
)

var eqModeNames = []string{"STEREO", "MID", "SIDE", "LEFT", "RIGHT"}

func (m EqMode) Name() string {
	if 0 <= m && int(m) < len(eqModeNames) {
		return eqModeNames[m]
	}
	return ""
}

func (m EqMode) String() string {
	return name(eqModeNames, int(m))
}

func (m EqMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Name())
}

package enums

import (
	"encoding/json"
	"fmt"
)

// FXFamily selects the sequencer/mixer command list of a firmware generation.
type FXFamily int

const (
	FXFamily_V2 FXFamily = 2
	FXFamily_V3 FXFamily = 3
	FXFamily_V4 FXFamily = 4
)

var FXFamilies = []FXFamily{FXFamily_V2, FXFamily_V3, FXFamily_V4}

// FXFamilyOf returns the family for a firmware major version.
func FXFamilyOf(major uint8) FXFamily {
	switch {
	case 4 <= major:
		return FXFamily_V4
	case 3 <= major:
		return FXFamily_V3
	}
	return FXFamily_V2
}

func (f FXFamily) String() string {
	return fmt.Sprintf("V%d", int(f))
}

func (f FXFamily) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

package enums

import (
	"encoding/json"
	"fmt"
)

// Note is a step note number. 0xFF is empty and values from 0x80 are note off.
type Note int

const (
	Note_Empty Note = 0xFF
	Note_Off   Note = 0x80
)

var noteName = []string{
	"C-",
	"C#",
	"D-",
	"D#",
	"E-",
	"F-",
	"F#",
	"G-",
	"G#",
	"A-",
	"A#",
	"B-",
}

func (n Note) IsEmpty() bool {
	return n == Note_Empty
}

// String formats the note as the tracker shows it, e.g. "C-4".
func (n Note) String() string {
	switch {
	case n == Note_Empty:
		return "---"
	case Note_Off <= n:
		return "OFF"
	case n < 0:
		return "???"
	}
	return fmt.Sprintf("%s%X", noteName[n%12], int(n)/12+1)
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

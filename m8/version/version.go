package version

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/errs"
	"github.com/pkg/errors"
)

const (
	Magic      = "M8VERSION\x00"
	HeaderSize = 14
)

// Version is a firmware version triplet.
type Version struct {
	Major uint8 `json:"major"`
	Minor uint8 `json:"minor"`
	Patch uint8 `json:"patch"`
	// Build is the high nibble of the version MSB, kept for round trip.
	Build uint8 `json:"build,omitempty"`
}

func New(major, minor, patch uint8) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions by major, minor, then patch. Build is ignored.
func (v Version) Compare(o Version) int {
	a := int(v.Major)<<16 | int(v.Minor)<<8 | int(v.Patch)
	b := int(o.Major)<<16 | int(o.Minor)<<8 | int(o.Patch)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Version) AtLeast(major, minor uint8) bool {
	return v.Compare(Version{Major: major, Minor: minor}) >= 0
}

// Parse accepts "4", "4.1" or "4.1.2".
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) > 3 {
		return Version{}, errors.Errorf("invalid version %q", s)
	}
	n := [3]uint8{}
	for i, p := range parts {
		x, err := strconv.ParseUint(p, 10, 4)
		if err != nil {
			return Version{}, errors.Wrapf(err, "invalid version %q", s)
		}
		n[i] = uint8(x)
	}
	return New(n[0], n[1], n[2]), nil
}

// Header is the 14-byte prefix of every M8 file.
type Header struct {
	Version  Version  `json:"version"`
	Reserved [2]uint8 `json:"-"`
}

// ReadHeader parses the file header.
func ReadHeader(buf []byte) (Header, error) {
	h := Header{}
	c := cursor.New(buf, 0)
	magic, err := c.ReadBytes(len(Magic))
	if err != nil {
		return h, errors.Wrap(err, "reading header")
	}
	if string(magic) != Magic {
		return h, errs.New(errs.Kind_BadMagic, 0, "signature %q", strings.TrimRight(string(magic), "\x00"))
	}
	//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +0 |     MINOR     |     PATCH     |
	// +1 |     BUILD     |     MAJOR     |
	lsb, _ := c.ReadU8()
	msb, err := c.ReadU8()
	if err != nil {
		return h, errors.Wrap(err, "reading header")
	}
	h.Version = Version{
		Major: msb & 0x0F,
		Minor: lsb >> 4,
		Patch: lsb & 0x0F,
		Build: msb >> 4,
	}
	rsv, err := c.ReadBytes(2)
	if err != nil {
		return h, errors.Wrap(err, "reading header")
	}
	copy(h.Reserved[:], rsv)
	return h, nil
}

func (h Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, Magic...)
	v := h.Version
	b = append(b, v.Minor<<4|v.Patch&0x0F, v.Build<<4|v.Major&0x0F)
	return append(b, h.Reserved[:]...)
}

func (h Header) String() string {
	return fmt.Sprintf("M8 file version %s", h.Version)
}

// FileKind distinguishes the payload of a file.
type FileKind int

const (
	FileKind_Unknown FileKind = iota
	FileKind_Song
	FileKind_Instrument
	FileKind_Scale
	FileKind_Theme
)

// Minimum payload lengths (bytes after the header) used to classify a file.
const (
	MinSongPayload       = 0x1A970
	MinInstrumentPayload = 215
	MinScalePayload      = 42
	MinThemePayload      = 39
)

func (k FileKind) String() string {
	s := "unknown"
	switch k {
	case FileKind_Song:
		s = "Song"
	case FileKind_Instrument:
		s = "Instrument"
	case FileKind_Scale:
		s = "Scale"
	case FileKind_Theme:
		s = "Theme"
	}
	return s
}

func (k FileKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ParseFileKind accepts the names printed by String, case-insensitively.
func ParseFileKind(s string) (FileKind, error) {
	for _, k := range []FileKind{FileKind_Song, FileKind_Instrument, FileKind_Scale, FileKind_Theme} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	if s == "" {
		return FileKind_Unknown, nil
	}
	return FileKind_Unknown, errors.Errorf("unknown file kind %q", s)
}

// DetectKind classifies a file by its payload length. The ranges overlap:
// a theme padded to MinScalePayload bytes or more reads as a scale, so
// callers knowing the file name should prefer KindOfExtension.
func DetectKind(fileLen int) (FileKind, error) {
	n := fileLen - HeaderSize
	switch {
	case MinSongPayload <= n:
		return FileKind_Song, nil
	case MinInstrumentPayload <= n:
		return FileKind_Instrument, nil
	case MinScalePayload <= n:
		return FileKind_Scale, nil
	case MinThemePayload <= n:
		return FileKind_Theme, nil
	}
	return FileKind_Unknown, errs.New(errs.Kind_Truncated, fileLen, "%d byte payload is too short for any file kind", n)
}

// KindOfExtension returns the kind an M8 file name extension stands for,
// or FileKind_Unknown.
func KindOfExtension(name string) FileKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".m8s":
		return FileKind_Song
	case ".m8i":
		return FileKind_Instrument
	case ".m8n":
		return FileKind_Scale
	case ".m8t":
		return FileKind_Theme
	}
	return FileKind_Unknown
}

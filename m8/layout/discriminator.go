package layout

import (
	"github.com/but80/m8kit/m8/version"
)

// Discriminator may replace the layout chosen from the version header,
// looking at facts the header does not carry such as the payload length.
type Discriminator func(h version.Header, payloadLen int, kind version.FileKind, candidate *Layout) *Layout

// ExtendedEQ picks V4_0EQ128 for 4.0 songs long enough to hold 128 EQs.
// The version header cannot tell such files apart, so it is opt-in.
func ExtendedEQ(h version.Header, payloadLen int, kind version.FileKind, candidate *Layout) *Layout {
	if kind != version.FileKind_Song || candidate != V4_0 {
		return candidate
	}
	if V4_0EQ128.MinSongSize() <= payloadLen+version.HeaderSize {
		return V4_0EQ128
	}
	return candidate
}

// DefaultDiscriminators are applied by Select when none are given. Every
// 4.0 song reads as V4_0 unless the caller passes ExtendedEQ.
var DefaultDiscriminators = []Discriminator{}

// Select looks up the layout of a header and lets each discriminator
// override it in turn.
func Select(h version.Header, payloadLen int, kind version.FileKind, ds []Discriminator) (*Layout, error) {
	l, err := Lookup(h.Version)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		ds = DefaultDiscriminators
	}
	for _, d := range ds {
		l = d(h, payloadLen, kind, l)
	}
	return l, nil
}

package codec

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/util"
)

// Mask records, bit by bit, which parts of a span decoded into fields.
type Mask struct {
	bits []uint8
}

func NewMask(n int) *Mask {
	return &Mask{bits: make([]uint8, n)}
}

func (m *Mask) Len() int {
	return len(m.bits)
}

// Claim marks n whole bytes at off.
func (m *Mask) Claim(off, n int) {
	for i := off; i < off+n && i < len(m.bits); i++ {
		if 0 <= i {
			m.bits[i] = 0xFF
		}
	}
}

// ClaimBits marks some bits of the byte at off.
func (m *Mask) ClaimBits(off int, bits uint8) {
	if 0 <= off && off < len(m.bits) {
		m.bits[off] |= bits
	}
}

// Claimed returns the claimed bits of the byte at off.
func (m *Mask) Claimed(off int) uint8 {
	return m.bits[off]
}

// Remainder collects every byte of buf with an unclaimed bit.
func (m *Mask) Remainder(buf []byte) Remainder {
	rem := Remainder{Size: len(buf)}
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		data := make([]byte, end-start)
		for i := range data {
			data[i] = buf[start+i] &^ m.bits[start+i]
		}
		rem.Ranges = append(rem.Ranges, RawRange{Offset: start, Data: data})
		start = -1
	}
	for i := range buf {
		if m.bits[i] == 0xFF {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(buf))
	return rem
}

// RawRange is a run of bytes no field accounts for.
// Bits that belong to fields are zero in Data.
type RawRange struct {
	Offset int    `json:"offset"`
	Data   []byte `json:"data"`
}

func (r RawRange) End() int {
	return r.Offset + len(r.Data)
}

// Remainder holds the bytes of an encoded span that decoding did not
// interpret. Encoding starts from it, so those bytes come back unchanged.
// The zero value is an empty remainder.
type Remainder struct {
	Size   int        `json:"size"`
	Ranges []RawRange `json:"ranges,omitempty"`
}

// Apply copies the remainder into buf.
func (r Remainder) Apply(buf []byte) {
	for _, rr := range r.Ranges {
		if len(buf) <= rr.Offset {
			continue
		}
		copy(buf[rr.Offset:], rr.Data)
	}
}

// Covers tells whether the byte at off is part of the remainder.
func (r Remainder) Covers(off int) bool {
	for _, rr := range r.Ranges {
		if rr.Offset <= off && off < rr.End() {
			return true
		}
	}
	return false
}

// Forget drops the n bytes at off from the remainder, so that encoding
// writes the fields there even when they hold the 0xFF empty sentinel.
func (r *Remainder) Forget(off, n int) {
	var ranges []RawRange
	for _, rr := range r.Ranges {
		if rr.End() <= off || off+n <= rr.Offset {
			ranges = append(ranges, rr)
			continue
		}
		if rr.Offset < off {
			ranges = append(ranges, RawRange{Offset: rr.Offset, Data: append([]byte(nil), rr.Data[:off-rr.Offset]...)})
		}
		if off+n < rr.End() {
			ranges = append(ranges, RawRange{Offset: off + n, Data: append([]byte(nil), rr.Data[off+n-rr.Offset:]...)})
		}
	}
	r.Ranges = ranges
}

// Len returns the number of remainder bytes.
func (r Remainder) Len() int {
	n := 0
	for _, rr := range r.Ranges {
		n += len(rr.Data)
	}
	return n
}

func (r Remainder) IsEmpty() bool {
	return len(r.Ranges) == 0
}

// Bytes renders the remainder alone over a zeroed span of Size bytes.
func (r Remainder) Bytes() []byte {
	buf := make([]byte, r.Size)
	r.Apply(buf)
	return buf
}

func (r Remainder) String() string {
	if r.IsEmpty() {
		return "no remainder"
	}
	s := []string{fmt.Sprintf("%d remainder bytes in %d ranges:", r.Len(), len(r.Ranges))}
	for _, rr := range r.Ranges {
		s = append(s, fmt.Sprintf("  0x%05X %s", rr.Offset, util.Hex(rr.Data)))
	}
	return strings.Join(s, "\n")
}

// Clone returns a copy which shares no memory with r.
func (r Remainder) Clone() Remainder {
	c := Remainder{Size: r.Size}
	for _, rr := range r.Ranges {
		c.Ranges = append(c.Ranges, RawRange{Offset: rr.Offset, Data: append([]byte(nil), rr.Data...)})
	}
	return c
}

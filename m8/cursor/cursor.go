package cursor

import (
	"encoding/binary"
	"math"

	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/util"
)

// Cursor is a positional reader/writer over a fixed buffer.
// Base is added to every offset reported in errors, so that a cursor over an
// entity span still reports absolute file positions.
type Cursor struct {
	buf  []byte
	base int
	pos  int
}

func New(buf []byte, base int) *Cursor {
	return &Cursor{buf: buf, base: base}
}

func (c *Cursor) Bytes() []byte { return c.buf }
func (c *Cursor) Len() int      { return len(c.buf) }
func (c *Cursor) Pos() int      { return c.pos }
func (c *Cursor) Base() int     { return c.base }

func (c *Cursor) Seek(pos int) {
	c.pos = pos
}

// Sub returns a cursor over [off, off+n) of c.
func (c *Cursor) Sub(off, n int) (*Cursor, error) {
	if err := c.need(off, n); err != nil {
		return nil, err
	}
	return New(c.buf[off:off+n], c.base+off), nil
}

func (c *Cursor) need(off, n int) error {
	if off < 0 || n < 0 || len(c.buf) < off+n {
		return errs.New(errs.Kind_Truncated, c.base+off, "need %d bytes, buffer has %d", n, len(c.buf)-off)
	}
	return nil
}

func (c *Cursor) room(off, n int) error {
	if off < 0 || n < 0 || len(c.buf) < off+n {
		return errs.New(errs.Kind_FieldOverflow, c.base+off, "write of %d bytes past end of %d byte buffer", n, len(c.buf))
	}
	return nil
}

func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(c.pos, n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

// ReadString reads a width-byte string field and returns the value up to
// the first 0x00 or 0xFF, along with the number of value bytes.
func (c *Cursor) ReadString(width int) (string, int, error) {
	b, err := c.ReadBytes(width)
	if err != nil {
		return "", 0, err
	}
	n := StringLen(b)
	return util.DecodeLatin1(b[:n]), n, nil
}

// StringLen returns the length of b up to its terminator.
func StringLen(b []byte) int {
	for i, v := range b {
		if v == 0x00 || v == 0xFF {
			return i
		}
	}
	return len(b)
}

// ReadBits reads width bits starting at bit shift of the current byte.
func (c *Cursor) ReadBits(shift, width uint) (uint8, error) {
	v, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	return v >> shift & BitMask(width), nil
}

func BitMask(width uint) uint8 {
	return uint8(1<<width - 1)
}

func (c *Cursor) WriteBytes(b []byte) error {
	if err := c.room(c.pos, len(b)); err != nil {
		return err
	}
	copy(c.buf[c.pos:], b)
	c.pos += len(b)
	return nil
}

func (c *Cursor) WriteU8(v uint8) error {
	return c.WriteBytes([]byte{v})
}

func (c *Cursor) WriteU16(v uint16) error {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return c.WriteBytes(b)
}

func (c *Cursor) WriteU32(v uint32) error {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return c.WriteBytes(b)
}

func (c *Cursor) WriteF32(v float32) error {
	return c.WriteU32(math.Float32bits(v))
}

// WriteString writes s truncated to width. When s is shorter than width and
// the byte after it is not already a terminator, a 0x00 is written there.
// The rest of the field is left untouched.
func (c *Cursor) WriteString(s string, width int) error {
	b, err := util.EncodeLatin1(s)
	if err != nil {
		return errs.New(errs.Kind_FieldOverflow, c.base+c.pos, "%s", err.Error())
	}
	if err := c.room(c.pos, width); err != nil {
		return err
	}
	if width < len(b) {
		b = b[:width]
	}
	field := c.buf[c.pos : c.pos+width]
	copy(field, b)
	if len(b) < width && field[len(b)] != 0x00 && field[len(b)] != 0xFF {
		field[len(b)] = 0x00
	}
	c.pos += width
	return nil
}

// WriteBits replaces width bits at bit shift of the current byte.
func (c *Cursor) WriteBits(v uint8, shift, width uint) error {
	mask := BitMask(width)
	if v&^mask != 0 {
		return errs.New(errs.Kind_FieldOverflow, c.base+c.pos, "value 0x%X does not fit in %d bits", v, width)
	}
	if err := c.room(c.pos, 1); err != nil {
		return err
	}
	b := &c.buf[c.pos]
	*b = *b&^(mask<<shift) | v<<shift
	c.pos++
	return nil
}

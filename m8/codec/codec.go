package codec

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/layout"
	"github.com/pkg/errors"
)

// Decode fills dest, a pointer to a struct, from the span under c and
// returns what the fields did not account for.
func Decode(c *cursor.Cursor, t *layout.Table, dest interface{}, diags *Diagnostics) (Remainder, error) {
	if c.Len() < t.Size {
		return Remainder{}, errs.New(errs.Kind_Truncated, c.Base()+c.Len(), "%s needs %d bytes, span has %d", t.Name, t.Size, c.Len())
	}
	m := NewMask(c.Len())
	if err := DecodeFields(c, t, dest, m, diags); err != nil {
		return Remainder{}, err
	}
	return m.Remainder(c.Bytes()), nil
}

// DecodeFields is Decode with a caller-owned claim mask over the bytes of c.
func DecodeFields(c *cursor.Cursor, t *layout.Table, dest interface{}, m *Mask, diags *Diagnostics) error {
	root := reflect.ValueOf(dest)
	if root.Kind() != reflect.Ptr || root.IsNil() {
		return errors.Errorf("decoding %s: destination must be a non-nil pointer, got %T", t.Name, dest)
	}
	for _, f := range t.Fields {
		v, err := lookup(root, f.Name)
		if err != nil {
			return errors.Wrapf(err, "decoding %s", t.Name)
		}
		if err := decodeField(c, f, v, m, diags); err != nil {
			return errors.Wrapf(err, "decoding %s.%s", t.Name, f.Name)
		}
	}
	return nil
}

func decodeField(c *cursor.Cursor, f layout.Field, v reflect.Value, m *Mask, diags *Diagnostics) error {
	if f.Kind == layout.Kind_Const {
		return setInt(v, int64(f.Const))
	}
	c.Seek(f.Offset)
	switch f.Kind {
	case layout.Kind_U8:
		b, err := c.ReadU8()
		if err != nil {
			return err
		}
		m.Claim(f.Offset, 1)
		return setInt(v, int64(b))
	case layout.Kind_U16:
		n, err := c.ReadU16()
		if err != nil {
			return err
		}
		m.Claim(f.Offset, 2)
		return setInt(v, int64(n))
	case layout.Kind_U32:
		n, err := c.ReadU32()
		if err != nil {
			return err
		}
		m.Claim(f.Offset, 4)
		return setInt(v, int64(n))
	case layout.Kind_F32:
		x, err := c.ReadF32()
		if err != nil {
			return err
		}
		p, ok := v.Addr().Interface().(*float32)
		if !ok {
			return errors.Errorf("F32 field is %s", v.Type())
		}
		*p = x
		m.Claim(f.Offset, 4)
		return nil
	case layout.Kind_String:
		s, n, err := c.ReadString(f.Width)
		if err != nil {
			return err
		}
		if v.Kind() != reflect.String {
			return errors.Errorf("String field is %s", v.Type())
		}
		v.SetString(s)
		m.Claim(f.Offset, n)
		return nil
	case layout.Kind_Bytes:
		b, err := c.ReadBytes(f.Width)
		if err != nil {
			return err
		}
		if (v.Kind() != reflect.Array && v.Kind() != reflect.Slice) || v.Len() != f.Width {
			return errors.Errorf("Bytes field of %d is %s", f.Width, v.Type())
		}
		for i, x := range b {
			if err := setInt(v.Index(i), int64(x)); err != nil {
				return err
			}
		}
		m.Claim(f.Offset, f.Width)
		return nil
	case layout.Kind_Bits:
		x, err := c.ReadBits(f.Shift, uint(f.Width))
		if err != nil {
			return err
		}
		m.ClaimBits(f.Offset, f.BitMask())
		if f.Empty != 0 && x == cursor.BitMask(uint(f.Width)) {
			return setInt(v, int64(f.Empty))
		}
		return setInt(v, int64(x))
	case layout.Kind_Index:
		b, err := c.ReadU8()
		if err != nil {
			return err
		}
		if b != 0xFF && f.Cap <= int(b) {
			diags.Add(errs.Kind_OutOfRangeIndex, c.Base()+f.Offset, "%s = 0x%02X exceeds capacity %d", f.Name, b, f.Cap)
			return setInt(v, 0xFF)
		}
		m.Claim(f.Offset, 1)
		return setInt(v, int64(b))
	}
	return errors.Errorf("unknown field kind %s", f.Kind)
}

// Encode writes src into a fresh span of t.Size bytes laid over rem.
func Encode(t *layout.Table, src interface{}, rem Remainder) ([]byte, error) {
	buf := make([]byte, t.Size)
	rem.Apply(buf)
	if err := EncodeFields(cursor.New(buf, 0), t, src, rem); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeFields writes every field of src into the bytes under c, which must
// already hold rem.
func EncodeFields(c *cursor.Cursor, t *layout.Table, src interface{}, rem Remainder) error {
	root := reflect.ValueOf(src)
	if root.Kind() != reflect.Ptr || root.IsNil() {
		return errors.Errorf("encoding %s: source must be a non-nil pointer, got %T", t.Name, src)
	}
	for _, f := range t.Fields {
		if f.Kind == layout.Kind_Const {
			continue
		}
		v, err := lookup(root, f.Name)
		if err != nil {
			return errors.Wrapf(err, "encoding %s", t.Name)
		}
		if err := encodeField(c, f, v, rem); err != nil {
			return errors.Wrapf(err, "encoding %s.%s", t.Name, f.Name)
		}
	}
	return nil
}

func encodeField(c *cursor.Cursor, f layout.Field, v reflect.Value, rem Remainder) error {
	c.Seek(f.Offset)
	overflow := func(x int64) error {
		return errs.New(errs.Kind_FieldOverflow, c.Base()+f.Offset, "%s = %d does not fit in %s", f.Name, x, f.Kind)
	}
	switch f.Kind {
	case layout.Kind_U8, layout.Kind_Index:
		x, err := getInt(v)
		if err != nil {
			return err
		}
		if x < 0 || 0xFF < x {
			return overflow(x)
		}
		if f.Kind == layout.Kind_Index {
			if x == 0xFF && rem.Covers(f.Offset) {
				return nil
			}
			if x != 0xFF && int64(f.Cap) <= x {
				return errs.New(errs.Kind_OutOfRangeIndex, c.Base()+f.Offset, "%s = %d exceeds capacity %d", f.Name, x, f.Cap)
			}
		}
		return c.WriteU8(uint8(x))
	case layout.Kind_U16:
		x, err := getInt(v)
		if err != nil {
			return err
		}
		if x < 0 || 0xFFFF < x {
			return overflow(x)
		}
		return c.WriteU16(uint16(x))
	case layout.Kind_U32:
		x, err := getInt(v)
		if err != nil {
			return err
		}
		if x < 0 || 0xFFFFFFFF < x {
			return overflow(x)
		}
		return c.WriteU32(uint32(x))
	case layout.Kind_F32:
		p, ok := v.Addr().Interface().(*float32)
		if !ok {
			return errors.Errorf("F32 field is %s", v.Type())
		}
		return c.WriteF32(*p)
	case layout.Kind_String:
		if v.Kind() != reflect.String {
			return errors.Errorf("String field is %s", v.Type())
		}
		return c.WriteString(v.String(), f.Width)
	case layout.Kind_Bytes:
		if (v.Kind() != reflect.Array && v.Kind() != reflect.Slice) || v.Len() != f.Width {
			return errors.Errorf("Bytes field of %d is %s", f.Width, v.Type())
		}
		b := make([]byte, f.Width)
		for i := range b {
			x, err := getInt(v.Index(i))
			if err != nil {
				return err
			}
			if x < 0 || 0xFF < x {
				return overflow(x)
			}
			b[i] = uint8(x)
		}
		return c.WriteBytes(b)
	case layout.Kind_Bits:
		x, err := getInt(v)
		if err != nil {
			return err
		}
		if f.Empty != 0 && x == int64(f.Empty) {
			x = int64(cursor.BitMask(uint(f.Width)))
		}
		if x < 0 || int64(cursor.BitMask(uint(f.Width))) < x {
			return overflow(x)
		}
		return c.WriteBits(uint8(x), f.Shift, uint(f.Width))
	}
	return errors.Errorf("unknown field kind %s", f.Kind)
}

// lookup resolves a dotted struct path. Numeric parts index arrays.
func lookup(v reflect.Value, path string) (reflect.Value, error) {
	for _, p := range strings.Split(path, ".") {
		for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		if i, err := strconv.Atoi(p); err == nil {
			if v.Kind() != reflect.Array && v.Kind() != reflect.Slice {
				return v, errors.Errorf("path %s: %s is not indexable", path, v.Type())
			}
			if i < 0 || v.Len() <= i {
				return v, errors.Errorf("path %s: index %d out of %d", path, i, v.Len())
			}
			v = v.Index(i)
			continue
		}
		if v.Kind() != reflect.Struct {
			return v, errors.Errorf("path %s: %s has no field %s", path, v.Type(), p)
		}
		f := v.FieldByName(p)
		if !f.IsValid() {
			return v, errors.Errorf("path %s: %s has no field %s", path, v.Type(), p)
		}
		v = f
	}
	return v, nil
}

func setInt(v reflect.Value, x int64) error {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(x))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(x)
	case reflect.Bool:
		v.SetBool(x != 0)
	default:
		return errors.Errorf("cannot store an integer in %s", v.Type())
	}
	return nil
}

func getInt(v reflect.Value) (int64, error) {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x := v.Uint()
		if 1<<62 < x {
			return 0, errors.Errorf("value %d of %s too large", x, v.Type())
		}
		return int64(x), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errors.Errorf("cannot read an integer from %s", v.Type())
}

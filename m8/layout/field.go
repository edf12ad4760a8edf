package layout

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tells the codec how a field is stored.
type Kind int

const (
	Kind_U8 Kind = iota
	Kind_U16
	Kind_U32
	Kind_F32
	// Kind_String is a Latin-1 string ending at the first 0x00 or 0xFF.
	Kind_String
	// Kind_Bytes copies Width bytes into a byte array.
	Kind_Bytes
	// Kind_Bits is a Width-bit value at bit Shift of one byte.
	Kind_Bits
	// Kind_Index is a reference below Cap, or the 0xFF empty sentinel.
	Kind_Index
	// Kind_Const occupies no bytes and decodes to Const.
	Kind_Const
)

func (k Kind) String() string {
	switch k {
	case Kind_U8:
		return "U8"
	case Kind_U16:
		return "U16"
	case Kind_U32:
		return "U32"
	case Kind_F32:
		return "F32"
	case Kind_String:
		return "String"
	case Kind_Bytes:
		return "Bytes"
	case Kind_Bits:
		return "Bits"
	case Kind_Index:
		return "Index"
	case Kind_Const:
		return "Const"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Field places one struct field within an entity span.
// Name is a dotted struct path such as "Steps.3.FX.1.Command"; numeric parts
// index arrays.
type Field struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Width  int    `json:"width,omitempty"`
	Kind   Kind   `json:"kind"`
	Shift  uint   `json:"shift,omitempty"`
	Cap    int    `json:"cap,omitempty"`
	Const  int    `json:"const,omitempty"`
	// Empty, when set, is the in-memory value of a Bits field whose bits are all ones.
	Empty int `json:"empty,omitempty"`
}

// Size returns the number of bytes the field spans.
func (f Field) Size() int {
	switch f.Kind {
	case Kind_U16:
		return 2
	case Kind_U32, Kind_F32:
		return 4
	case Kind_String, Kind_Bytes:
		return f.Width
	case Kind_Const:
		return 0
	}
	return 1
}

func (f Field) End() int {
	return f.Offset + f.Size()
}

// BitMask returns the bits of its byte the field owns.
func (f Field) BitMask() uint8 {
	if f.Kind == Kind_Bits {
		return uint8(1<<uint(f.Width)-1) << f.Shift
	}
	return 0xFF
}

func (f Field) String() string {
	switch f.Kind {
	case Kind_Bits:
		return fmt.Sprintf("%s @0x%X.%d:%d Bits", f.Name, f.Offset, f.Shift, f.Width)
	case Kind_Const:
		return fmt.Sprintf("%s = %d", f.Name, f.Const)
	}
	return fmt.Sprintf("%s @0x%X+%d %s", f.Name, f.Offset, f.Size(), f.Kind)
}

func U8(name string, off int) Field {
	return Field{Name: name, Offset: off, Kind: Kind_U8}
}

func U16(name string, off int) Field {
	return Field{Name: name, Offset: off, Kind: Kind_U16}
}

func U32(name string, off int) Field {
	return Field{Name: name, Offset: off, Kind: Kind_U32}
}

func F32(name string, off int) Field {
	return Field{Name: name, Offset: off, Kind: Kind_F32}
}

func String(name string, off, width int) Field {
	return Field{Name: name, Offset: off, Width: width, Kind: Kind_String}
}

func Bytes(name string, off, width int) Field {
	return Field{Name: name, Offset: off, Width: width, Kind: Kind_Bytes}
}

func Bits(name string, off int, shift, width uint) Field {
	return Field{Name: name, Offset: off, Width: int(width), Shift: shift, Kind: Kind_Bits}
}

// WithEmpty maps the all-ones value of a Bits field to v and back.
func (f Field) WithEmpty(v int) Field {
	f.Empty = v
	return f
}

func Index(name string, off, cap int) Field {
	return Field{Name: name, Offset: off, Cap: cap, Kind: Kind_Index}
}

func Const(name string, v int) Field {
	return Field{Name: name, Kind: Kind_Const, Const: v}
}

// Repeat lays out count copies of sub, stride bytes apart, under prefix.N.
// An empty sub-field name addresses the array element itself.
func Repeat(prefix string, count, stride int, sub ...Field) []Field {
	result := make([]Field, 0, count*len(sub))
	for i := 0; i < count; i++ {
		p := join(prefix, strconv.Itoa(i))
		for _, f := range sub {
			f.Name = join(p, f.Name)
			if f.Kind != Kind_Const {
				f.Offset += i * stride
			}
			result = append(result, f)
		}
	}
	return result
}

// At moves fields by base bytes.
func At(base int, fields ...Field) []Field {
	result := make([]Field, len(fields))
	for i, f := range fields {
		if f.Kind != Kind_Const {
			f.Offset += base
		}
		result[i] = f
	}
	return result
}

// Prefix places fields under a struct path prefix.
func Prefix(prefix string, fields ...Field) []Field {
	result := make([]Field, len(fields))
	for i, f := range fields {
		f.Name = join(prefix, f.Name)
		result[i] = f
	}
	return result
}

func join(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "." + b
}

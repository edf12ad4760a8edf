package errs

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies codec failures.
type Kind int

const (
	Kind_None Kind = iota
	// Kind_BadMagic: the header signature does not match.
	Kind_BadMagic
	// Kind_UnsupportedVersion: no layout table exists for the version.
	Kind_UnsupportedVersion
	// Kind_Truncated: the buffer ends before a field the layout requires.
	Kind_Truncated
	// Kind_FieldOverflow: a value does not fit its destination.
	Kind_FieldOverflow
	// Kind_OutOfRangeIndex: a reference exceeds the declared capacity. Recovered.
	Kind_OutOfRangeIndex
	// Kind_UnknownCode: a code the catalog does not name. Recovered.
	Kind_UnknownCode
)

func (k Kind) String() string {
	switch k {
	case Kind_None:
		return "None"
	case Kind_BadMagic:
		return "BadMagic"
	case Kind_UnsupportedVersion:
		return "UnsupportedVersion"
	case Kind_Truncated:
		return "Truncated"
	case Kind_FieldOverflow:
		return "FieldOverflow"
	case Kind_OutOfRangeIndex:
		return "OutOfRangeIndex"
	case Kind_UnknownCode:
		return "UnknownCode"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Fatal reports whether decoding must stop on this kind.
func (k Kind) Fatal() bool {
	switch k {
	case Kind_OutOfRangeIndex, Kind_UnknownCode:
		return false
	}
	return true
}

// Error is the typed error returned by every m8 package.
// Offset is the absolute byte position, or -1 when it does not apply.
type Error struct {
	Kind   Kind   `json:"kind"`
	Offset int    `json:"offset"`
	Detail string `json:"detail"`
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s at 0x%X: %s", e.Kind, e.Offset, e.Detail)
}

// New returns an *Error of the given kind with a stack trace attached.
func New(kind Kind, offset int, format string, args ...interface{}) error {
	return errors.WithStack(&Error{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	})
}

// As extracts the *Error under any pkg/errors wrapping.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	e, ok := errors.Cause(err).(*Error)
	return e, ok
}

// KindOf returns the kind of err, or Kind_None for foreign errors.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return Kind_None
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

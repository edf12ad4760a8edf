package codec

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/log"
)

// Diagnostics collects non-fatal findings of a decode, such as clamped
// indices and unknown instrument tags.
type Diagnostics []errs.Error

// Add records a finding and logs it as a warning. A nil receiver only logs.
func (d *Diagnostics) Add(kind errs.Kind, offset int, format string, args ...interface{}) {
	e := errs.Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
	log.Warnf("%s", e.Error())
	if d != nil {
		*d = append(*d, e)
	}
}

// Count returns the number of findings of a kind.
func (d Diagnostics) Count(kind errs.Kind) int {
	n := 0
	for _, e := range d {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (d Diagnostics) String() string {
	s := make([]string, len(d))
	for i, e := range d {
		s[i] = e.Error()
	}
	return strings.Join(s, "\n")
}

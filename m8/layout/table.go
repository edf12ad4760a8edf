package layout

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/util"
)

// Table is the field table of one entity: pure data.
type Table struct {
	Name   string  `json:"name"`
	Size   int     `json:"size"`
	Fields []Field `json:"fields"`
}

// NewTable concatenates field groups. It panics if a field does not fit in
// size, since tables are built at init.
func NewTable(name string, size int, groups ...[]Field) *Table {
	t := &Table{Name: name, Size: size}
	for _, g := range groups {
		t.Fields = append(t.Fields, g...)
	}
	for _, f := range t.Fields {
		if f.Offset < 0 || size < f.End() {
			panic(fmt.Sprintf("layout %s: field %s exceeds %d bytes", name, f, size))
		}
	}
	return t
}

// Field finds a field by its struct path.
func (t *Table) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (t *Table) String() string {
	s := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		s[i] = f.String()
	}
	return fmt.Sprintf("%s (%d bytes):\n%s", t.Name, t.Size, util.Indent(strings.Join(s, "\n"), "\t"))
}

// Section is a run of Count same-sized entities at an absolute song offset.
type Section struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Count  int    `json:"count"`
	Stride int    `json:"stride"`
	Table  *Table `json:"-"`
}

func section(name string, off, count int, t *Table) Section {
	return Section{Name: name, Offset: off, Count: count, Stride: t.Size, Table: t}
}

func (s Section) At(i int) int {
	return s.Offset + i*s.Stride
}

func (s Section) End() int {
	return s.At(s.Count)
}

func (s Section) Present() bool {
	return 0 < s.Count
}

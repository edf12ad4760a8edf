package enums

import "fmt"

// Domain is a named value table used to label a parameter byte.
type Domain struct {
	Name  string
	Names []string
}

// Label returns the name of v, or its hex value when v is out of the table.
func (d *Domain) Label(v uint8) string {
	if d == nil {
		return fmt.Sprintf("%02X", v)
	}
	if int(v) < len(d.Names) {
		return d.Names[v]
	}
	return fmt.Sprintf("%02X", v)
}

// Has reports whether v is named by the table.
func (d *Domain) Has(v uint8) bool {
	return d != nil && int(v) < len(d.Names)
}

func (d *Domain) String() string {
	if d == nil {
		return "raw"
	}
	return d.Name
}

func name(names []string, v int) string {
	if 0 <= v && v < len(names) {
		return fmt.Sprintf("%s(%d)", names[v], v)
	}
	return fmt.Sprintf("unknown(%d)", v)
}

package settings

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/layout"
)

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Theme is the 13 screen colors of a theme file.
type Theme struct {
	Background  RGB `json:"background"`
	TextEmpty   RGB `json:"text_empty"`
	TextInfo    RGB `json:"text_info"`
	TextDefault RGB `json:"text_default"`
	TextValue   RGB `json:"text_value"`
	TextTitle   RGB `json:"text_title"`
	PlayMarker  RGB `json:"play_marker"`
	Cursor      RGB `json:"cursor"`
	Selection   RGB `json:"selection"`
	ScopeSlider RGB `json:"scope_slider"`
	MeterLow    RGB `json:"meter_low"`
	MeterMid    RGB `json:"meter_mid"`
	MeterPeak   RGB `json:"meter_peak"`

	Remainder codec.Remainder `json:"-"`
}

func (t *Theme) raw() *codec.Remainder { return &t.Remainder }

func DecodeTheme(c *cursor.Cursor, diags *codec.Diagnostics) (*Theme, error) {
	t := &Theme{}
	if err := decode(c, layout.ThemeTable, t, diags); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Theme) Encode() ([]byte, error) {
	return encode(layout.ThemeTable, t)
}

// Color returns a color by its name in layout.ThemeColors.
func (t *Theme) Color(name string) (RGB, bool) {
	f := reflect.ValueOf(t).Elem().FieldByName(name)
	if !f.IsValid() {
		return RGB{}, false
	}
	c, ok := f.Interface().(RGB)
	return c, ok
}

func (t *Theme) String() string {
	lines := make([]string, len(layout.ThemeColors))
	for i, name := range layout.ThemeColors {
		c, _ := t.Color(name)
		lines[i] = fmt.Sprintf("%-12s %s", strings.ToUpper(name), c)
	}
	return strings.Join(lines, "\n")
}

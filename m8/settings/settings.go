package settings

import (
	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/layout"
	"github.com/pkg/errors"
)

// record is a settings entity which keeps the bytes its table leaves alone.
type record interface {
	raw() *codec.Remainder
}

func decode(c *cursor.Cursor, t *layout.Table, r record, diags *codec.Diagnostics) error {
	span, err := c.Sub(0, t.Size)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", t.Name)
	}
	rem, err := codec.Decode(span, t, r, diags)
	if err != nil {
		return err
	}
	*r.raw() = rem
	return nil
}

func encode(t *layout.Table, r record) ([]byte, error) {
	return codec.Encode(t, r, *r.raw())
}

func onOff(v uint8) string {
	if v == 0 {
		return "OFF"
	}
	return "ON"
}

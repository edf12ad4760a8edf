package file

import (
	"fmt"
	"strings"

	"github.com/but80/m8kit/m8/codec"
	"github.com/but80/m8kit/m8/cursor"
	"github.com/but80/m8kit/m8/errs"
	"github.com/but80/m8kit/m8/instrument"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/settings"
	"github.com/but80/m8kit/m8/song"
	"github.com/but80/m8kit/m8/version"
	"github.com/pkg/errors"
)

// Options controls how a file is decoded. The zero value detects the kind
// from the length and the layout from the header.
type Options struct {
	// Kind forces the payload kind. Left unknown, the kind follows from the
	// payload length, which cannot tell a padded theme from a scale.
	Kind version.FileKind
	// Layout forces the layout, skipping lookup and discriminators.
	Layout *layout.Layout
	// Discriminators replace layout.DefaultDiscriminators when not nil.
	Discriminators []layout.Discriminator
}

// File is a decoded M8 file. Exactly one payload is set, according to Kind.
type File struct {
	Header version.Header  `json:"header"`
	Kind   version.FileKind `json:"kind"`
	Layout *layout.Layout   `json:"layout,omitempty"`

	Song       *song.Song            `json:"song,omitempty"`
	Instrument instrument.Instrument `json:"instrument,omitempty"`
	// EQ is the instrument EQ stored in instrument files from 4.0 on.
	EQ    *settings.EQ    `json:"eq,omitempty"`
	Scale *settings.Scale `json:"scale,omitempty"`
	Theme *settings.Theme `json:"theme,omitempty"`

	Diagnostics codec.Diagnostics `json:"diagnostics,omitempty"`
	Size        int               `json:"size"`
	Remainder   codec.Remainder   `json:"-"`
}

// Decode parses a whole file.
func Decode(buf []byte, opts *Options) (*File, error) {
	if opts == nil {
		opts = &Options{}
	}
	h, err := version.ReadHeader(buf)
	if err != nil {
		return nil, err
	}
	kind := opts.Kind
	if kind == version.FileKind_Unknown {
		if kind, err = version.DetectKind(len(buf)); err != nil {
			return nil, err
		}
	}
	f := &File{Header: h, Kind: kind, Size: len(buf)}
	log.Infof("%s, %s file of %d bytes", h, kind, len(buf))

	if kind == version.FileKind_Song || kind == version.FileKind_Instrument {
		f.Layout = opts.Layout
		if f.Layout == nil {
			f.Layout, err = layout.Select(h, len(buf)-version.HeaderSize, kind, opts.Discriminators)
			if err != nil {
				return nil, err
			}
		}
		log.Debugf("layout %s", f.Layout)
	}

	switch kind {
	case version.FileKind_Song:
		s, err := song.Decode(buf, f.Layout, &f.Diagnostics)
		if err != nil {
			return nil, errors.Wrap(err, "decoding song")
		}
		f.Song = s
	case version.FileKind_Instrument:
		err = f.decodeInstrument(buf)
	case version.FileKind_Scale:
		err = f.decodePayload(buf, layout.ScaleSize, func(c *cursor.Cursor) (err error) {
			f.Scale, err = settings.DecodeScale(c, &f.Diagnostics)
			return
		})
	case version.FileKind_Theme:
		err = f.decodePayload(buf, layout.ThemeSize, func(c *cursor.Cursor) (err error) {
			f.Theme, err = settings.DecodeTheme(c, &f.Diagnostics)
			return
		})
	default:
		err = errors.Errorf("cannot decode %s files", kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// decodePayload decodes the size bytes after the header with dec and keeps
// everything else in the file remainder.
func (f *File) decodePayload(buf []byte, size int, dec func(c *cursor.Cursor) error) error {
	return f.decodeSpans(buf, []span{{version.HeaderSize, size, dec}})
}

type span struct {
	off, size int
	dec       func(c *cursor.Cursor) error
}

func (f *File) decodeSpans(buf []byte, spans []span) error {
	m := codec.NewMask(len(buf))
	m.Claim(0, version.HeaderSize)
	c := cursor.New(buf, 0)
	for _, s := range spans {
		sub, err := c.Sub(s.off, s.size)
		if err != nil {
			return errors.Wrapf(err, "decoding %s", f.Kind)
		}
		if err := s.dec(sub); err != nil {
			return errors.Wrapf(err, "decoding %s at 0x%X", f.Kind, s.off)
		}
		m.Claim(s.off, s.size)
	}
	f.Remainder = m.Remainder(buf)
	return nil
}

func (f *File) decodeInstrument(buf []byte) error {
	spans := []span{{version.HeaderSize, layout.InstrumentSize, func(c *cursor.Cursor) (err error) {
		f.Instrument, err = instrument.Decode(c, f.Layout, &f.Diagnostics)
		return
	}}}
	if off := f.Layout.InstrumentFileEQ; 0 < off && off+layout.EQSize <= len(buf) {
		spans = append(spans, span{off, layout.EQSize, func(c *cursor.Cursor) (err error) {
			f.EQ, err = settings.DecodeEQ(c, &f.Diagnostics)
			return
		}})
	}
	return f.decodeSpans(buf, spans)
}

// Encode writes the file back. Songs are written by their own layout and
// header.
func (f *File) Encode() ([]byte, error) {
	if f.Kind == version.FileKind_Song {
		if f.Song == nil {
			return nil, errors.New("song file without a song")
		}
		return f.Song.Encode()
	}
	buf := make([]byte, f.Size)
	f.Remainder.Apply(buf)
	if err := cursor.New(buf, 0).WriteBytes(f.Header.Bytes()); err != nil {
		return nil, err
	}
	put := func(off int, b []byte, err error) error {
		if err != nil {
			return errors.Wrapf(err, "encoding %s", f.Kind)
		}
		c, err := cursor.New(buf, 0).Sub(off, len(b))
		if err != nil {
			return errs.New(errs.Kind_FieldOverflow, off, "%s file of %d bytes cannot hold %d bytes at 0x%X", f.Kind, f.Size, len(b), off)
		}
		return c.WriteBytes(b)
	}

	var err error
	switch f.Kind {
	case version.FileKind_Instrument:
		if f.Instrument == nil || f.Layout == nil {
			return nil, errors.New("instrument file without an instrument or layout")
		}
		b, e := instrument.Encode(f.Instrument, f.Layout)
		err = put(version.HeaderSize, b, e)
		if err == nil && f.EQ != nil {
			if f.Layout.InstrumentFileEQ == 0 {
				return nil, errors.Errorf("layout %s has no instrument file EQ", f.Layout)
			}
			b, e := f.EQ.Encode()
			err = put(f.Layout.InstrumentFileEQ, b, e)
		}
	case version.FileKind_Scale:
		if f.Scale == nil {
			return nil, errors.New("scale file without a scale")
		}
		b, e := f.Scale.Encode()
		err = put(version.HeaderSize, b, e)
	case version.FileKind_Theme:
		if f.Theme == nil {
			return nil, errors.New("theme file without a theme")
		}
		b, e := f.Theme.Encode()
		err = put(version.HeaderSize, b, e)
	default:
		err = errors.Errorf("cannot encode %s files", f.Kind)
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// NewSong returns an empty song file of version v.
func NewSong(v version.Version) (*File, error) {
	l, err := layout.Lookup(v)
	if err != nil {
		return nil, err
	}
	s := song.New(l)
	s.Header.Version = v
	return &File{Header: s.Header, Kind: version.FileKind_Song, Layout: l, Song: s, Size: s.Size}, nil
}

// NewInstrument returns an instrument file of version v holding inst. Files
// from 4.0 on get room for the instrument EQ.
func NewInstrument(v version.Version, inst instrument.Instrument) (*File, error) {
	l, err := layout.Lookup(v)
	if err != nil {
		return nil, err
	}
	f := &File{
		Header:     version.Header{Version: v},
		Kind:       version.FileKind_Instrument,
		Layout:     l,
		Instrument: inst,
		Size:       version.HeaderSize + layout.InstrumentSize,
	}
	if off := l.InstrumentFileEQ; 0 < off {
		f.EQ = settings.DefaultEQ()
		f.Size = off + layout.EQSize
	}
	return f, nil
}

func (f *File) String() string {
	lines := []string{f.Header.String(), fmt.Sprintf("KIND      %s", f.Kind)}
	switch f.Kind {
	case version.FileKind_Song:
		lines = append(lines, f.Song.String())
	case version.FileKind_Instrument:
		lines = append(lines, fmt.Sprintf("LAYOUT    %s", f.Layout), fmt.Sprint(f.Instrument))
		if f.EQ != nil {
			lines = append(lines, "EQ", f.EQ.String())
		}
	case version.FileKind_Scale:
		lines = append(lines, f.Scale.String())
	case version.FileKind_Theme:
		lines = append(lines, f.Theme.String())
	}
	if 0 < len(f.Diagnostics) {
		lines = append(lines, fmt.Sprintf("%d DIAGNOSTICS", len(f.Diagnostics)), f.Diagnostics.String())
	}
	return strings.Join(lines, "\n")
}

package subcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/but80/m8kit/m8/file"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/song"
	"github.com/but80/m8kit/m8/version"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var viewFlags = flags([]cli.Flag{
	cli.BoolFlag{
		Name:  "clear, C",
		Usage: `Clear the terminal before drawing`,
	},
}, decodeFlags, logFlags)

var View = cli.Command{
	Name:    "view",
	Aliases: []string{"v"},
	Usage:   "Shows a tracker screen of an M8 file",
	ArgsUsage: "<filename> [screen [number]]\n\n" +
		"   Screens of songs: song [row], chain, phrase, table, instrument, groove,\n" +
		"   scale, eq, mapping, mixer, effects, midi. Numbers are hexadecimal.",
	Flags:  viewFlags,
	Before: loadConfig(viewFlags),
	Action: func(ctx *cli.Context) error {
		if err := prepare(ctx, "view", 1); err != nil {
			return cli.NewExitError(err, 1)
		}
		args := ctx.Args()
		f, err := readFile(ctx, args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		screen, err := render(f, args[1:])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if ctx.Bool("clear") {
			fmt.Print(cursor.ClearEntireScreen())
			fmt.Print(cursor.MoveTo(0, 0))
		}
		fmt.Println(screen)
		return nil
	},
}

func parseNumber(args []string, limit int) (int, error) {
	if len(args) < 2 {
		return 0, nil
	}
	n, err := strconv.ParseUint(args[1], 16, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", args[1])
	}
	if limit <= int(n) {
		return 0, errors.Errorf("%s %X is out of range 00-%X", args[0], n, limit-1)
	}
	return int(n), nil
}

func render(f *file.File, args []string) (string, error) {
	switch f.Kind {
	case version.FileKind_Instrument:
		s := f.Instrument.String()
		if f.EQ != nil {
			s += "\n\nEQ\n" + f.EQ.String()
		}
		return s, nil
	case version.FileKind_Scale:
		return f.Scale.Screen(0), nil
	case version.FileKind_Theme:
		return f.Theme.String(), nil
	}
	if len(args) == 0 {
		args = []string{"song"}
	}
	return renderSong(f.Song, args)
}

func renderSong(s *song.Song, args []string) (string, error) {
	name := strings.ToLower(args[0])
	limits := map[string]int{
		"song":       layout.NumSongRows,
		"chain":      len(s.Chains),
		"phrase":     len(s.Phrases),
		"table":      len(s.Tables),
		"instrument": len(s.Instruments),
		"groove":     len(s.Grooves),
		"scale":      len(s.Scales),
		"eq":         len(s.EQs),
		"mapping":    len(s.MidiMappings),
	}
	limit, numbered := limits[name]
	n := 0
	if numbered {
		if limit == 0 {
			return "", errors.Errorf("layout %s has no %ss", s.Layout, name)
		}
		var err error
		if n, err = parseNumber(args, limit); err != nil {
			return "", err
		}
	}
	switch name {
	case "song":
		return "SONG\n\n" + s.SongSteps.Screen(n), nil
	case "chain":
		return s.ChainScreen(n), nil
	case "phrase":
		return s.PhraseScreen(n), nil
	case "table":
		return s.TableScreen(n), nil
	case "instrument":
		str := fmt.Sprintf("INST %02X\n\n", n) + s.Instruments[n].String()
		if eq, ok := s.EQ(n); ok {
			str += "\n\nEQ\n" + eq.String()
		}
		return str, nil
	case "groove":
		return s.GrooveScreen(n), nil
	case "scale":
		return s.Scales[n].Screen(n), nil
	case "eq":
		return fmt.Sprintf("EQ %02X\n\n", n) + s.EQs[n].String(), nil
	case "mapping":
		return fmt.Sprintf("MIDI MAPPING %02X\n\n", n) + s.MidiMappings[n].String(), nil
	case "mixer":
		return "MIXER\n\n" + s.Mixer.String(), nil
	case "effects":
		return "EFFECTS\n\n" + s.Effects.String(), nil
	case "midi":
		return "MIDI SETTINGS\n\n" + s.MidiSettings.String(), nil
	}
	return "", errors.Errorf("unknown screen %q", args[0])
}

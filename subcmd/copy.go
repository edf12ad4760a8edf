package subcmd

import (
	"fmt"
	"strconv"

	"github.com/but80/m8kit/m8/file"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/song"
	"github.com/but80/m8kit/m8/version"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
)

var copyFlags = flags([]cli.Flag{
	cli.StringFlag{
		Name:  "output, o",
		Usage: `Write the result here instead of overwriting <to>`,
	},
	altsrc.NewBoolFlag(cli.BoolFlag{
		Name:  "dry-run, n",
		Usage: `Only print the plan`,
	}),
}, decodeFlags, logFlags)

var Copy = cli.Command{
	Name:      "copy",
	Aliases:   []string{"cp"},
	Usage:     "Copies chains with their phrases, instruments, tables and EQs between songs",
	ArgsUsage: "<from> <to> <chain>...",
	Flags:     copyFlags,
	Before:    loadConfig(copyFlags),
	Action: func(ctx *cli.Context) error {
		if err := prepare(ctx, "copy", 3); err != nil {
			return cli.NewExitError(err, 1)
		}
		args := ctx.Args()
		chains, err := parseChains(args[2:])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		from, err := readSong(ctx, args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		to, err := readSong(ctx, args[1])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		r, err := song.NewRemapper(from.Song, to.Song, chains)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Println(r.String())
		if ctx.Bool("dry-run") {
			return nil
		}
		if err := r.Apply(from.Song, to.Song); err != nil {
			return cli.NewExitError(err, 1)
		}
		b, err := to.Encode()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		out := ctx.String("output")
		if out == "" {
			out = args[1]
		}
		if err := writeFile(out, b); err != nil {
			return cli.NewExitError(err, 1)
		}
		for _, c := range chains {
			log.Infof("chain %02X => %02X", c, r.Chain(c))
		}
		return nil
	},
}

func parseChains(args []string) ([]uint8, error) {
	result := make([]uint8, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 16, 8)
		if err != nil || 0xFF <= n {
			return nil, errors.Errorf("invalid chain number %q", a)
		}
		result[i] = uint8(n)
	}
	return result, nil
}

func readSong(ctx *cli.Context, path string) (*file.File, error) {
	f, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if f.Kind != version.FileKind_Song {
		return nil, errors.Errorf("%s is a %s file", path, f.Kind)
	}
	return f, nil
}

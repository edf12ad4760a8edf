package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/but80/m8kit/m8/file"
	"github.com/but80/m8kit/m8/instrument"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/version"
	pb "github.com/but80/m8kit/pb/m8"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
)

var dumpFlags = flags([]cli.Flag{
	altsrc.NewBoolFlag(cli.BoolFlag{
		Name:  "json, j",
		Usage: `Dumps in JSON format`,
	}),
	altsrc.NewBoolFlag(cli.BoolFlag{
		Name:  "protobuf, p",
		Usage: `Dumps the instruments as a protobuf bank`,
	}),
	cli.BoolFlag{
		Name:  "sections, s",
		Usage: `Prints the section map of the layout`,
	},
}, decodeFlags, logFlags)

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps M8 files (.m8s|.m8i|.m8n|.m8t)",
	ArgsUsage: "<filename>",
	Flags:     dumpFlags,
	Before:    loadConfig(dumpFlags),
	Action: func(ctx *cli.Context) error {
		if err := prepare(ctx, "dump", 1); err != nil {
			return cli.NewExitError(err, 1)
		}
		f, err := readFile(ctx, ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if 0 < len(f.Diagnostics) {
			log.Warnf("%d diagnostics", len(f.Diagnostics))
		}
		switch {
		case ctx.Bool("json"):
			j, err := json.MarshalIndent(f, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(string(j))
		case ctx.Bool("protobuf"):
			bank, err := instrumentBank(f)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			b, err := bank.Bytes()
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			os.Stdout.Write(b)
		case ctx.Bool("sections"):
			if f.Layout == nil {
				return cli.NewExitError(errors.Errorf("%s files have no layout", f.Kind), 1)
			}
			fmt.Println(f.Layout.Describe())
		default:
			fmt.Println(f.String())
		}
		return nil
	},
}

func instrumentBank(f *file.File) (*pb.InstrumentBank, error) {
	switch f.Kind {
	case version.FileKind_Song:
		return f.Song.InstrumentBank()
	case version.FileKind_Instrument:
		p, err := instrument.ToPB(f.Instrument, 0, f.Layout)
		if err != nil {
			return nil, err
		}
		return &pb.InstrumentBank{
			Version:     f.Header.Version.String(),
			Layout:      f.Layout.Name,
			Instruments: []*pb.Instrument{p},
		}, nil
	}
	return nil, errors.Errorf("protobuf conversion for %s files is not supported", f.Kind)
}

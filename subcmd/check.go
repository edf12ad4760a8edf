package subcmd

import (
	"fmt"
	"io/ioutil"

	"github.com/but80/m8kit/m8/file"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var checkFlags = flags(decodeFlags, logFlags)

var Check = cli.Command{
	Name:      "check",
	Aliases:   []string{"c"},
	Usage:     "Decodes and re-encodes M8 files and compares the bytes",
	ArgsUsage: "<filename>...",
	Flags:     checkFlags,
	Before:    loadConfig(checkFlags),
	Action: func(ctx *cli.Context) error {
		if err := prepare(ctx, "check", 1); err != nil {
			return cli.NewExitError(err, 1)
		}
		opts, err := decodeOptions(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		failed := 0
		for _, path := range ctx.Args() {
			if err := check(path, opts); err != nil {
				log.Warnf("%s: %s", path, err)
				failed++
				continue
			}
			fmt.Printf("%s: ok\n", path)
		}
		if 0 < failed {
			return cli.NewExitError(fmt.Sprintf("%d of %d files failed", failed, ctx.NArg()), 1)
		}
		return nil
	},
}

func check(path string, opts *file.Options) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	f, err := decodeFile(path, b, opts)
	if err != nil {
		return err
	}
	log.Infof("%s: %s %s, %d diagnostics", path, f.Header, f.Kind, len(f.Diagnostics))
	out, err := f.Encode()
	if err != nil {
		return errors.Wrap(err, "re-encoding")
	}
	if i := util.FirstDiff(b, out); 0 <= i {
		return errors.Errorf("round trip differs at 0x%X (%d bytes in, %d bytes out)", i, len(b), len(out))
	}
	return nil
}

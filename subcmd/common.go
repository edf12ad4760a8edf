package subcmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/but80/m8kit/m8/file"
	"github.com/but80/m8kit/m8/layout"
	"github.com/but80/m8kit/m8/log"
	"github.com/but80/m8kit/m8/version"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
	"github.com/xlab/closer"
)

// logFlags are accepted by every command. The log level can also come from
// the environment or the YAML config file.
var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
	altsrc.NewStringFlag(cli.StringFlag{
		Name:   "log-level",
		Usage:  `Log level (none|warn|info|debug)`,
		EnvVar: "M8KIT_LOG_LEVEL",
	}),
	cli.StringFlag{
		Name:   "config, c",
		Usage:  `Load flag defaults from a YAML file`,
		EnvVar: "M8KIT_CONFIG",
	},
}

// decodeFlags select how input files are interpreted.
var decodeFlags = []cli.Flag{
	altsrc.NewStringFlag(cli.StringFlag{
		Name:   "kind, k",
		Usage:  `File kind (song|instrument|scale|theme), detected from the size by default`,
		EnvVar: "M8KIT_KIND",
	}),
	altsrc.NewStringFlag(cli.StringFlag{
		Name:   "layout, l",
		Usage:  `Force a layout (2.0|2.5|3.0|4.0|4.0+eq128|4.1)`,
		EnvVar: "M8KIT_LAYOUT",
	}),
	altsrc.NewBoolFlag(cli.BoolFlag{
		Name:  "extended-eq",
		Usage: `Read 4.0 songs long enough for 128 EQs with the 4.0+eq128 layout`,
	}),
}

func flags(groups ...[]cli.Flag) []cli.Flag {
	result := []cli.Flag{}
	for _, g := range groups {
		result = append(result, g...)
	}
	return result
}

// loadConfig reads the file named by --config, if any, into the flags
// which were not given on the command line.
func loadConfig(fs []cli.Flag) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if ctx.String("config") == "" {
			return nil
		}
		return altsrc.InitInputSourceWithContext(fs, altsrc.NewYamlSourceFromFlagFunc("config"))(ctx)
	}
}

func setLogLevel(ctx *cli.Context) error {
	if s := ctx.String("log-level"); s != "" {
		l, err := log.ParseLevel(s)
		if err != nil {
			return err
		}
		log.Level = l
	}
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
	return nil
}

func decodeOptions(ctx *cli.Context) (*file.Options, error) {
	opts := &file.Options{}
	var err error
	if opts.Kind, err = version.ParseFileKind(ctx.String("kind")); err != nil {
		return nil, err
	}
	if name := ctx.String("layout"); name != "" {
		if opts.Layout, err = layout.ByName(name); err != nil {
			return nil, err
		}
	}
	if ctx.Bool("extended-eq") {
		opts.Discriminators = []layout.Discriminator{layout.ExtendedEQ}
	}
	return opts, nil
}

func readFile(ctx *cli.Context, path string) (*file.File, error) {
	opts, err := decodeOptions(ctx)
	if err != nil {
		return nil, err
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	f, err := decodeFile(path, b, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return f, nil
}

// decodeFile takes the kind from the file extension unless opts forces one.
func decodeFile(path string, b []byte, opts *file.Options) (*file.File, error) {
	o := *opts
	if o.Kind == version.FileKind_Unknown {
		o.Kind = version.KindOfExtension(path)
	}
	return file.Decode(b, &o)
}

// writeFile replaces path through a temporary file in the same directory,
// which is removed if the process is interrupted.
func writeFile(path string, b []byte) error {
	tmp, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return errors.WithStack(err)
	}
	name := tmp.Name()
	closer.Bind(func() {
		os.Remove(name)
	})
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(name)
		return errors.WithStack(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return errors.WithStack(err)
	}
	return errors.WithStack(os.Rename(name, path))
}

// prepare is the common head of every command action.
func prepare(ctx *cli.Context, name string, minArgs int) error {
	if ctx.NArg() < minArgs {
		cli.ShowCommandHelp(ctx, name)
		os.Exit(1)
	}
	return setLogLevel(ctx)
}

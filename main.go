package main

import (
	"os"

	"github.com/but80/m8kit/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "m8kit"
	app.Version = version
	app.Usage = "Inspects and edits Dirtywave M8 song, instrument, scale and theme files"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "m8kit"

	app.Commands = []cli.Command{
		subcmd.Dump,
		subcmd.View,
		subcmd.Check,
		subcmd.Copy,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}

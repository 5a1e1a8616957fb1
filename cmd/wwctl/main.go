// wwctl is a small operator CLI around the shrinkwrap codec: it can
// round-trip the demo types, hex-dump an encoded buffer with the regions
// it occupies, and compare ShrinkWrap's wire size against RLP for the
// same payload.
package main

import (
	"fmt"
	"os"

	"github.com/wireweaver/shrinkwrap/flags"
	"gopkg.in/urfave/cli.v1"
)

var (
	gitCommit = ""
	gitDate   = ""

	app = flags.NewApp(gitCommit, gitDate, "inspect, benchmark and demo the shrinkwrap wire codec")
)

func init() {
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Commands = []cli.Command{
		demoCommand,
		inspectCommand,
		benchCommand,
	}
	app.Action = func(ctx *cli.Context) error {
		return cli.ShowAppHelp(ctx)
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "wwctl:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wireweaver/shrinkwrap/examples/wwdemo"
	"github.com/wireweaver/shrinkwrap/shrinkwrap"
	"gopkg.in/urfave/cli.v1"
)

var inspectCommand = cli.Command{
	Name:      "inspect",
	Usage:     "Hex-dump a ShrinkWrap-encoded buffer and attempt to decode it as a demo message",
	ArgsUsage: "[hex-string]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "file",
			Usage: "Read the encoded buffer from a file instead of the hex argument/stdin",
		},
	},
	Action: inspectAction,
}

func inspectAction(ctx *cli.Context) error {
	logger := setupLogging(ctx)

	raw, err := loadInspectInput(ctx)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	logger.WithField("bytes", len(raw)).Debug("loaded buffer")

	fmt.Fprintln(ctx.App.Writer, "length:", len(raw), "bytes")
	fmt.Fprintln(ctx.App.Writer, "hex:", hexutil.Encode(raw))

	r := shrinkwrap.NewBufReader(raw)
	reading, err := shrinkwrap.ReadField(r, shrinkwrap.UnsizedFinalStructure, wwdemo.DesSensorReading)
	if err != nil {
		fmt.Fprintln(ctx.App.Writer, "decode: not a recognized wwdemo message (sensor reading failed):", err)
		fmt.Fprintln(ctx.App.Writer, "cursor state:", r.DebugDump())
		return nil
	}
	status, err := shrinkwrap.ReadTerminalField(r, wwdemo.DesDeviceStatus)
	if err != nil {
		fmt.Fprintln(ctx.App.Writer, "decode: sensor reading ok, device status failed:", err)
		fmt.Fprintln(ctx.App.Writer, "cursor state:", r.DebugDump())
		return nil
	}
	fmt.Fprintf(ctx.App.Writer, "decoded reading: %+v\n", reading)
	fmt.Fprintf(ctx.App.Writer, "decoded status:  %+v\n", status)
	return nil
}

func loadInspectInput(ctx *cli.Context) ([]byte, error) {
	if path := ctx.String("file"); path != "" {
		return os.ReadFile(path)
	}
	if ctx.NArg() > 0 {
		return hexutil.Decode(ensure0x(ctx.Args().First()))
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return hexutil.Decode(ensure0x(strings.TrimSpace(string(data))))
}

func ensure0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s
	}
	return "0x" + s
}

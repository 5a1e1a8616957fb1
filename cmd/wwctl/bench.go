package main

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/wireweaver/shrinkwrap/examples/wwdemo"
	"github.com/wireweaver/shrinkwrap/shrinkwrap"
	"gopkg.in/urfave/cli.v1"
)

var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "Compare ShrinkWrap's encoded size against RLP for the same sensor reading payload",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "tags",
			Usage: "Number of tag strings to include in the sample reading",
			Value: 3,
		},
	},
	Action: benchAction,
}

// rlpSensorReading mirrors wwdemo.SensorReading's fields in a shape RLP can
// encode directly; RLP has no IEEE-754 float primitive, so Value travels as
// its raw bit pattern, same trick geth's own RLP-encoded header fields use
// for anything that isn't a uint/bytes/list.
type rlpSensorReading struct {
	Timestamp  uint64
	ValueBits  uint32
	Label      string
	Tags       []string
	HasQuality bool
	Quality    uint8
}

func benchAction(ctx *cli.Context) error {
	logger := setupLogging(ctx)

	n := ctx.Int("tags")
	tags := make([]string, n)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag-%d", i)
	}
	quality := uint8(88)
	reading := wwdemo.SensorReading{
		Timestamp: 1_700_000_000,
		Value:     21.5,
		Label:     "boiler-room",
		Tags:      tags,
		Quality:   &quality,
	}

	swBuf := make([]byte, 1024+64*n)
	w := shrinkwrap.NewBufWriter(swBuf)
	if err := shrinkwrap.WriteTerminalField(w, reading); err != nil {
		return fmt.Errorf("encode shrinkwrap: %w", err)
	}
	swOut, err := w.FinishAndTake()
	if err != nil {
		return fmt.Errorf("finish shrinkwrap: %w", err)
	}

	rlpIn := rlpSensorReading{
		Timestamp:  reading.Timestamp,
		ValueBits:  math.Float32bits(reading.Value),
		Label:      reading.Label,
		Tags:       reading.Tags,
		HasQuality: reading.Quality != nil,
	}
	if reading.Quality != nil {
		rlpIn.Quality = *reading.Quality
	}
	rlpOut, err := rlp.EncodeToBytes(rlpIn)
	if err != nil {
		return fmt.Errorf("encode rlp: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"tags":             n,
		"shrinkwrap_bytes": len(swOut),
		"rlp_bytes":        len(rlpOut),
	}).Info("bench complete")

	fmt.Fprintf(ctx.App.Writer, "tags:       %d\n", n)
	fmt.Fprintf(ctx.App.Writer, "shrinkwrap: %d bytes\n", len(swOut))
	fmt.Fprintf(ctx.App.Writer, "rlp:        %d bytes\n", len(rlpOut))
	if len(rlpOut) > 0 {
		fmt.Fprintf(ctx.App.Writer, "ratio:      %.2f%% of rlp size\n", 100*float64(len(swOut))/float64(len(rlpOut)))
	}
	return nil
}

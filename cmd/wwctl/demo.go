package main

import (
	"fmt"

	"github.com/wireweaver/shrinkwrap/examples/wwdemo"
	"gopkg.in/urfave/cli.v1"
)

var demoCommand = cli.Command{
	Name:  "demo",
	Usage: "Round-trip a sample sensor reading and device status through the codec",
	Action: func(ctx *cli.Context) error {
		logger := setupLogging(ctx)

		quality := uint8(97)
		reading := wwdemo.SensorReading{
			Timestamp: 1_700_000_000,
			Value:     21.5,
			Label:     "boiler-room",
			Tags:      []string{"hvac", "critical"},
			Quality:   &quality,
		}
		status := wwdemo.DeviceStatus{Kind: wwdemo.StatusOnline, Since: 1_699_990_000}

		report, err := wwdemo.RoundTrip(reading, status)
		if err != nil {
			logger.WithError(err).Error("round trip failed")
			return err
		}
		fmt.Fprintln(ctx.App.Writer, report)
		return nil
	},
}

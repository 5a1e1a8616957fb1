package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the flags every wwctl subcommand accepts: logging
// verbosity/format/colour, an optional Sentry DSN, and a data directory
// setting that no subcommand reads.

func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "datadir",
			Usage: "Data directory (accepted, not read by any subcommand)",
			Value: "~/.wwctl",
		},
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Sentry DSN for panic reporting; disabled when empty",
		},
	}
}

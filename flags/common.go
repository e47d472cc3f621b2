package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "chain",
			Usage: "Chain preset supplying genesis hash and call indexes (polkadot|kusama|westend)",
			Value: "polkadot",
		},
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=panic,1=fatal,2=error,3=warn,4=info,5=debug)",
			Value: 3,
		},
		cli.StringFlag{
			Name:  "log.sentry",
			Usage: "Sentry DSN to forward error-level logs to",
		},
	}
}

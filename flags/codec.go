package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// MetadataFlags covers metadata blob input and filtering.
func MetadataFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "file",
			Usage: "Path to a metadata blob, raw bytes or 0x-prefixed hex text",
		},
		cli.StringFlag{
			Name:  "pallet",
			Usage: "Restrict output to a single pallet and list its calls",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "Emit the summary as JSON instead of text",
		},
	}
}

// TransferFlags identifies the transfer call and its arguments.
func TransferFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "dest",
			Usage: "Destination account as 0x-prefixed 32-byte hex",
		},
		cli.StringFlag{
			Name:  "amount",
			Usage: "Amount in base units, decimal, up to 128 bits",
		},
		cli.StringFlag{
			Name:  "call",
			Usage: "Balances call variant to build",
			Value: "transfer_keep_alive",
		},
	}
}

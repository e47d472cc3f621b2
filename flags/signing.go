package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// SigningFlags carries everything a signing payload commits to beyond the
// call itself. Commands that only build call data ignore them.
func SigningFlags() []cli.Flag {
	return []cli.Flag{
		cli.Uint64Flag{
			Name:  "nonce",
			Usage: "Sender account nonce",
		},
		cli.StringFlag{
			Name:  "tip",
			Usage: "Tip in base units, decimal",
			Value: "0",
		},
		cli.Uint64Flag{
			Name:  "era.period",
			Usage: "Mortality window in blocks, 0 keeps the transaction immortal",
		},
		cli.Uint64Flag{
			Name:  "era.block",
			Usage: "Block number the mortal era is anchored to",
		},
		cli.Uint64Flag{
			Name:  "spec-version",
			Usage: "Runtime spec version the payload commits to",
		},
		cli.Uint64Flag{
			Name:  "tx-version",
			Usage: "Runtime transaction version the payload commits to",
		},
		cli.StringFlag{
			Name:  "checkpoint",
			Usage: "Hash of the era anchor block, 0x-prefixed, required for mortal eras",
		},
		cli.StringSliceFlag{
			Name:  "extension",
			Usage: "Override the signed-extension tuple, repeatable and comma-splittable",
		},
	}
}

// Package launcher assembles the subwire command-line tool: flag parsing,
// logging setup, and the metadata and transfer commands.
package launcher

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wireforge/go-subwire/flags"
)

var app = flags.NewApp()

func init() {
	app.Flags = flags.CommonFlags()
	app.Commands = []cli.Command{
		inspectCommand,
		transferCommand,
	}
}

// Launch parses the command line and runs the selected command.
func Launch(args []string) error {
	return app.Run(args)
}

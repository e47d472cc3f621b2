package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp returns a cli application preconfigured for the subwire tool.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "subwire"
	app.Usage = "inspect runtime metadata and build transfer extrinsics for SCALE-encoded chains"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}

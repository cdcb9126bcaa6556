// nanowire is a utility CLI tool for working with the nano-contract
// argument wire format.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nanohq/nano-engine/pkg/log"
)

func main() {
	logger, err := log.NewDefaultProductionLogger()
	if err != nil {
		os.Exit(1)
	}
	app := cli.App{
		Usage: "encode and decode nano-contract argument values",
		Commands: []*cli.Command{
			getEncodeCommand(logger),
			getDecodeCommand(logger),
			getParseTypeCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[staked] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "staked"
	app.Usage = "Staking Ledger Daemon (staked)."
	app.Commands = append(app.Commands, startCommand, initCommand)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

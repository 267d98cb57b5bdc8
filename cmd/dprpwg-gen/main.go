// Package main is the entry point for the dprpwg-gen CLI.
package main

import (
	"os"

	"github.com/mrz1836/dprpwg-gen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

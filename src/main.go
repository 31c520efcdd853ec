package main

import (
	"os"

	"github.com/eriklarko/tautology-checker/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

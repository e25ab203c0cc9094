package main

import (
	"os"

	"github.com/jwst-tools/engdb-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

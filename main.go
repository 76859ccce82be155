package main

import (
	"os"

	"github.com/dylan/commitlabels/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/subweave/subweave/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

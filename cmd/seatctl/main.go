package main

import (
	"os"

	"airline-ops/seatcrew/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

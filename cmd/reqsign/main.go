package main

import (
	"os"

	"reqsign/cmd/reqsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

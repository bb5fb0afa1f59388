package main

import (
	"os"

	"pet-explorer/cmd/petctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

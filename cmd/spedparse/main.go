package main

import (
	"os"

	"github.com/fiscalia-dev/spedparse/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

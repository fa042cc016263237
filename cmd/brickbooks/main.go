package main

import (
	"os"

	"github.com/brickbooks-dev/brickbooks/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

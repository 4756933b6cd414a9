package main

import (
	"os"

	"github.com/wippyai/fakeutf8/cmd/fakeutf8/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

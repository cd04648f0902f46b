package main

import (
	"os"

	"prodcheck/cmd/codecheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

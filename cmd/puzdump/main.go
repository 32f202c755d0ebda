// Command puzdump decodes .puz files and prints their grids and clues.
package main

import (
	"os"

	"puzreader/internal/logging"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand(os.Stdout)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}

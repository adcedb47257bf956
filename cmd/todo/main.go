package main

import (
	"os"

	"golang.org/x/term"

	"github.com/idilsaglam/todotxt/internal/cli"
	"github.com/idilsaglam/todotxt/internal/config"
	"github.com/idilsaglam/todotxt/internal/store/txtstore"
)

func main() {
	// No flags: the list always lives in ./todo.txt.
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	code := cli.Run(cli.Options{
		DataFile:    txtstore.DataFileName,
		ConfigFile:  config.DefaultPath(),
		Interactive: interactive,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	})
	os.Exit(code)
}

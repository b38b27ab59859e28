package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/jmgilman/localfs/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(cli.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

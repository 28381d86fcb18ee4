package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/stcorp/muninn-geoms/internal/cli"
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(geoms.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(geoms.ExitCodeForError(err))
	}
}

package main

import (
	"fmt"
)

// Set at build time via -ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "unknown"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "lyrelens version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage(ui.Out)
		os.Exit(0)
	}

	if err := runCommand(args[0], args[1:], ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "lyrelens: %v\n", err)
}

func runCommand(cmd string, args []string, ui UI) error {
	switch cmd {
	case "help", "-h", "--help":
		if len(args) > 0 {
			return runCommand(args[0], []string{"--help"}, ui)
		}
		printUsage(ui.Out)
		return nil

	case "run":
		opts, err := parseRunArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return analyzeCommand(opts, ui)

	case "export":
		opts, dbPath, err := parseExportArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return exportCommand(opts, dbPath, ui)

	case "explore":
		opts, err := parseExploreArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return exploreCommand(opts, ui)

	case "version":
		return versionCommand(ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: lyrelens <command> [options]

Commands:
  run      load texts and write the sankey, word cloud and sentiment artifacts
  export   load texts and record the results in a SQLite database
  explore  load texts and query them interactively
  version  print version information
  help     show this message, or help for a command

Run 'lyrelens <command> --help' for command options.
`)
}

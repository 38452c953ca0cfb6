package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/verselab/lyrelens/pkg/lyrelens/report"
)

func parseExportArgs(args []string, ui UI) (InputOptions, string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(ui.Err)
	in := addInputFlags(fs)
	dbPath := fs.String("db", "", "SQLite database file to record the run in")

	if err := fs.Parse(args); err != nil {
		return InputOptions{}, "", err
	}
	inputs, err := in.resolve()
	if err != nil {
		return InputOptions{}, "", err
	}

	path := *dbPath
	if path == "" {
		path = inputs.Config.Outputs.Database
	}
	return inputs, path, nil
}

func exportCommand(opts InputOptions, dbPath string, ui UI) error {
	ctx := context.Background()

	analyzer, err := loadAnalyzer(opts, ui)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	st, err := report.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open report database %s: %w", dbPath, err)
	}
	defer st.Close()

	runID, err := st.Export(ctx, analyzer.Corpus(), analyzer.TopWords(opts.TopWords))
	if err != nil {
		return err
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "Recorded run %s (%d texts) in %s, %d runs total\n",
		runID, analyzer.Len(), dbPath, len(runs))
	return nil
}

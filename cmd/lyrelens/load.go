package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/gosuri/uiprogress"

	"github.com/verselab/lyrelens/internal/textdir"
	"github.com/verselab/lyrelens/pkg/lyrelens"
	"github.com/verselab/lyrelens/pkg/lyrelens/config"
	"github.com/verselab/lyrelens/pkg/lyrelens/lyric"
)

// InputOptions selects the inputs of one invocation, after merging
// command line flags over the configuration file.
type InputOptions struct {
	SongsDir     string
	StopwordsDir string
	TextsDir     string
	TopWords     int
	StemLanguage string
	KeepGoing    bool
	Config       config.Config
}

type inputFlags struct {
	configPath *string
	songs      *string
	stopwords  *string
	texts      *string
	top        *int
	stem       *string
	keepGoing  *bool
}

func addInputFlags(fs *flag.FlagSet) inputFlags {
	return inputFlags{
		configPath: fs.String("config", "", "YAML configuration file"),
		songs:      fs.String("songs", "", "directory of .lrc lyric files"),
		stopwords:  fs.String("stopwords", "", "directory of .txt stopword lists"),
		texts:      fs.String("texts", "", "directory of plain .txt texts"),
		top:        fs.Int("top", 0, "number of top words for the sankey diagram"),
		stem:       fs.String("stem", "", "snowball stemmer language, e.g. english"),
		keepGoing:  fs.Bool("keep-going", false, "skip files that fail to load instead of aborting"),
	}
}

// resolve applies the precedence: explicit flag, then config file, then
// built-in default.
func (f inputFlags) resolve() (InputOptions, error) {
	cfg := config.Default()
	if *f.configPath != "" {
		var err error
		cfg, err = config.Load(*f.configPath)
		if err != nil {
			return InputOptions{}, fmt.Errorf("load config: %w", err)
		}
	}

	opts := InputOptions{
		SongsDir:     *f.songs,
		StopwordsDir: *f.stopwords,
		TextsDir:     *f.texts,
		TopWords:     *f.top,
		StemLanguage: *f.stem,
		KeepGoing:    *f.keepGoing,
		Config:       cfg,
	}
	if opts.SongsDir == "" {
		opts.SongsDir = cfg.SongsDir
	}
	if opts.StopwordsDir == "" {
		opts.StopwordsDir = cfg.StopwordsDir
	}
	if opts.TextsDir == "" {
		opts.TextsDir = cfg.TextsDir
	}
	if opts.TopWords <= 0 {
		opts.TopWords = cfg.TopWords
	}
	if opts.StemLanguage == "" {
		opts.StemLanguage = cfg.StemLanguage
	}
	return opts, nil
}

type loadJob struct {
	entry textdir.Entry
	parse lyric.ParseFunc
}

func collectJobs(opts InputOptions) ([]loadJob, error) {
	songs, err := textdir.List(opts.SongsDir, ".lrc")
	if err != nil {
		// A texts-only run may leave the songs directory absent.
		if opts.TextsDir == "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		songs = nil
	}

	jobs := make([]loadJob, 0, len(songs))
	for _, e := range songs {
		jobs = append(jobs, loadJob{entry: e, parse: lyric.Parse})
	}

	if opts.TextsDir != "" {
		texts, err := textdir.List(opts.TextsDir, ".txt")
		if err != nil {
			return nil, err
		}
		for _, e := range texts {
			jobs = append(jobs, loadJob{entry: e, parse: nil})
		}
	}
	return jobs, nil
}

func loadStopwords(a *lyrelens.Analyzer, dir string) error {
	entries, err := textdir.List(dir, ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: stopword directory %s not found, continuing without stopwords", dir)
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := a.LoadStopwords(e.Path); err != nil {
			return err
		}
	}
	return nil
}

// loadAnalyzer builds an analyzer from the configured directories,
// rendering a progress bar while texts load. Failing files abort the run
// unless keep-going was requested, in which case they are logged and
// skipped.
func loadAnalyzer(opts InputOptions, ui UI) (*lyrelens.Analyzer, error) {
	analyzer, err := lyrelens.New(lyrelens.Options{StemLanguage: opts.StemLanguage})
	if err != nil {
		return nil, err
	}

	if err := loadStopwords(analyzer, opts.StopwordsDir); err != nil {
		analyzer.Close()
		return nil, err
	}

	jobs, err := collectJobs(opts)
	if err != nil {
		analyzer.Close()
		return nil, err
	}
	if len(jobs) == 0 {
		analyzer.Close()
		where := opts.SongsDir
		if opts.TextsDir != "" {
			where += " or " + opts.TextsDir
		}
		return nil, fmt.Errorf("no input files found in %s", where)
	}

	// Start progress indicator
	uiprogress.Start()
	bar := uiprogress.AddBar(len(jobs))
	bar.AppendCompleted()
	bar.PrependElapsed()
	// Append the label being loaded to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		i := b.Current()
		if i >= len(jobs) {
			i = len(jobs) - 1
		}
		return jobs[i].entry.Label
	})

	for _, job := range jobs {
		if err := analyzer.LoadFile(job.entry.Path, job.entry.Label, job.parse); err != nil {
			if !opts.KeepGoing {
				uiprogress.Stop()
				analyzer.Close()
				return nil, err
			}
			log.Printf("Warning: skipping %s: %v", job.entry.Path, err)
		}
		bar.Incr()
	}

	// stop rendering
	uiprogress.Stop()

	if analyzer.Len() == 0 {
		analyzer.Close()
		return nil, fmt.Errorf("no texts could be loaded")
	}
	return analyzer, nil
}

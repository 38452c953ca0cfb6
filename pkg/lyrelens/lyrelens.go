// Package lyrelens is the main analysis facade. An Analyzer ingests song
// texts through a pluggable parser, normalizes them against a shared
// stoplist, scores their sentiment, and answers aggregate queries over
// everything loaded so far.
package lyrelens

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tebeka/snowball"

	"github.com/verselab/lyrelens/pkg/lyrelens/corpus"
	"github.com/verselab/lyrelens/pkg/lyrelens/internalerr"
	"github.com/verselab/lyrelens/pkg/lyrelens/lyric"
	"github.com/verselab/lyrelens/pkg/lyrelens/sankey"
	"github.com/verselab/lyrelens/pkg/lyrelens/sentiment"
	"github.com/verselab/lyrelens/pkg/lyrelens/textnorm"
)

// Analyzer is the lyric analysis engine facade
type Analyzer struct {
	norm    *textnorm.Normalizer
	scorer  *sentiment.Analyzer
	stemmer *snowball.Stemmer
	corpus  *corpus.Corpus
}

// Options configures an Analyzer instance
type Options struct {
	// StemLanguage selects an optional snowball stemmer, for example
	// "english". Empty keeps words unstemmed.
	StemLanguage string
}

// New creates an Analyzer. The sentiment model is initialized here, once,
// so loading texts afterwards never pays that cost again.
func New(opts Options) (*Analyzer, error) {
	a := &Analyzer{
		norm:   textnorm.NewNormalizer(nil),
		scorer: sentiment.NewAnalyzer(),
		corpus: corpus.New(),
	}
	if opts.StemLanguage != "" {
		st, err := snowball.New(opts.StemLanguage)
		if err != nil {
			return nil, fmt.Errorf("init %s stemmer: %w", opts.StemLanguage, err)
		}
		a.stemmer = st
	}
	return a, nil
}

// Close releases the stemmer, if one was configured.
func (a *Analyzer) Close() error {
	if a.stemmer != nil {
		a.stemmer.Close()
	}
	return nil
}

// FileNotFoundError reports an input file that does not exist.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// LoadStopwords merges one stopword file into the analyzer's stoplist.
// A missing file is logged and skipped so a run can still proceed without
// it; any other failure is returned. Stopwords only affect texts loaded
// after the call.
func (a *Analyzer) LoadStopwords(path string) error {
	err := a.norm.Stopwords().LoadFile(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: stopword file %s not found, skipping", path)
		return nil
	}
	return err
}

// Stopwords exposes the shared stoplist.
func (a *Analyzer) Stopwords() *textnorm.StopwordSet {
	return a.norm.Stopwords()
}

// LoadFile reads one text file and registers it. An empty label defaults
// to the file name without its extension; a nil parse defaults to
// lyric.Passthrough.
func (a *Analyzer) LoadFile(path, label string, parse lyric.ParseFunc) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileNotFoundError{Path: path, Err: err}
		}
		return fmt.Errorf("read file %s: %w", path, err)
	}
	if label == "" {
		base := filepath.Base(path)
		label = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return a.LoadText(label, raw, parse)
}

// LoadText parses raw and registers the result under label, replacing any
// earlier text with the same label while keeping its position. Sentiment
// is scored on the parsed text before normalization, since the model
// reads signal from punctuation and words the stoplist would drop. The
// record is only published once every statistic is computed, so a parse
// failure leaves the previous record in place.
func (a *Analyzer) LoadText(label string, raw []byte, parse lyric.ParseFunc) error {
	if parse == nil {
		parse = lyric.Passthrough
	}
	text, err := parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", label, err)
	}

	rec := corpus.Record{
		WordCount:  make(map[string]int),
		WordLength: make(map[string]int),
		Sentiment:  a.scorer.Score(text),
	}
	for _, word := range strings.Fields(a.norm.Clean(text)) {
		if a.stemmer != nil {
			word = a.stemmer.Stem(word)
		}
		rec.WordCount[word]++
		rec.WordLength[word] = utf8.RuneCountInString(word)
	}

	a.corpus.Put(label, rec)
	return nil
}

// Corpus exposes the underlying record store.
func (a *Analyzer) Corpus() *corpus.Corpus { return a.corpus }

// Labels returns loaded labels in load order.
func (a *Analyzer) Labels() []string { return a.corpus.Labels() }

// Len returns the number of loaded texts.
func (a *Analyzer) Len() int { return a.corpus.Len() }

// TopWords returns the k most frequent words across all loaded texts.
func (a *Analyzer) TopWords(k int) []string { return a.corpus.TopWords(k) }

// Totals returns corpus-wide word counts.
func (a *Analyzer) Totals() map[string]int { return a.corpus.Totals() }

// Record returns the statistics stored under label.
func (a *Analyzer) Record(label string) (corpus.Record, error) {
	rec, ok := a.corpus.Get(label)
	if !ok {
		return corpus.Record{}, fmt.Errorf("label %q: %w", label, internalerr.ErrNotFound)
	}
	return rec, nil
}

// Sankey builds the text-to-word flow for the given words. An empty word
// list falls back to the k most frequent corpus words.
func (a *Analyzer) Sankey(words []string, k int) sankey.Flow {
	if len(words) == 0 {
		words = a.corpus.TopWords(k)
	}
	labels := a.corpus.Labels()
	counts := make(map[string]map[string]int, len(labels))
	for _, label := range labels {
		rec, ok := a.corpus.Get(label)
		if !ok {
			continue
		}
		counts[label] = rec.WordCount
	}
	return sankey.Build(labels, words, counts)
}

// SentimentSeries returns every text's polarity scores, in load order.
func (a *Analyzer) SentimentSeries() *sentiment.Series {
	return a.corpus.SentimentSeries()
}

// LengthSummaries returns per-text word length statistics, in load order.
func (a *Analyzer) LengthSummaries() []corpus.LengthSummary {
	return a.corpus.LengthSummaries()
}

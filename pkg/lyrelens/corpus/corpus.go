// Package corpus is the in-memory registry of analyzed texts.
//
// A Corpus maps each label to the statistics extracted from one text and
// remembers the order in which labels first arrived. Every downstream
// consumer (rankings, diagrams, charts) iterates labels in that order, so
// output stays stable across runs over the same inputs.
package corpus

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/verselab/lyrelens/pkg/lyrelens/sentiment"
)

// Record holds the per-text statistics stored under one label.
type Record struct {
	// WordCount maps each normalized word to its number of occurrences.
	WordCount map[string]int
	// WordLength maps each normalized word to its length in runes.
	WordLength map[string]int
	// Sentiment is the polarity of the raw text.
	Sentiment sentiment.Scores
}

// Corpus stores records keyed by label, preserving first-insertion order.
// Methods are safe for concurrent use.
type Corpus struct {
	mu      sync.RWMutex
	order   []string
	records map[string]Record
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{records: make(map[string]Record)}
}

// Put stores rec under label. A new label is appended to the iteration
// order; re-registering an existing label replaces its record in place and
// keeps its original position. The corpus takes ownership of rec's maps.
func (c *Corpus) Put(label string, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.records[label]; !ok {
		c.order = append(c.order, label)
	}
	c.records[label] = rec
}

// Get returns the record stored under label.
func (c *Corpus) Get(label string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[label]
	return rec, ok
}

// Len returns the number of stored labels.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Labels returns the stored labels in first-insertion order.
func (c *Corpus) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Totals sums word counts across every stored text.
func (c *Corpus) Totals() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	totals := make(map[string]int)
	for _, label := range c.order {
		for word, n := range c.records[label].WordCount {
			totals[word] += n
		}
	}
	return totals
}

// TopWords returns the k most frequent words across the whole corpus,
// most frequent first. Ties break alphabetically so the ranking is
// deterministic. Fewer than k distinct words returns them all; k <= 0
// returns nil.
func (c *Corpus) TopWords(k int) []string {
	if k <= 0 {
		return nil
	}
	totals := c.Totals()
	words := make([]string, 0, len(totals))
	for word := range totals {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if totals[words[i]] != totals[words[j]] {
			return totals[words[i]] > totals[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > k {
		words = words[:k]
	}
	return words
}

// SentimentSeries collects every label's polarity scores into parallel
// sequences, in label order.
func (c *Corpus) SentimentSeries() *sentiment.Series {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var series sentiment.Series
	for _, label := range c.order {
		series.Add(label, c.records[label].Sentiment)
	}
	return &series
}

// LengthSummary describes the distribution of distinct-word lengths in
// one text.
type LengthSummary struct {
	Label    string
	Words    int
	Mean     float64
	StdDev   float64
	Median   float64
	Shortest int
	Longest  int
}

// LengthSummaries computes a length summary per label, in label order.
// A label with no words yields a zero summary.
func (c *Corpus) LengthSummaries() []LengthSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]LengthSummary, 0, len(c.order))
	for _, label := range c.order {
		rec := c.records[label]
		lengths := make([]float64, 0, len(rec.WordLength))
		for _, n := range rec.WordLength {
			lengths = append(lengths, float64(n))
		}
		sort.Float64s(lengths)

		s := LengthSummary{Label: label, Words: len(lengths)}
		if len(lengths) > 0 {
			s.Mean = stat.Mean(lengths, nil)
			s.Median = stat.Quantile(0.5, stat.Empirical, lengths, nil)
			s.Shortest = int(lengths[0])
			s.Longest = int(lengths[len(lengths)-1])
		}
		if len(lengths) > 1 {
			s.StdDev = stat.StdDev(lengths, nil)
		}
		out = append(out, s)
	}
	return out
}

// Package textnorm turns raw lyric text into the cleaned form that word
// statistics are computed from: lowercased, ASCII punctuation stripped,
// stopwords removed.
package textnorm

import "strings"

// asciiPunct is the set of characters removed during cleaning. Punctuation
// handling is deliberately ASCII-only; unicode punctuation passes through.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalizer cleans text against a fixed stopword set.
type Normalizer struct {
	stops *StopwordSet
}

// NewNormalizer creates a normalizer. A nil set behaves as an empty one.
func NewNormalizer(stops *StopwordSet) *Normalizer {
	if stops == nil {
		stops = NewStopwordSet()
	}
	return &Normalizer{stops: stops}
}

// Stopwords returns the set the normalizer filters against.
func (n *Normalizer) Stopwords() *StopwordSet {
	return n.stops
}

// Clean normalizes text in fixed order: newlines become spaces, the whole
// string is lowercased, ASCII punctuation characters are dropped, and the
// remaining whitespace-split tokens are filtered through the stopword set
// and rejoined with single spaces. Clean is idempotent on its own output.
func (n *Normalizer) Clean(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunct, r) {
			return -1
		}
		return r
	}, text)

	var kept []string
	for _, tok := range strings.Fields(text) {
		if n.stops.Has(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}

// Package sentiment scores text polarity with a VADER model.
//
// Scoring runs over raw, unnormalized text on purpose: the lexicon draws
// signal from capitalization, punctuation emphasis, and words that the
// cleaning pipeline would otherwise strip as stopwords.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Scores is one text's polarity breakdown. Positive, Negative, and Neutral
// are proportions in [0,1] summing to roughly 1; Compound is the single
// normalized score in [-1,1].
type Scores struct {
	Positive float64
	Negative float64
	Neutral  float64
	Compound float64
}

// Analyzer wraps the VADER intensity model. Construction loads the lexicon
// once; the value is intended to live for the whole process.
type Analyzer struct {
	model *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer initializes the sentiment model.
func NewAnalyzer() *Analyzer {
	return &Analyzer{model: govader.NewSentimentIntensityAnalyzer()}
}

// Score computes polarity scores for text.
func (a *Analyzer) Score(text string) Scores {
	s := a.model.PolarityScores(text)
	return Scores{
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Compound: s.Compound,
	}
}

// Series holds per-label score sequences, parallel by index, in label
// insertion order. It is the data contract of the grouped bar chart.
type Series struct {
	Labels   []string
	Positive []float64
	Negative []float64
	Neutral  []float64
	Compound []float64
}

// Add appends one label's scores to every sequence.
func (s *Series) Add(label string, sc Scores) {
	s.Labels = append(s.Labels, label)
	s.Positive = append(s.Positive, sc.Positive)
	s.Negative = append(s.Negative, sc.Negative)
	s.Neutral = append(s.Neutral, sc.Neutral)
	s.Compound = append(s.Compound, sc.Compound)
}

// Len returns the number of labels in the series.
func (s *Series) Len() int {
	return len(s.Labels)
}

// DisplayLabel strips a presentation-only prefix from a label: when the
// label contains '-', only the part after the first '-' is shown, so
// "artist-title" charts as "title". Labels without '-' pass unchanged.
func DisplayLabel(label string) string {
	if i := strings.Index(label, "-"); i >= 0 {
		return label[i+1:]
	}
	return label
}

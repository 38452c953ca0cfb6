package sentiment

import (
	"math"
	"testing"
)

func TestScorePositiveText(t *testing.T) {
	a := NewAnalyzer()
	s := a.Score("I love this wonderful, beautiful song!")
	if s.Compound <= 0 {
		t.Fatalf("compound = %v, want > 0", s.Compound)
	}
	if s.Positive <= s.Negative {
		t.Fatalf("positive %v not above negative %v", s.Positive, s.Negative)
	}
}

func TestScoreNegativeText(t *testing.T) {
	a := NewAnalyzer()
	s := a.Score("I hate this horrible, terrible noise.")
	if s.Compound >= 0 {
		t.Fatalf("compound = %v, want < 0", s.Compound)
	}
	if s.Negative <= s.Positive {
		t.Fatalf("negative %v not above positive %v", s.Negative, s.Positive)
	}
}

func TestScoreProportionsSumToOne(t *testing.T) {
	a := NewAnalyzer()
	s := a.Score("The quick brown fox jumps over the lazy dog, and I love it.")
	sum := s.Positive + s.Negative + s.Neutral
	if math.Abs(sum-1) > 0.02 {
		t.Fatalf("proportions sum = %v, want ~1", sum)
	}
}

func TestScoreEmptyText(t *testing.T) {
	a := NewAnalyzer()
	s := a.Score("")
	if s.Compound != 0 {
		t.Fatalf("compound for empty text = %v, want 0", s.Compound)
	}
}

func TestSeriesAddKeepsOrder(t *testing.T) {
	var series Series
	series.Add("first", Scores{Positive: 0.1, Compound: 0.5})
	series.Add("second", Scores{Negative: 0.2, Compound: -0.5})

	if series.Len() != 2 {
		t.Fatalf("len = %d, want 2", series.Len())
	}
	if series.Labels[0] != "first" || series.Labels[1] != "second" {
		t.Fatalf("labels out of order: %v", series.Labels)
	}
	if series.Compound[0] != 0.5 || series.Compound[1] != -0.5 {
		t.Fatalf("compound sequence = %v", series.Compound)
	}
	if series.Positive[1] != 0 {
		t.Fatalf("positive[1] = %v, want zero fill", series.Positive[1])
	}
}

func TestDisplayLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"queen-bohemian rhapsody", "bohemian rhapsody"},
		{"a-b-c", "b-c"},
		{"plain", "plain"},
		{"-leading", "leading"},
		{"", ""},
	}
	for _, c := range cases {
		if got := DisplayLabel(c.in); got != c.want {
			t.Fatalf("DisplayLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

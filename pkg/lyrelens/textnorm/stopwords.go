package textnorm

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// StopwordSet is a set of words excluded from word statistics.
// Matching is exact-string against normalized tokens, so entries containing
// punctuation or upper case will never match anything.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet creates an empty stopword set.
func NewStopwordSet() *StopwordSet {
	return &StopwordSet{words: make(map[string]struct{})}
}

// Add inserts a single entry.
func (s *StopwordSet) Add(word string) {
	s.words[word] = struct{}{}
}

// Has reports whether word is in the set.
func (s *StopwordSet) Has(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct entries.
func (s *StopwordSet) Len() int {
	return len(s.words)
}

// Words returns all entries in unspecified order.
func (s *StopwordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}

// LoadFile reads a stopword list: one entry per line, trimmed of surrounding
// whitespace. Lines whose trimmed form starts with '#' are comments. All
// other lines are added verbatim, blank results included, matching the
// permissive behavior of common stopword-list formats.
func (s *StopwordSet) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		s.Add(line)
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("read stopwords %s: %w", path, err)
	}

	return nil
}

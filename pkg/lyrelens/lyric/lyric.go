// Package lyric extracts plain lyric text from timestamped lyric files.
//
// The supported format is line oriented: a line may begin with one or more
// bracketed fields (timestamps like [00:12.34] or metadata like [ar:Name]),
// and the text after the first closing bracket is the lyric for that line.
package lyric

import (
	"fmt"
	"strings"
)

// ParseFunc converts one file's raw bytes into lyric text.
// Implementations must not touch the filesystem; file access belongs to the
// caller so that a parse strategy can be swapped per input kind.
type ParseFunc func(raw []byte) (string, error)

// LineFormatError reports a lyric line whose bracket structure could not be
// split into a timestamp part and a content part.
type LineFormatError struct {
	Line string
}

func (e *LineFormatError) Error() string {
	return fmt.Sprintf("line format: %q", e.Line)
}

// Parse extracts lyric text from timestamped lyric file content.
//
// The input is split on newlines. A line containing ']' contributes
// everything after the first ']' (trimmed); empty remainders are dropped.
// A line starting with '[' that has no ':' is a bare metadata line and is
// skipped. Anything else is skipped as well, including the odd case of a
// line starting with '[' that contains ':' but never closes the bracket.
// Retained lines are joined with newlines.
func Parse(raw []byte) (string, error) {
	var song []string

	for _, line := range strings.Split(string(raw), "\n") {
		switch {
		case strings.Contains(line, "]"):
			parts := strings.SplitN(line, "]", 2)
			if len(parts) < 2 {
				return "", &LineFormatError{Line: line}
			}
			if text := strings.TrimSpace(parts[1]); text != "" {
				song = append(song, text)
			}
		case strings.HasPrefix(line, "[") && !strings.Contains(line, ":"):
			// timestamp-only line, nothing to keep
		default:
			// skipped: blank lines, unbracketed text, and unclosed
			// '['-lines that do contain ':'
		}
	}

	return strings.Join(song, "\n"), nil
}

// Passthrough returns the raw bytes unchanged as text. It is the default
// strategy for inputs that carry no lyric markup.
func Passthrough(raw []byte) (string, error) {
	return string(raw), nil
}

// Package render writes the presentation artifacts of a run: an
// interactive sankey diagram, a word cloud grid, and a grouped sentiment
// bar chart.
package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
)

// Candidate font locations by operating system. Only TrueType files that
// actually parse are accepted, so .ttc collections that the parser cannot
// handle fall through to the next candidate.
var systemFontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation-sans/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	// Windows
	"C:/Windows/Fonts/arial.ttf",
	"C:/Windows/Fonts/verdana.ttf",
}

// FindFont returns the path of a usable TrueType font. An explicit path
// is validated and returned as-is; otherwise well-known system locations
// are probed in order.
func FindFont(explicit string) (string, error) {
	if explicit != "" {
		if err := checkFont(explicit); err != nil {
			return "", fmt.Errorf("font %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, path := range systemFontPaths {
		if checkFont(path) == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no usable TrueType font found, set one explicitly")
}

func checkFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = truetype.Parse(data)
	return err
}

// Package textdir enumerates input files for a pipeline run.
package textdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one input file found in a directory. Label is the file name
// without its extension and becomes the text's identity downstream.
type Entry struct {
	Path  string
	Label string
}

// List returns the entries in dir whose name ends with ext (for example
// ".lrc"), sorted by file name so runs over the same directory always
// process inputs in the same order. The extension match is
// case-insensitive and subdirectories are not descended into.
func List(dir, ext string) ([]Entry, error) {
	infos, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var entries []Entry
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		entries = append(entries, Entry{
			Path:  filepath.Join(dir, name),
			Label: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/verselab/lyrelens/pkg/lyrelens/internalerr"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func requireFont(t *testing.T) string {
	t.Helper()
	path, err := FindFont("")
	if err != nil {
		t.Skipf("no system font available: %v", err)
	}
	return path
}

func readPNG(t *testing.T, path string) (data []byte, width, height int) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("output is not a PNG")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	return data, cfg.Width, cfg.Height
}

func TestWriteWordClouds(t *testing.T) {
	requireFont(t)

	labels := []string{"first", "second", "third"}
	counts := map[string]map[string]int{
		"first":  {"love": 9, "rain": 4, "night": 2},
		"second": {"road": 5, "home": 3},
		"third":  {"fire": 7, "gold": 1},
	}

	path := filepath.Join(t.TempDir(), "clouds.png")
	opts := CloudOptions{PanelWidth: 200, PanelHeight: 100, Title: "Word Clouds"}
	if err := WriteWordClouds(labels, counts, opts, path); err != nil {
		t.Fatalf("WriteWordClouds failed: %v", err)
	}

	// 3 labels lay out as 1 row of 3 panels.
	_, width, height := readPNG(t, path)
	if width != 3*200 {
		t.Errorf("width = %d, want %d", width, 3*200)
	}
	if height != cloudHeaderHeight+cloudTitleHeight+100 {
		t.Errorf("height = %d", height)
	}
}

func TestWriteWordCloudsGridShape(t *testing.T) {
	requireFont(t)

	labels := []string{"a", "b", "c", "d"}
	counts := map[string]map[string]int{
		"a": {"one": 1}, "b": {"two": 2}, "c": {"three": 3}, "d": {"four": 4},
	}

	path := filepath.Join(t.TempDir(), "clouds.png")
	opts := CloudOptions{PanelWidth: 150, PanelHeight: 80}
	if err := WriteWordClouds(labels, counts, opts, path); err != nil {
		t.Fatal(err)
	}

	// 4 labels lay out as a 2x2 grid.
	_, width, height := readPNG(t, path)
	if width != 2*150 {
		t.Errorf("width = %d, want %d", width, 2*150)
	}
	if height != cloudHeaderHeight+2*(cloudTitleHeight+80) {
		t.Errorf("height = %d", height)
	}
}

func TestWriteWordCloudsLabelWithNoWords(t *testing.T) {
	requireFont(t)

	path := filepath.Join(t.TempDir(), "clouds.png")
	opts := CloudOptions{PanelWidth: 150, PanelHeight: 80}
	err := WriteWordClouds([]string{"hollow"}, map[string]map[string]int{}, opts, path)
	if err != nil {
		t.Fatalf("empty text should still render a panel: %v", err)
	}
	readPNG(t, path)
}

func TestWriteWordCloudsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clouds.png")
	err := WriteWordClouds(nil, nil, CloudOptions{}, path)
	if !errors.Is(err, internalerr.ErrEmptyCorpus) {
		t.Fatalf("error = %v, want ErrEmptyCorpus", err)
	}
}

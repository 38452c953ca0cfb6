package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SongsDir != "songs" {
		t.Errorf("Expected songs dir 'songs', got %q", cfg.SongsDir)
	}
	if cfg.StopwordsDir != "stopwords" {
		t.Errorf("Expected stopwords dir 'stopwords', got %q", cfg.StopwordsDir)
	}
	if cfg.TopWords != 10 {
		t.Errorf("Expected 10 top words, got %d", cfg.TopWords)
	}
	if cfg.Outputs.Sankey != "wordcount_sankey.html" {
		t.Errorf("Unexpected sankey output: %q", cfg.Outputs.Sankey)
	}
	if cfg.WordCloud.PanelWidth != 800 || cfg.WordCloud.PanelHeight != 400 {
		t.Errorf("Unexpected panel size: %dx%d", cfg.WordCloud.PanelWidth, cfg.WordCloud.PanelHeight)
	}
	if cfg.StemLanguage != "" {
		t.Errorf("Stemming should be off by default, got %q", cfg.StemLanguage)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "lyrelens.yaml")

	content := `songs_dir: ballads
top_words: 25
outputs:
  sankey: flows.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.SongsDir != "ballads" {
		t.Errorf("Expected songs dir 'ballads', got %q", cfg.SongsDir)
	}
	if cfg.TopWords != 25 {
		t.Errorf("Expected 25 top words, got %d", cfg.TopWords)
	}
	if cfg.Outputs.Sankey != "flows.json" {
		t.Errorf("Expected sankey output 'flows.json', got %q", cfg.Outputs.Sankey)
	}

	// Fields absent from the file keep defaults
	if cfg.StopwordsDir != "stopwords" {
		t.Errorf("Expected default stopwords dir, got %q", cfg.StopwordsDir)
	}
	if cfg.Outputs.WordCloud != "word_clouds.png" {
		t.Errorf("Expected default word cloud output, got %q", cfg.Outputs.WordCloud)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/lyrelens.yaml"); err == nil {
		t.Error("Should error on non-existent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(path, []byte("songs_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Should error on malformed YAML")
	}
}

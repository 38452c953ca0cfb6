package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the pipeline configuration
type Config struct {
	// SongsDir holds .lrc lyric files, one text per file.
	SongsDir string `yaml:"songs_dir"`
	// StopwordsDir holds .txt stopword lists, all of which are applied.
	StopwordsDir string `yaml:"stopwords_dir"`
	// TextsDir optionally holds plain .txt texts loaded verbatim.
	TextsDir string `yaml:"texts_dir"`
	// TopWords is how many corpus-wide words the sankey diagram links.
	TopWords int `yaml:"top_words"`
	// StemLanguage enables snowball stemming when set (e.g. "english").
	StemLanguage string `yaml:"stem_language"`

	Outputs   Outputs   `yaml:"outputs"`
	WordCloud WordCloud `yaml:"wordcloud"`
}

// Outputs names the artifact files a run writes
type Outputs struct {
	Sankey    string `yaml:"sankey"`
	WordCloud string `yaml:"wordcloud"`
	Sentiment string `yaml:"sentiment"`
	Database  string `yaml:"database"`
}

// WordCloud sizes the per-text panels of the word cloud grid
type WordCloud struct {
	PanelWidth  int    `yaml:"panel_width"`
	PanelHeight int    `yaml:"panel_height"`
	FontFile    string `yaml:"font_file"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		SongsDir:     "songs",
		StopwordsDir: "stopwords",
		TopWords:     10,
		Outputs: Outputs{
			Sankey:    "wordcount_sankey.html",
			WordCloud: "word_clouds.png",
			Sentiment: "sentiment_comparison.png",
			Database:  "lyrelens.db",
		},
		WordCloud: WordCloud{
			PanelWidth:  800,
			PanelHeight: 400,
		},
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

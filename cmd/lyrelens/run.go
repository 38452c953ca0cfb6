package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/verselab/lyrelens/pkg/lyrelens/render"
)

// RunOptions configures the run command
type RunOptions struct {
	Input  InputOptions
	Sankey string
	Clouds string
	Bars   string
	Font   string
}

func parseRunArgs(args []string, ui UI) (RunOptions, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(ui.Err)
	in := addInputFlags(fs)
	sankeyOut := fs.String("sankey", "", "sankey output file (.html, or .json for raw data)")
	cloudsOut := fs.String("clouds", "", "word cloud grid output file (.png)")
	barsOut := fs.String("bars", "", "sentiment chart output file (.png)")
	font := fs.String("font", "", "TrueType font file for word clouds")

	if err := fs.Parse(args); err != nil {
		return RunOptions{}, err
	}
	inputs, err := in.resolve()
	if err != nil {
		return RunOptions{}, err
	}

	opts := RunOptions{
		Input:  inputs,
		Sankey: *sankeyOut,
		Clouds: *cloudsOut,
		Bars:   *barsOut,
		Font:   *font,
	}
	cfg := inputs.Config
	if opts.Sankey == "" {
		opts.Sankey = cfg.Outputs.Sankey
	}
	if opts.Clouds == "" {
		opts.Clouds = cfg.Outputs.WordCloud
	}
	if opts.Bars == "" {
		opts.Bars = cfg.Outputs.Sentiment
	}
	if opts.Font == "" {
		opts.Font = cfg.WordCloud.FontFile
	}
	return opts, nil
}

func analyzeCommand(opts RunOptions, ui UI) error {
	analyzer, err := loadAnalyzer(opts.Input, ui)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	top := analyzer.TopWords(opts.Input.TopWords)
	fmt.Fprintf(ui.Out, "Loaded %d texts, %d distinct words\n", analyzer.Len(), len(analyzer.Totals()))
	fmt.Fprintf(ui.Out, "Top %d words: %s\n", len(top), strings.Join(top, ", "))
	for _, s := range analyzer.LengthSummaries() {
		fmt.Fprintf(ui.Out, "  %-24s %4d distinct words, mean length %.2f (%d..%d)\n",
			s.Label, s.Words, s.Mean, s.Shortest, s.Longest)
	}

	flow := analyzer.Sankey(top, opts.Input.TopWords)
	if err := render.WriteSankey(flow, "Word Count Flows", opts.Sankey); err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "Wrote %s\n", opts.Sankey)

	labels := analyzer.Labels()
	counts := make(map[string]map[string]int, len(labels))
	for _, label := range labels {
		rec, err := analyzer.Record(label)
		if err != nil {
			return err
		}
		counts[label] = rec.WordCount
	}
	cloudOpts := render.CloudOptions{
		PanelWidth:  opts.Input.Config.WordCloud.PanelWidth,
		PanelHeight: opts.Input.Config.WordCloud.PanelHeight,
		FontFile:    opts.Font,
		Title:       "Word Clouds",
	}
	if err := render.WriteWordClouds(labels, counts, cloudOpts, opts.Clouds); err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "Wrote %s\n", opts.Clouds)

	if err := render.WriteSentimentBars(analyzer.SentimentSeries(), "Sentiment Comparison", opts.Bars); err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "Wrote %s\n", opts.Bars)

	return nil
}

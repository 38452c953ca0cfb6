package main

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/verselab/lyrelens/pkg/lyrelens"
)

func parseExploreArgs(args []string, ui UI) (InputOptions, error) {
	fs := flag.NewFlagSet("explore", flag.ContinueOnError)
	fs.SetOutput(ui.Err)
	in := addInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return InputOptions{}, err
	}
	return in.resolve()
}

var exploreCommands = []prompt.Suggest{
	{Text: "labels", Description: "list loaded texts"},
	{Text: "top", Description: "top words across all texts: top [k]"},
	{Text: "word", Description: "per-text counts of one word: word <w>"},
	{Text: "sentiment", Description: "polarity scores per text"},
	{Text: "lengths", Description: "word length summary per text"},
	{Text: "stats", Description: "corpus totals"},
	{Text: "help", Description: "list commands"},
	{Text: "quit", Description: "leave the prompt"},
}

func exploreCommand(opts InputOptions, ui UI) error {
	analyzer, err := loadAnalyzer(opts, ui)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	vocabulary := sortedVocabulary(analyzer)
	fmt.Fprintf(ui.Out, "%d texts loaded, %d distinct words. Type 'help' for commands, 'quit' to leave.\n",
		analyzer.Len(), len(vocabulary))

	history := []string{}
	for {
		in := prompt.Input("lyrelens> ", exploreCompleter(vocabulary),
			prompt.OptionTitle("lyrelens explore"),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == "quit" || in == "exit" {
			return nil
		}
		history = append(history, in)

		if err := runExploreLine(analyzer, opts, in, ui); err != nil {
			fmt.Fprintf(ui.Out, "error: %v\n", err)
		}
	}
}

func runExploreLine(analyzer *lyrelens.Analyzer, opts InputOptions, in string, ui UI) error {
	fields := strings.Fields(in)

	switch fields[0] {
	case "labels":
		for _, label := range analyzer.Labels() {
			fmt.Fprintln(ui.Out, label)
		}

	case "top":
		k := opts.TopWords
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("top wants a number, got %q", fields[1])
			}
			k = n
		}
		totals := analyzer.Totals()
		for _, word := range analyzer.TopWords(k) {
			fmt.Fprintf(ui.Out, "%6d  %s\n", totals[word], word)
		}

	case "word":
		if len(fields) < 2 {
			return fmt.Errorf("usage: word <w>")
		}
		word := fields[1]
		total := 0
		for _, label := range analyzer.Labels() {
			rec, err := analyzer.Record(label)
			if err != nil {
				return err
			}
			fmt.Fprintf(ui.Out, "%6d  %s\n", rec.WordCount[word], label)
			total += rec.WordCount[word]
		}
		fmt.Fprintf(ui.Out, "%6d  total\n", total)

	case "sentiment":
		series := analyzer.SentimentSeries()
		fmt.Fprintf(ui.Out, "%-24s %9s %9s %9s %9s\n", "label", "positive", "negative", "neutral", "compound")
		for i, label := range series.Labels {
			fmt.Fprintf(ui.Out, "%-24s %9.3f %9.3f %9.3f %9.4f\n",
				label, series.Positive[i], series.Negative[i], series.Neutral[i], series.Compound[i])
		}

	case "lengths":
		for _, s := range analyzer.LengthSummaries() {
			fmt.Fprintf(ui.Out, "%-24s %4d distinct words, mean %.2f, median %.1f, stddev %.2f (%d..%d)\n",
				s.Label, s.Words, s.Mean, s.Median, s.StdDev, s.Shortest, s.Longest)
		}

	case "stats":
		totals := analyzer.Totals()
		occurrences := 0
		for _, n := range totals {
			occurrences += n
		}
		fmt.Fprintf(ui.Out, "texts:          %d\n", analyzer.Len())
		fmt.Fprintf(ui.Out, "distinct words: %d\n", len(totals))
		fmt.Fprintf(ui.Out, "occurrences:    %d\n", occurrences)
		fmt.Fprintf(ui.Out, "stopwords:      %d\n", analyzer.Stopwords().Len())

	case "help":
		for _, c := range exploreCommands {
			fmt.Fprintf(ui.Out, "  %-10s %s\n", c.Text, c.Description)
		}

	default:
		return fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
	return nil
}

func sortedVocabulary(a *lyrelens.Analyzer) []string {
	totals := a.Totals()
	words := make([]string, 0, len(totals))
	for word := range totals {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

func exploreCompleter(vocabulary []string) prompt.Completer {
	vocabSuggests := make([]prompt.Suggest, len(vocabulary))
	for i, word := range vocabulary {
		vocabSuggests[i] = prompt.Suggest{Text: word}
	}

	return func(d prompt.Document) []prompt.Suggest {
		return completeExplore(d.TextBeforeCursor(), vocabSuggests)
	}
}

// completeExplore suggests commands for the first token and vocabulary
// words as the argument of 'word'.
func completeExplore(before string, vocabSuggests []prompt.Suggest) []prompt.Suggest {
	if before == "" {
		return nil
	}

	tokens := strings.Split(before, " ")
	if len(tokens) == 1 {
		return prompt.FilterHasPrefix(exploreCommands, tokens[0], true)
	}
	if tokens[0] == "word" && len(tokens) == 2 {
		return prompt.FilterHasPrefix(vocabSuggests, tokens[1], true)
	}
	return nil
}

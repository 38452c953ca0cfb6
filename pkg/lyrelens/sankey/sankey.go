// Package sankey assembles text-to-word flow data for sankey diagrams.
package sankey

// Flow is a sankey dataset in parallel-slice form. NodeLabels lists every
// node: first the text labels in their given order, then the words in
// their given order. Sources and Targets index into NodeLabels, and
// Values carries the weight of each link.
type Flow struct {
	Sources    []int
	Targets    []int
	Values     []int
	NodeLabels []string
}

// Links returns the number of links in the flow.
func (f Flow) Links() int {
	return len(f.Sources)
}

// Build connects each text label to each chosen word it contains, weighted
// by that word's count in the text. Links are emitted label by label, in
// word order within a label, and words with a zero count in a text produce
// no link. Duplicate words keep their first position and later copies are
// ignored. counts maps label to that text's word counts; labels absent
// from counts simply link to nothing.
func Build(labels, words []string, counts map[string]map[string]int) Flow {
	labelIdx := make(map[string]int, len(labels))
	for i, label := range labels {
		labelIdx[label] = i
	}

	seen := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		uniq = append(uniq, word)
	}

	wordIdx := make(map[string]int, len(uniq))
	for i, word := range uniq {
		wordIdx[word] = len(labels) + i
	}

	var flow Flow
	flow.NodeLabels = make([]string, 0, len(labels)+len(uniq))
	flow.NodeLabels = append(flow.NodeLabels, labels...)
	flow.NodeLabels = append(flow.NodeLabels, uniq...)

	for _, label := range labels {
		wc := counts[label]
		for _, word := range uniq {
			n := wc[word]
			if n <= 0 {
				continue
			}
			flow.Sources = append(flow.Sources, labelIdx[label])
			flow.Targets = append(flow.Targets, wordIdx[word])
			flow.Values = append(flow.Values, n)
		}
	}
	return flow
}

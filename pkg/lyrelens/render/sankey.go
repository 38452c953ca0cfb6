package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/verselab/lyrelens/pkg/lyrelens/internalerr"
	"github.com/verselab/lyrelens/pkg/lyrelens/sankey"
)

// flowJSON is the raw export shape of a sankey dataset. Source and Target
// index into Label.
type flowJSON struct {
	Source []int    `json:"source"`
	Target []int    `json:"target"`
	Value  []int    `json:"value"`
	Label  []string `json:"label"`
}

// WriteSankey renders flow to path. A ".json" extension writes the raw
// dataset; any other extension writes a self-contained HTML page with an
// interactive diagram. Links in the page reference nodes by name, so a
// text label that collides with a word would merge into one node; labels
// come from file names and words from cleaned lyrics, which keeps the two
// namespaces apart in practice.
func WriteSankey(flow sankey.Flow, title, path string) error {
	if len(flow.NodeLabels) == 0 {
		return fmt.Errorf("render sankey: %w", internalerr.ErrEmptyCorpus)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return writeSankeyJSON(flow, path)
	}
	return writeSankeyHTML(flow, title, path)
}

func writeSankeyJSON(flow sankey.Flow, path string) error {
	out := flowJSON{
		Source: flow.Sources,
		Target: flow.Targets,
		Value:  flow.Values,
		Label:  flow.NodeLabels,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sankey data: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeSankeyHTML(flow sankey.Flow, title, path string) error {
	diagram := charts.NewSankey()
	diagram.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "700px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	nodes := make([]opts.SankeyNode, len(flow.NodeLabels))
	for i, name := range flow.NodeLabels {
		nodes[i] = opts.SankeyNode{Name: name}
	}
	links := make([]opts.SankeyLink, flow.Links())
	for i := range flow.Sources {
		links[i] = opts.SankeyLink{
			Source: flow.NodeLabels[flow.Sources[i]],
			Target: flow.NodeLabels[flow.Targets[i]],
			Value:  float32(flow.Values[i]),
		}
	}
	diagram.AddSeries("wordcount", nodes, links,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := diagram.Render(f); err != nil {
		return fmt.Errorf("render sankey: %w", err)
	}
	return nil
}

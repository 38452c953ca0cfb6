package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/psykhi/wordclouds"

	"github.com/verselab/lyrelens/pkg/lyrelens/internalerr"
)

const (
	cloudHeaderHeight = 60
	cloudTitleHeight  = 30
)

var cloudPalette = []color.Color{
	color.RGBA{R: 70, G: 130, B: 180, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
	color.RGBA{R: 60, G: 179, B: 113, A: 255},
	color.RGBA{R: 205, G: 92, B: 92, A: 255},
	color.RGBA{R: 106, G: 90, B: 205, A: 255},
}

// CloudOptions controls the word cloud grid.
type CloudOptions struct {
	// PanelWidth and PanelHeight size one text's cloud. Zero values fall
	// back to 800x400.
	PanelWidth  int
	PanelHeight int
	// FontFile overrides system font discovery.
	FontFile string
	// Title is drawn across the top of the grid.
	Title string
}

// WriteWordClouds renders one word cloud per label into a single PNG
// grid. The grid has floor(sqrt(n)) rows and as many columns as needed,
// panels are filled row by row in label order, and each panel carries the
// label above it. counts maps label to that text's word counts.
func WriteWordClouds(labels []string, counts map[string]map[string]int, o CloudOptions, path string) error {
	if len(labels) == 0 {
		return fmt.Errorf("render word clouds: %w", internalerr.ErrEmptyCorpus)
	}

	fontPath, err := FindFont(o.FontFile)
	if err != nil {
		return err
	}

	panelW := o.PanelWidth
	if panelW <= 0 {
		panelW = 800
	}
	panelH := o.PanelHeight
	if panelH <= 0 {
		panelH = 400
	}

	rows := int(math.Sqrt(float64(len(labels))))
	if rows < 1 {
		rows = 1
	}
	cols := (len(labels) + rows - 1) / rows

	width := cols * panelW
	height := cloudHeaderHeight + rows*(cloudTitleHeight+panelH)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if o.Title != "" {
		if err := dc.LoadFontFace(fontPath, 24); err != nil {
			return fmt.Errorf("load font %s: %w", fontPath, err)
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(o.Title, float64(width)/2, cloudHeaderHeight/2, 0.5, 0.5)
	}

	for i, label := range labels {
		row := i / cols
		col := i % cols
		x := col * panelW
		y := cloudHeaderHeight + row*(cloudTitleHeight+panelH)

		if err := dc.LoadFontFace(fontPath, 16); err != nil {
			return fmt.Errorf("load font %s: %w", fontPath, err)
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(label, float64(x)+float64(panelW)/2, float64(y)+cloudTitleHeight/2, 0.5, 0.5)

		wc := counts[label]
		if len(wc) == 0 {
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.DrawStringAnchored("(no words)", float64(x)+float64(panelW)/2, float64(y+cloudTitleHeight)+float64(panelH)/2, 0.5, 0.5)
			continue
		}

		cloud := wordclouds.NewWordcloud(wc,
			wordclouds.FontFile(fontPath),
			wordclouds.Width(panelW),
			wordclouds.Height(panelH),
			wordclouds.FontMaxSize(96),
			wordclouds.FontMinSize(12),
			wordclouds.Colors(cloudPalette),
			wordclouds.BackgroundColor(color.White),
			wordclouds.RandomPlacement(false),
		)
		dc.DrawImage(cloud.Draw(), x, y+cloudTitleHeight)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

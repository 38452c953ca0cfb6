package render

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/verselab/lyrelens/pkg/lyrelens/internalerr"
	"github.com/verselab/lyrelens/pkg/lyrelens/sentiment"
)

// One bar per score component, drawn in this order within each group.
var barComponents = []struct {
	name  string
	color drawing.Color
}{
	{"positive", drawing.Color{R: 144, G: 238, B: 144, A: 255}},
	{"negative", drawing.Color{R: 250, G: 128, B: 114, A: 255}},
	{"neutral", drawing.Color{R: 173, G: 216, B: 230, A: 255}},
	{"compound", drawing.Color{R: 30, G: 144, B: 255, A: 255}},
}

// WriteSentimentBars renders a grouped bar chart PNG comparing polarity
// scores across texts. Each text gets four bars on a fixed [-1,1] scale,
// every bar is annotated with its value, and tick labels use the
// display form of each label.
func WriteSentimentBars(series *sentiment.Series, title, path string) error {
	n := series.Len()
	if n == 0 {
		return fmt.Errorf("render sentiment bars: %w", internalerr.ErrEmptyCorpus)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		font = nil
	}

	width := 200*n + 160
	if width < 900 {
		width = 900
	}

	ticks := make([]chart.Tick, n)
	centers := make([]float64, n)
	zeros := make([]float64, n)
	for i, label := range series.Labels {
		centers[i] = float64(i) + 0.5
		ticks[i] = chart.Tick{Value: centers[i], Label: sentiment.DisplayLabel(label)}
	}

	var yTicks []chart.Tick
	for v := -1.0; v <= 1.0; v += 0.5 {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}

	graph := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 18, Font: font},
		Width:      width,
		Height:     600,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 80, Right: 50, Bottom: 140},
		},
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 9, Font: font, TextRotationDegrees: 45},
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(n)},
		},
		YAxis: chart.YAxis{
			Name:      "polarity score",
			NameStyle: chart.Style{FontSize: 12, Font: font},
			Style:     chart.Style{FontSize: 9, Font: font},
			Range:     &chart.ContinuousRange{Min: -1, Max: 1},
			Ticks:     yTicks,
		},
		Series: []chart.Series{
			// Invisible series so the chart has data to lay out.
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: 0,
					StrokeColor: drawing.ColorTransparent,
					FillColor:   drawing.ColorTransparent,
				},
				XValues: centers,
				YValues: zeros,
			},
		},
	}

	graph.Elements = []chart.Renderable{
		func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
			canvasW := float64(canvasBox.Width())
			canvasH := float64(canvasBox.Height())
			xPix := func(x float64) int {
				return canvasBox.Left + int(x/float64(n)*canvasW)
			}
			yPix := func(v float64) int {
				return canvasBox.Top + int((1-v)/2*canvasH)
			}

			barW := int(canvasW / float64(n) / 6)
			if barW > 36 {
				barW = 36
			}
			if barW < 6 {
				barW = 6
			}
			zeroY := yPix(0)

			for i := 0; i < n; i++ {
				start := xPix(centers[i]) - 2*barW
				vals := [4]float64{
					series.Positive[i],
					series.Negative[i],
					series.Neutral[i],
					series.Compound[i],
				}
				for j, v := range vals {
					left := start + j*barW + 1
					right := start + (j+1)*barW - 1
					top, bottom := yPix(v), zeroY
					if top > bottom {
						top, bottom = bottom, top
					}

					r.SetFillColor(barComponents[j].color)
					r.SetStrokeColor(drawing.ColorBlack)
					r.SetStrokeWidth(0.5)
					r.MoveTo(left, top)
					r.LineTo(right, top)
					r.LineTo(right, bottom)
					r.LineTo(left, bottom)
					r.LineTo(left, top)
					r.FillStroke()

					if font != nil {
						r.SetFont(font)
					}
					r.SetFontSize(8)
					r.SetFillColor(drawing.ColorBlack)
					label := fmt.Sprintf("%.2f", v)
					tb := r.MeasureText(label)
					tx := (left+right)/2 - tb.Width()/2
					ty := yPix(v) - 4
					if v < 0 {
						ty = yPix(v) + tb.Height() + 4
					}
					r.Text(label, tx, ty)
				}
			}

			r.SetStrokeColor(drawing.ColorBlack)
			r.SetStrokeWidth(1)
			r.MoveTo(canvasBox.Left, zeroY)
			r.LineTo(canvasBox.Right, zeroY)
			r.Stroke()

			lx := canvasBox.Left + 10
			ly := canvasBox.Top + 10
			for _, comp := range barComponents {
				r.SetFillColor(comp.color)
				r.SetStrokeColor(drawing.ColorBlack)
				r.SetStrokeWidth(0.5)
				r.MoveTo(lx, ly)
				r.LineTo(lx+12, ly)
				r.LineTo(lx+12, ly+12)
				r.LineTo(lx, ly+12)
				r.LineTo(lx, ly)
				r.FillStroke()

				if font != nil {
					r.SetFont(font)
				}
				r.SetFontSize(10)
				r.SetFillColor(drawing.ColorBlack)
				r.Text(comp.name, lx+18, ly+11)
				ly += 18
			}
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render sentiment bars: %w", err)
	}
	return nil
}

package sink

import (
	"bytes"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/colorbars/pkg/chart"
	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/palette"
)

// MaxPNGLabels is the bar count above which category labels are omitted;
// beyond it the labels overlap.
const MaxPNGLabels = 40

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	title      string
	background string
	dpi        float64
}

// WithPNGTitle draws a title above the chart.
func WithPNGTitle(title string) PNGOption { return func(r *pngRenderer) { r.title = title } }

// WithPNGBackground sets the canvas colour in any form palette.ParseCSS accepts.
func WithPNGBackground(color string) PNGOption {
	return func(r *pngRenderer) { r.background = color }
}

// WithDPI sets the output resolution (default 96).
func WithDPI(dpi float64) PNGOption { return func(r *pngRenderer) { r.dpi = dpi } }

// RenderPNG renders the frame as a PNG bar chart with go-chart.
func RenderPNG(f *chart.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: gochart.DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if f.RectCount() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot render an empty chart as png")
	}

	bars := make([]gochart.Value, 0, len(f.Bars))
	for _, b := range f.Bars {
		label := b.Key
		if len(f.Bars) > MaxPNGLabels {
			label = ""
		}
		bars = append(bars, gochart.Value{
			Label: label,
			Value: b.Value,
			Style: gochart.Style{
				FillColor:   toDrawingColor(b.Fill),
				StrokeColor: toDrawingColor(b.Fill),
				StrokeWidth: 0,
			},
		})
	}

	yTicks := make([]gochart.Tick, 0, len(f.YAxis().Ticks))
	for _, t := range f.YAxis().Ticks {
		yTicks = append(yTicks, gochart.Tick{Value: t.Value, Label: t.Label})
	}

	s := f.Surface
	step := f.X.Step()
	graph := gochart.BarChart{
		Title:      r.title,
		Width:      int(s.Width),
		Height:     int(s.Height),
		DPI:        r.dpi,
		BarWidth:   max(1, int(f.X.Bandwidth())),
		BarSpacing: max(0, int(step-f.X.Bandwidth())),
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    int(s.Margin.Top),
				Right:  int(s.Margin.Right),
				Bottom: int(s.Margin.Bottom),
				Left:   int(s.Margin.Left),
			},
		},
		YAxis: gochart.YAxis{
			Name:  yAxisName(f),
			Range: &gochart.ContinuousRange{Min: 0, Max: f.ValueMax()},
			Ticks: yTicks,
		},
		Bars: bars,
	}
	if r.background != "" {
		c, err := palette.ParseCSS(r.background)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "png background")
		}
		bg := toDrawingColor(palette.Fill{Color: c, Valid: true})
		graph.Background.FillColor = bg
		graph.Canvas = gochart.Style{FillColor: bg}
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
	}
	return buf.Bytes(), nil
}

func toDrawingColor(f palette.Fill) drawing.Color {
	c := f.Color
	if !f.Valid {
		c = palette.DeriveFill(palette.FallbackFill).Color
	}
	r, g, b := c.Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

func yAxisName(f *chart.Frame) string {
	if c := f.YAxis().Caption; c != nil {
		return c.Text
	}
	return ""
}

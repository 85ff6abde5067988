package sink

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/colorbars/pkg/chart"
	"github.com/matzehuels/colorbars/pkg/errors"
)

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title      string
	background string
}

// WithHTMLTitle sets the page and chart title.
func WithHTMLTitle(title string) HTMLOption { return func(r *htmlRenderer) { r.title = title } }

// WithHTMLBackground sets the chart background colour.
func WithHTMLBackground(color string) HTMLOption {
	return func(r *htmlRenderer) { r.background = color }
}

// RenderHTML renders the frame as an ECharts HTML page. Each bar keeps the
// fill derived from its key.
func RenderHTML(f *chart.Frame, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "colorbars"}
	for _, opt := range opts {
		opt(&r)
	}

	bar := newEChartsBar(f, r)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html")
	}
	return buf.Bytes(), nil
}

func newEChartsBar(f *chart.Frame, r htmlRenderer) *charts.Bar {
	s := f.Surface
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       r.title,
			Width:           num(s.Width) + "px",
			Height:          num(s.Height) + "px",
			BackgroundColor: r.background,
		}),
		charts.WithTitleOpts(opts.Title{Title: r.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName(f)}),
	)

	keys := make([]string, 0, len(f.Bars))
	data := make([]opts.BarData, 0, len(f.Bars))
	for _, b := range f.Bars {
		keys = append(keys, b.Key)
		data = append(data, opts.BarData{
			Name:      b.Key,
			Value:     b.Value,
			ItemStyle: &opts.ItemStyle{Color: b.Fill.Hex},
		})
	}
	bar.SetXAxis(keys)
	bar.AddSeries(yAxisName(f), data)
	return bar
}

// Package sink provides output format renderers for bar chart frames.
//
// # Overview
//
// A "sink" transforms a [chart.Frame] into a final output format:
//
//   - SVG: the chart as vector markup, structured like a d3 bar chart
//   - PNG: a raster chart drawn with go-chart
//   - HTML: an interactive ECharts page drawn with go-echarts
//   - PDF: print-ready output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] writes the margin group, both axis groups ("tick" groups and
// a "domain" path) and one rect of class "bar" per bar:
//
//	svg := sink.RenderSVG(frame,
//	    sink.WithTitle("Colours"),
//	    sink.WithBackground("#111"),
//	)
//
// # PNG and HTML Output
//
// [RenderPNG] and [RenderHTML] reuse the frame's bars, fills and value
// ticks so every format agrees on ordering and colour. go-chart cannot draw
// a chart without bars, so RenderPNG rejects empty frames.
//
// # PDF Output
//
// [RenderPDF] converts the SVG output with rsvg-convert.
// Install librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
package sink

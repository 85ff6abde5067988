// Package chart lays out a ranked frequency table as a bar chart.
//
// # Overview
//
// A [Canvas] owns a drawing [Surface] (total size plus margins). Each call to
// [Canvas.Draw] clears the canvas and builds a fresh [Frame]: a band scale
// over the ranked keys, a linear scale over [0, max], a bottom and a left
// [Axis], and one [Bar] per entry. Frames are plain geometry; the sink
// package turns them into SVG, PNG, HTML or PDF.
//
//	canvas := chart.NewCanvas(chart.DefaultSurface())
//	frame := canvas.Draw(freq.Rank(table, freq.DefaultLimit))
//	svg := sink.RenderSVG(frame)
//
// # Geometry
//
// Coordinates follow SVG: the origin is the top-left corner of the inner
// area (the surface minus its margins) and y grows downwards. A bar for
// value v spans from Y(v) to the inner height, so larger values draw taller.
// Scales round to whole pixels.
//
// # Fills
//
// Each bar's fill is derived from its key with [palette.DeriveFill]. Keys
// that are not hex colours render with [palette.FallbackFill].
//
// # Empty tables
//
// An empty or all-zero table still produces both axes; the value scale then
// uses the domain [0, 1].
package chart

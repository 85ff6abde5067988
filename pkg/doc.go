// Package pkg provides the core libraries for colorbars colour frequency charts.
//
// # Overview
//
// colorbars turns a table of colour frequencies into a bar chart: the most
// frequent colours are ranked in descending order and drawn as bars filled
// with the colour they count. The pkg directory is organized into three areas:
//
//  1. Domain logic ([freq], [chart], [palette])
//  2. Inputs ([source], [extract], [transform])
//  3. Infrastructure ([pipeline], [cache], [config], [observability], [errors])
//
// # Architecture
//
// The typical data flow:
//
//	JSON table (file, stdin, URL) or image
//	         ↓
//	    [source] / [extract] (load or count colours)
//	         ↓
//	    [freq] (rank the top entries)
//	         ↓
//	    [chart] (band and linear scales, axes, bars)
//	         ↓
//	    [chart/sink] (SVG/PNG/PDF/HTML)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/colorbars/pkg/chart"
//	    "github.com/matzehuels/colorbars/pkg/chart/sink"
//	    "github.com/matzehuels/colorbars/pkg/freq"
//	    "github.com/matzehuels/colorbars/pkg/source"
//	)
//
//	table, _ := source.Load(context.Background(), "img_data.json")
//	ranked := freq.Rank(table, freq.DefaultLimit)
//	frame := chart.NewCanvas(chart.DefaultSurface()).Draw(ranked)
//	svg := sink.RenderSVG(frame)
//
// # Main Packages
//
// ## Domain Logic
//
// [freq] - Ordered frequency tables with JSON encoding that preserves key
// order, and [freq.Rank], the stable descending top-N selection.
//
// [chart] - The drawing surface with its margins, the [chart.Canvas] that
// lays a ranked table out as bars and axes, and [chart/scale] with the band
// and linear scales.
//
// [palette] - Maps table keys to CSS fills and picks readable text colours.
//
// ## Inputs
//
// [source] - Loads a table from a local file, standard input, or an http(s) URL.
//
// [extract] - Counts the pixel colours of PNG, JPEG, GIF, BMP, TIFF and WebP
// images into a table.
//
// [transform] - Rearranges the pixels of an image without changing its
// colour counts.
//
// ## Infrastructure
//
// [pipeline] - Load, rank, draw and render, used by the CLI and the HTTP
// server. Ensures consistent behavior across both entry points.
//
// [cache] - Rendered artifact cache with file, Redis and MongoDB backends.
//
// [config] - TOML configuration for chart defaults, cache and server.
//
// [observability] - Hooks for load, rank, render, cache and HTTP events plus
// structured logging.
//
// [errors] - Error codes shared by the CLI and the HTTP server.
package pkg

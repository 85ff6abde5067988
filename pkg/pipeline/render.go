package pipeline

import (
	"fmt"

	"github.com/matzehuels/colorbars/pkg/chart"
	"github.com/matzehuels/colorbars/pkg/chart/sink"
	"github.com/matzehuels/colorbars/pkg/freq"
)

// Draw ranks table and lays it out on a fresh canvas.
func Draw(table *freq.Table, opts Options) (*freq.Table, *chart.Frame) {
	ranked := freq.Rank(table, opts.Limit)
	canvas := chart.NewCanvas(opts.Surface(), chart.WithLogger(opts.Logger))
	return ranked, canvas.Draw(ranked)
}

// Render generates output artifacts for f in the requested formats.
func Render(f *chart.Frame, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(f, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(f, buildPNGOptions(opts)...)
		case FormatPDF:
			data, err = sink.RenderPDF(f, sink.WithPDFSVGOptions(svgOpts...))
		case FormatHTML:
			data, err = sink.RenderHTML(f, buildHTMLOptions(opts)...)
		case FormatJSON:
			data, err = f.Ranked.MarshalJSON()
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if opts.Tooltips {
		svgOpts = append(svgOpts, sink.WithTooltips())
	}
	return svgOpts
}

func buildPNGOptions(opts Options) []sink.PNGOption {
	var pngOpts []sink.PNGOption
	if opts.Title != "" {
		pngOpts = append(pngOpts, sink.WithPNGTitle(opts.Title))
	}
	if opts.Background != "" {
		pngOpts = append(pngOpts, sink.WithPNGBackground(opts.Background))
	}
	return pngOpts
}

func buildHTMLOptions(opts Options) []sink.HTMLOption {
	var htmlOpts []sink.HTMLOption
	if opts.Title != "" {
		htmlOpts = append(htmlOpts, sink.WithHTMLTitle(opts.Title))
	}
	if opts.Background != "" {
		htmlOpts = append(htmlOpts, sink.WithHTMLBackground(opts.Background))
	}
	return htmlOpts
}

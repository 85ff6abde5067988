package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/colorbars/pkg/chart"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	background string
	tooltips   bool
}

// WithTitle adds a <title> element to the document.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithBackground fills the whole surface with a CSS colour.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithTooltips adds a <title> to every bar showing its key and value.
func WithTooltips() SVGOption { return func(r *svgRenderer) { r.tooltips = true } }

// RenderSVG renders the frame as a standalone SVG document.
func RenderSVG(f *chart.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	s := f.Surface
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	fmt.Fprintf(&buf, `  <g transform="translate(%s,%s)">`+"\n", num(s.Margin.Left), num(s.Margin.Top))
	for _, a := range f.Axes {
		renderAxis(&buf, a)
	}
	for _, b := range f.Bars {
		renderBar(&buf, b, r.tooltips)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderAxis(buf *bytes.Buffer, a chart.Axis) {
	transform := ""
	if a.TranslateX != 0 || a.TranslateY != 0 {
		transform = fmt.Sprintf(` transform="translate(%s,%s)"`, num(a.TranslateX), num(a.TranslateY))
	}
	fmt.Fprintf(buf, `    <g%s fill="none" font-size="10" font-family="sans-serif" text-anchor="%s">`+"\n",
		transform, a.TextAnchor())
	fmt.Fprintf(buf, `      <path class="domain" stroke="currentColor" d="%s"/>`+"\n", a.DomainPath())

	spacing := max(chart.TickSizeInner, 0) + chart.TickPadding
	for _, t := range a.Ticks {
		pos := num(t.Position + chart.CrispOffset)
		label := escapeXML(t.Label)
		if a.Orient == chart.OrientLeft {
			fmt.Fprintf(buf, `      <g class="tick" opacity="1" transform="translate(0,%s)"><line stroke="currentColor" x2="%s"/><text fill="currentColor" x="%s" dy="0.32em">%s</text></g>`+"\n",
				pos, num(-chart.TickSizeInner), num(-spacing), label)
		} else {
			fmt.Fprintf(buf, `      <g class="tick" opacity="1" transform="translate(%s,0)"><line stroke="currentColor" y2="%s"/><text fill="currentColor" y="%s" dy="0.71em">%s</text></g>`+"\n",
				pos, num(chart.TickSizeInner), num(spacing), label)
		}
	}

	if c := a.Caption; c != nil {
		fmt.Fprintf(buf, `      <text fill="%s" transform="rotate(%s)" y="%s" dy="%s" text-anchor="%s">%s</text>`+"\n",
			escapeXML(c.Fill), num(c.Rotate), num(c.Y), c.DY, c.Anchor, escapeXML(c.Text))
	}
	buf.WriteString("    </g>\n")
}

func renderBar(buf *bytes.Buffer, b chart.Bar, tooltip bool) {
	attrs := fmt.Sprintf(`class="bar" x="%s" y="%s" width="%s" height="%s" fill="%s"`,
		num(b.X), num(b.Y), num(b.Width), num(b.Height), b.Fill.Hex)
	if !tooltip {
		fmt.Fprintf(buf, "    <rect %s/>\n", attrs)
		return
	}
	fmt.Fprintf(buf, "    <rect %s><title>%s: %s</title></rect>\n",
		attrs, escapeXML(b.Key), strconv.FormatFloat(b.Value, 'f', -1, 64))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

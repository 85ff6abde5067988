package chart

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/colorbars/pkg/chart/scale"
	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/palette"
)

// BandPadding is the fraction of each band step left empty.
const BandPadding = 0.1

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets the logger used for debug output about skipped fills.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTickCount sets the number of ticks requested from the value scale.
func WithTickCount(n int) Option {
	return func(c *Canvas) {
		if n > 0 {
			c.ticks = n
		}
	}
}

// Canvas is a drawing surface holding at most one frame. Draw replaces the
// previous frame, so repeated draws never accumulate bars.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface Surface
	frame   *Frame
	logger  *log.Logger
	ticks   int
}

// NewCanvas returns an empty canvas over s.
func NewCanvas(s Surface, opts ...Option) *Canvas {
	c := &Canvas{
		surface: s,
		logger:  log.New(io.Discard),
		ticks:   DefaultTickCount,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Surface returns the canvas surface.
func (c *Canvas) Surface() Surface { return c.surface }

// Frame returns the current frame, or nil before the first draw.
func (c *Canvas) Frame() *Frame { return c.frame }

// Clear removes the current frame.
func (c *Canvas) Clear() { c.frame = nil }

// Draw clears the canvas and lays out ranked as bars. The table is read in
// order and never modified; pass the output of freq.Rank.
func (c *Canvas) Draw(ranked *freq.Table) *Frame {
	c.Clear()
	if ranked == nil {
		ranked = freq.New()
	}

	width, height := c.surface.InnerWidth(), c.surface.InnerHeight()
	x := scale.NewBand(ranked.Keys()).RangeRound(0, width).Padding(BandPadding)
	y := scale.NewLinear(0, valueMax(ranked)).RangeRound(height, 0)

	f := &Frame{
		Surface: c.surface,
		Ranked:  ranked,
		X:       x,
		Y:       y,
		Axes:    []Axis{bottomAxis(x, height), leftAxis(y, c.ticks)},
		Bars:    make([]Bar, 0, ranked.Len()),
	}

	for key, value := range ranked.All() {
		left, _ := x.Map(key)
		top := y.Map(value)
		fill := palette.DeriveFill(key)
		if !fill.Valid {
			c.logger.Debug("key is not a colour, using fallback fill", "key", key, "fill", fill.Hex)
		}
		f.Bars = append(f.Bars, Bar{
			Key:    key,
			Value:  value,
			X:      left,
			Y:      top,
			Width:  x.Bandwidth(),
			Height: max(0, height-top),
			Fill:   fill,
		})
	}

	c.frame = f
	return f
}

// valueMax returns the upper bound of the value domain: the largest value,
// or 1 when the table is empty or holds only zeros.
func valueMax(t *freq.Table) float64 {
	m, ok := t.Max()
	if !ok || m <= 0 {
		return 1
	}
	return m
}

package chart

import (
	"github.com/matzehuels/colorbars/pkg/errors"
)

// Default surface size in pixels.
const (
	DefaultWidth  = 960.0
	DefaultHeight = 500.0
)

// Margin is the space reserved around the plot area for axes.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin leaves room for tick labels on the bottom and left axes.
var DefaultMargin = Margin{Top: 20, Right: 20, Bottom: 30, Left: 40}

// Surface is the drawing area a canvas renders into.
type Surface struct {
	Width, Height float64
	Margin        Margin
}

// DefaultSurface returns a 960x500 surface with DefaultMargin.
func DefaultSurface() Surface {
	return Surface{Width: DefaultWidth, Height: DefaultHeight, Margin: DefaultMargin}
}

// NewSurface returns a surface of the given size with DefaultMargin.
func NewSurface(width, height float64) Surface {
	return Surface{Width: width, Height: height, Margin: DefaultMargin}
}

// InnerWidth returns the drawable width, never negative.
func (s Surface) InnerWidth() float64 {
	return max(0, s.Width-s.Margin.Left-s.Margin.Right)
}

// InnerHeight returns the drawable height, never negative.
func (s Surface) InnerHeight() float64 {
	return max(0, s.Height-s.Margin.Top-s.Margin.Bottom)
}

// Validate checks the surface dimensions and that the margins leave a
// drawable area.
func (s Surface) Validate() error {
	if err := errors.ValidateSize(s.Width, s.Height); err != nil {
		return err
	}
	if s.InnerWidth() <= 0 || s.InnerHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidSize,
			"%gx%g leaves no drawable area inside the margins", s.Width, s.Height)
	}
	return nil
}

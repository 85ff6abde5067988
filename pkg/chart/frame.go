package chart

import (
	"github.com/matzehuels/colorbars/pkg/chart/scale"
	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/palette"
)

// Bar is one rectangle of the chart, in inner-area coordinates.
type Bar struct {
	Key    string
	Value  float64
	X, Y   float64
	Width  float64
	Height float64
	Fill   palette.Fill
}

// Frame is the scene produced by one draw.
type Frame struct {
	Surface Surface
	Ranked  *freq.Table
	X       *scale.Band
	Y       *scale.Linear
	Axes    []Axis
	Bars    []Bar
}

// InnerWidth returns the drawable width of the frame.
func (f *Frame) InnerWidth() float64 { return f.Surface.InnerWidth() }

// InnerHeight returns the drawable height of the frame.
func (f *Frame) InnerHeight() float64 { return f.Surface.InnerHeight() }

// RectCount returns the number of bars.
func (f *Frame) RectCount() int {
	if f == nil {
		return 0
	}
	return len(f.Bars)
}

// AxisGroups returns the number of axis groups.
func (f *Frame) AxisGroups() int {
	if f == nil {
		return 0
	}
	return len(f.Axes)
}

// XAxis returns the category axis.
func (f *Frame) XAxis() Axis { return f.axis(OrientBottom) }

// YAxis returns the value axis.
func (f *Frame) YAxis() Axis { return f.axis(OrientLeft) }

func (f *Frame) axis(o Orient) Axis {
	for _, a := range f.Axes {
		if a.Orient == o {
			return a
		}
	}
	return Axis{Orient: o}
}

// ValueMax returns the upper bound of the value domain.
func (f *Frame) ValueMax() float64 {
	_, d1 := f.Y.Domain()
	return d1
}

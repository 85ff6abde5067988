package chart

import (
	"fmt"
	"math"

	"github.com/matzehuels/colorbars/pkg/chart/scale"
)

// Orient is the side of the plot area an axis is drawn on.
type Orient int

const (
	OrientBottom Orient = iota
	OrientLeft
)

func (o Orient) String() string {
	switch o {
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	default:
		return fmt.Sprintf("Orient(%d)", int(o))
	}
}

// Axis tick geometry in pixels.
const (
	TickSizeInner = 6.0
	TickSizeOuter = 6.0
	TickPadding   = 3.0

	// CrispOffset shifts one-pixel strokes onto pixel centres.
	CrispOffset = 0.5

	// DefaultTickCount is the number of ticks requested from the value scale.
	DefaultTickCount = 10
)

// Tick is a single labelled mark on an axis.
type Tick struct {
	Label    string
	Value    float64 // Numeric value for value-axis ticks, zero for categories
	Position float64 // Offset along the axis, before CrispOffset
}

// Caption is a text annotation attached to an axis group.
type Caption struct {
	Text   string
	Fill   string
	Rotate float64
	Y      float64
	DY     string
	Anchor string
}

// Axis is one axis group: a domain line, ticks and an optional caption.
type Axis struct {
	Orient     Orient
	TranslateX float64
	TranslateY float64
	RangeStart float64
	RangeEnd   float64
	Ticks      []Tick
	Caption    *Caption
}

// FrequencyCaption is the rotated label of the value axis.
func FrequencyCaption() *Caption {
	return &Caption{
		Text:   "Frequency",
		Fill:   "#ccc",
		Rotate: -90,
		Y:      6,
		DY:     "0.71em",
		Anchor: "end",
	}
}

// DomainPath returns the SVG path data of the axis line including its
// outer ticks.
func (a Axis) DomainPath() string {
	r0 := a.RangeStart + CrispOffset
	r1 := a.RangeEnd + CrispOffset
	if a.Orient == OrientLeft {
		return fmt.Sprintf("M%s,%sH%sV%sH%s",
			num(-TickSizeOuter), num(r0), num(CrispOffset), num(r1), num(-TickSizeOuter))
	}
	return fmt.Sprintf("M%s,%sV%sH%sV%s",
		num(r0), num(TickSizeOuter), num(CrispOffset), num(r1), num(TickSizeOuter))
}

// TextAnchor returns the anchor used for tick labels.
func (a Axis) TextAnchor() string {
	if a.Orient == OrientLeft {
		return "end"
	}
	return "middle"
}

// bottomAxis builds the category axis. Ticks sit at band centres.
func bottomAxis(x *scale.Band, innerHeight float64) Axis {
	center := max(0, x.Bandwidth()-2*CrispOffset) / 2
	if x.Rounded() {
		center = math.Floor(center + 0.5)
	}

	keys := x.Domain()
	ticks := make([]Tick, 0, len(keys))
	for _, k := range keys {
		pos, _ := x.Map(k)
		ticks = append(ticks, Tick{Label: k, Position: pos + center})
	}

	r0, r1 := x.RangeExtent()
	return Axis{
		Orient:     OrientBottom,
		TranslateY: innerHeight,
		RangeStart: r0,
		RangeEnd:   r1,
		Ticks:      ticks,
	}
}

// leftAxis builds the value axis with the Frequency caption.
func leftAxis(y *scale.Linear, count int) Axis {
	format := y.TickFormat(count)
	values := y.Ticks(count)
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{Label: format(v), Value: v, Position: y.Map(v)})
	}

	r0, r1 := y.RangeExtent()
	return Axis{
		Orient:     OrientLeft,
		RangeStart: r0,
		RangeEnd:   r1,
		Ticks:      ticks,
		Caption:    FrequencyCaption(),
	}
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return fmt.Sprintf("%g", v)
}

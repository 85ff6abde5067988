package scale

import "math"

// Band maps a discrete domain to evenly spaced bands of a continuous range.
// Configuration methods return the receiver so calls can be chained.
type Band struct {
	domain []string
	index  map[string]int

	r0, r1       float64
	paddingInner float64
	paddingOuter float64
	align        float64
	round        bool

	step      float64
	bandwidth float64
	starts    []float64
}

// NewBand returns a band scale over domain with range [0, 1], no padding
// and centred alignment. Duplicate domain values are ignored.
func NewBand(domain []string) *Band {
	b := &Band{r0: 0, r1: 1, align: 0.5, index: make(map[string]int, len(domain))}
	for _, d := range domain {
		if _, ok := b.index[d]; ok {
			continue
		}
		b.index[d] = len(b.domain)
		b.domain = append(b.domain, d)
	}
	b.rescale()
	return b
}

// Range sets the output range.
func (b *Band) Range(r0, r1 float64) *Band {
	b.r0, b.r1, b.round = r0, r1, false
	b.rescale()
	return b
}

// RangeRound sets the output range and enables rounding of band starts
// and widths to whole pixels.
func (b *Band) RangeRound(r0, r1 float64) *Band {
	b.r0, b.r1, b.round = r0, r1, true
	b.rescale()
	return b
}

// Padding sets both inner and outer padding, as a fraction of the step.
func (b *Band) Padding(p float64) *Band {
	b.paddingInner = math.Min(1, p)
	b.paddingOuter = p
	b.rescale()
	return b
}

// PaddingInner sets the fraction of each step left empty between bands.
func (b *Band) PaddingInner(p float64) *Band {
	b.paddingInner = math.Min(1, p)
	b.rescale()
	return b
}

// PaddingOuter sets the padding before the first and after the last band.
func (b *Band) PaddingOuter(p float64) *Band {
	b.paddingOuter = p
	b.rescale()
	return b
}

// Align sets how outer space is distributed: 0 left, 0.5 centred, 1 right.
func (b *Band) Align(a float64) *Band {
	b.align = math.Max(0, math.Min(1, a))
	b.rescale()
	return b
}

// Map returns the start of the band for key. ok is false for keys outside
// the domain.
func (b *Band) Map(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}
	return b.starts[i], true
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Domain returns the domain in band order.
func (b *Band) Domain() []string { return append([]string(nil), b.domain...) }

// Rounded reports whether RangeRound was used.
func (b *Band) Rounded() bool { return b.round }

// RangeExtent returns the configured range.
func (b *Band) RangeExtent() (float64, float64) { return b.r0, b.r1 }

func (b *Band) rescale() {
	n := float64(len(b.domain))
	reverse := b.r1 < b.r0
	start, stop := b.r0, b.r1
	if reverse {
		start, stop = b.r1, b.r0
	}

	b.step = (stop - start) / math.Max(1, n-b.paddingInner+b.paddingOuter*2)
	if b.round {
		b.step = math.Floor(b.step)
	}
	start += (stop - start - b.step*(n-b.paddingInner)) * b.align
	b.bandwidth = b.step * (1 - b.paddingInner)
	if b.round {
		start = roundHalfUp(start)
		b.bandwidth = roundHalfUp(b.bandwidth)
	}

	b.starts = make([]float64, len(b.domain))
	for i := range b.starts {
		b.starts[i] = start + b.step*float64(i)
	}
	if reverse {
		for i, j := 0, len(b.starts)-1; i < j; i, j = i+1, j-1 {
			b.starts[i], b.starts[j] = b.starts[j], b.starts[i]
		}
	}
}

// roundHalfUp rounds like JavaScript's Math.round.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

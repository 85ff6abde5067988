package scale

import (
	"math"
	"strconv"
	"strings"
)

// Linear maps a continuous domain to a continuous range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
	round  bool
}

// NewLinear returns a linear scale over [d0, d1] with range [0, 1].
func NewLinear(d0, d1 float64) *Linear {
	return &Linear{d0: d0, d1: d1, r0: 0, r1: 1}
}

// Range sets the output range.
func (l *Linear) Range(r0, r1 float64) *Linear {
	l.r0, l.r1, l.round = r0, r1, false
	return l
}

// RangeRound sets the output range and rounds mapped values to whole pixels.
func (l *Linear) RangeRound(r0, r1 float64) *Linear {
	l.r0, l.r1, l.round = r0, r1, true
	return l
}

// Domain returns the input domain.
func (l *Linear) Domain() (float64, float64) { return l.d0, l.d1 }

// RangeExtent returns the output range.
func (l *Linear) RangeExtent() (float64, float64) { return l.r0, l.r1 }

// Map returns the range value for v. Values outside the domain are
// extrapolated. A degenerate domain maps everything to the range midpoint.
func (l *Linear) Map(v float64) float64 {
	t := 0.5
	if span := l.d1 - l.d0; span != 0 {
		t = (v - l.d0) / span
	}
	out := l.r0 + t*(l.r1-l.r0)
	if l.round {
		out = roundHalfUp(out)
	}
	return out
}

// Ticks returns roughly count human-friendly values inside the domain.
func (l *Linear) Ticks(count int) []float64 {
	return Ticks(l.d0, l.d1, count)
}

// TickFormat returns a formatter for the values produced by Ticks(count):
// fixed-point with just enough decimals for the tick step and comma
// thousands separators.
func (l *Linear) TickFormat(count int) func(float64) string {
	step := math.Abs(TickStep(l.d0, l.d1, count))
	precision := 0
	if step > 0 && !math.IsInf(step, 0) {
		precision = max(0, -exponent(step))
	}
	return func(v float64) string {
		return groupThousands(strconv.FormatFloat(v, 'f', precision, 64))
	}
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count nicely rounded values between start and stop,
// inclusive when they fall on a tick.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	var i1, i2, inc float64
	if reverse {
		i1, i2, inc = tickSpec(stop, start, float64(count))
	} else {
		i1, i2, inc = tickSpec(start, stop, float64(count))
	}
	if !(i2 >= i1) {
		return nil
	}

	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// TickStep returns the distance between adjacent ticks for Ticks(start, stop, count).
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		_, _, inc = tickSpec(stop, start, float64(count))
	} else {
		_, _, inc = tickSpec(start, stop, float64(count))
	}
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}

// tickSpec returns the first and last tick index and the increment.
// A negative increment means ticks are index / -inc (used for steps below 1
// to avoid floating point error).
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = roundHalfUp(start * inc)
		i2 = roundHalfUp(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = roundHalfUp(start / inc)
		i2 = roundHalfUp(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// exponent returns the decimal exponent of x in scientific notation.
func exponent(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0
	}
	return n
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}

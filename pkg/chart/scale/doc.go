// Package scale implements the two scales a bar chart needs: a band scale
// mapping categories to pixel bands and a linear scale mapping values to
// pixel offsets.
//
// Both follow the behaviour of the d3-scale JavaScript library, including
// rounding (RangeRound), band padding and tick generation, so charts
// produced here line up pixel-for-pixel with the browser version:
//
//	x := scale.NewBand(keys).RangeRound(0, 900).Padding(0.1)
//	y := scale.NewLinear(0, 300).RangeRound(450, 0)
//
//	left, _ := x.Map("ff0000")
//	top := y.Map(120)
//	width := x.Bandwidth()
package scale

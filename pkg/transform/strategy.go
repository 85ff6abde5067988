package transform

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorbars/pkg/errors"
)

// Strategy permutes pixels in place.
type Strategy interface {
	Name() string
	Transform(pixels []Pixel)
}

// Pixel is a non-premultiplied RGBA pixel.
type Pixel struct {
	R, G, B, A uint8
}

// RGB returns the 24-bit colour of p.
func (p Pixel) RGB() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// SortRGB orders pixels by ascending 24-bit RGB value.
type SortRGB struct{}

func (SortRGB) Name() string { return "sort" }

func (SortRGB) Transform(pixels []Pixel) {
	slices.SortStableFunc(pixels, func(a, b Pixel) int {
		return cmp.Compare(a.RGB(), b.RGB())
	})
}

// SortHue orders pixels by HCL hue, then lightness.
type SortHue struct{}

func (SortHue) Name() string { return "hue" }

func (SortHue) Transform(pixels []Pixel) {
	type keyed struct {
		h, l float64
		p    Pixel
	}
	ks := make([]keyed, len(pixels))
	for i, p := range pixels {
		c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
		h, _, l := c.Hcl()
		ks[i] = keyed{h, l, p}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		if c := cmp.Compare(a.h, b.h); c != 0 {
			return c
		}
		return cmp.Compare(a.l, b.l)
	})
	for i := range ks {
		pixels[i] = ks[i].p
	}
}

// Shuffle swaps every pixel with a randomly chosen one. The same seed always
// produces the same permutation.
type Shuffle struct {
	Seed uint64
}

func (Shuffle) Name() string { return "shuffle" }

func (s Shuffle) Transform(pixels []Pixel) {
	if len(pixels) == 0 {
		return
	}
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	for i := range pixels {
		j := rng.IntN(len(pixels))
		pixels[i], pixels[j] = pixels[j], pixels[i]
	}
}

// StrategyNames lists the names accepted by ParseStrategy.
var StrategyNames = []string{"sort", "hue", "shuffle"}

// ParseStrategy returns the strategy called name. seed is used by shuffle.
func ParseStrategy(name string, seed uint64) (Strategy, error) {
	switch strings.ToLower(name) {
	case "sort", "rgb":
		return SortRGB{}, nil
	case "hue":
		return SortHue{}, nil
	case "shuffle", "random":
		return Shuffle{Seed: seed}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown strategy %q (valid: %s)", name, strings.Join(StrategyNames, ", "))
	}
}

func (p Pixel) String() string {
	return fmt.Sprintf("#%06x", p.RGB())
}

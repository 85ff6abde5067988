package extract

import (
	"cmp"
	"context"
	stderrors "errors"
	"image"
	"image/color"
	"io"
	"runtime"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
)

// Options configures extraction.
type Options struct {
	// PadKeys writes six-digit keys ("0000ff") instead of the short form ("ff").
	PadKeys bool

	// Workers is the number of row stripes counted in parallel.
	// Zero means GOMAXPROCS.
	Workers int

	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Key formats a 24-bit RGB value as a table key.
func Key(rgb uint32, pad bool) string {
	s := strconv.FormatUint(uint64(rgb&0xFFFFFF), 16)
	if pad && len(s) < 6 {
		s = "000000"[len(s):] + s
	}
	return s
}

// RGB returns the 24-bit value of c, ignoring alpha.
func RGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// FromImage counts the colours of img. The table is ordered by descending
// count; equal counts are ordered by ascending RGB value.
func FromImage(ctx context.Context, img image.Image, opts Options) (*freq.Table, error) {
	if img == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image is nil")
	}
	opts.setDefaults()

	b := img.Bounds()
	rows := b.Dy()
	workers := min(opts.Workers, max(1, rows))
	parts := make([]map[uint32]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		y0 := b.Min.Y + rows*w/workers
		y1 := b.Min.Y + rows*(w+1)/workers
		g.Go(func() error {
			counts := make(map[uint32]int)
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				countRow(img, y, b.Min.X, b.Max.X, counts)
			}
			parts[w] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "extract colours")
		}
		return nil, err
	}

	total := make(map[uint32]int)
	for _, p := range parts {
		for rgb, n := range p {
			total[rgb] += n
		}
	}

	t := toTable(total, opts.PadKeys)
	opts.Logger.Debug("extracted colours", "pixels", b.Dx()*rows, "colours", t.Len(), "workers", workers)
	return t, nil
}

func countRow(img image.Image, y, x0, x1 int, counts map[uint32]int) {
	if m, ok := img.(*image.NRGBA); ok {
		off := m.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			p := m.Pix[off : off+3 : off+3]
			counts[uint32(p[0])<<16|uint32(p[1])<<8|uint32(p[2])]++
			off += 4
		}
		return
	}
	for x := x0; x < x1; x++ {
		counts[RGB(img.At(x, y))]++
	}
}

type colourCount struct {
	rgb   uint32
	count int
}

func toTable(counts map[uint32]int, pad bool) *freq.Table {
	sorted := make([]colourCount, 0, len(counts))
	for rgb, n := range counts {
		sorted = append(sorted, colourCount{rgb, n})
	}
	slices.SortFunc(sorted, func(a, b colourCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.rgb, b.rgb)
	})

	t := freq.New()
	for _, c := range sorted {
		t.Set(Key(c.rgb, pad), float64(c.count))
	}
	return t
}

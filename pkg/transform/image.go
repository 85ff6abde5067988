package transform

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/colorbars/pkg/errors"
)

// JPEGQuality is used when writing .jpg and .jpeg outputs.
const JPEGQuality = 95

// Pixels returns the pixels of img in row-major order.
func Pixels(img image.Image) []Pixel {
	m := toNRGBA(img)
	b := m.Bounds()
	out := make([]Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := m.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			p := m.Pix[off : off+4 : off+4]
			out = append(out, Pixel{p[0], p[1], p[2], p[3]})
			off += 4
		}
	}
	return out
}

// Apply returns a copy of img with its pixels rearranged by s.
// The input image is not modified.
func Apply(img image.Image, s Strategy) *image.NRGBA {
	pixels := Pixels(img)
	s.Transform(pixels)

	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	i := 0
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			p := pixels[i]
			out.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
			i++
		}
	}
	return out
}

// OutputPath returns "<base>_transformed.<ext>" next to input.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_transformed" + ext
}

// Encode writes img in the format named by path's extension. Extensions
// without an encoder (bmp, tiff, webp) are written as png.
func Encode(w io.Writer, img image.Image, path string) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".gif":
		err = gif.Encode(w, img, nil)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", filepath.Base(path))
	}
	return nil
}

// WriteFile encodes img to path.
func WriteFile(path string, img image.Image) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Encode(f, img, path); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok {
		return m
	}
	b := img.Bounds()
	m := image.NewNRGBA(b)
	draw.Draw(m, b, img, b.Min, draw.Src)
	return m
}

package transform

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/extract"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(255 - x*20), G: uint8(y * 30), B: uint8((x * y) % 256), A: 255})
		}
	}
	return img
}

func TestSortRGB(t *testing.T) {
	out := Apply(gradient(8, 6), SortRGB{})

	pixels := Pixels(out)
	if !slices.IsSortedFunc(pixels, func(a, b Pixel) int { return int(a.RGB()) - int(b.RGB()) }) {
		t.Error("pixels not sorted by RGB")
	}
}

func TestSortHue(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{G: 255, A: 255})

	got := Pixels(Apply(img, SortHue{}))
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	for i, p := range got {
		if p.String() != want[i] {
			t.Errorf("pixel %d = %s, want %s", i, p, want[i])
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	img := gradient(10, 10)
	a := Pixels(Apply(img, Shuffle{Seed: 42}))
	b := Pixels(Apply(img, Shuffle{Seed: 42}))
	c := Pixels(Apply(img, Shuffle{Seed: 7}))

	if !slices.Equal(a, b) {
		t.Error("same seed produced different permutations")
	}
	if slices.Equal(a, c) {
		t.Error("different seeds produced the same permutation")
	}
	if slices.Equal(a, Pixels(img)) {
		t.Error("shuffle left the image unchanged")
	}
}

func TestApplyKeepsHistogram(t *testing.T) {
	img := gradient(12, 9)
	ctx := context.Background()
	before, err := extract.FromImage(ctx, img, extract.Options{})
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []Strategy{SortRGB{}, SortHue{}, Shuffle{Seed: 1}} {
		t.Run(s.Name(), func(t *testing.T) {
			after, err := extract.FromImage(ctx, Apply(img, s), extract.Options{})
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(before.Entries(), after.Entries()) {
				t.Error("colour histogram changed")
			}
		})
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	img := gradient(5, 5)
	orig := slices.Clone(img.Pix)
	Apply(img, SortRGB{})
	if !bytes.Equal(orig, img.Pix) {
		t.Error("Apply modified its input")
	}
}

func TestApplyOffsetBounds(t *testing.T) {
	img := gradient(6, 6).SubImage(image.Rect(2, 2, 5, 4))
	out := Apply(img, SortRGB{})
	if out.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v, want 3x2 at origin", out.Bounds())
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"image.jpeg", "image_transformed.jpeg"},
		{"/a/b/photo.png", "/a/b/photo_transformed.png"},
		{"noext", "noext_transformed"},
		{"x.tar.gz", "x.tar_transformed.gz"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeByExtension(t *testing.T) {
	img := gradient(4, 4)

	var buf bytes.Buffer
	if err := Encode(&buf, img, "out.jpg"); err != nil {
		t.Fatal(err)
	}
	if _, err := jpeg.DecodeConfig(bytes.NewReader(buf.Bytes())); err != nil {
		t.Errorf(".jpg output is not jpeg: %v", err)
	}

	buf.Reset()
	if err := Encode(&buf, img, "out.webp"); err != nil {
		t.Fatal(err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(buf.Bytes())); err != nil {
		t.Errorf(".webp output should fall back to png: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := WriteFile(path, gradient(3, 3)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, format, err := extract.DecodeFile(path); err != nil || format != "gif" {
		t.Errorf("DecodeFile = %q, %v", format, err)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range StrategyNames {
		s, err := ParseStrategy(name, 3)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Name() = %q, want %q", s.Name(), name)
		}
	}
	if s, _ := ParseStrategy("shuffle", 9); s.(Shuffle).Seed != 9 {
		t.Error("seed not passed to shuffle")
	}
	if _, err := ParseStrategy("spiral", 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

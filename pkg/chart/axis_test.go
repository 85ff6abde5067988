package chart

import (
	"testing"

	"github.com/matzehuels/colorbars/pkg/freq"
)

func TestAxes(t *testing.T) {
	f := NewCanvas(DefaultSurface()).Draw(sampleRanked())

	x := f.XAxis()
	if x.Orient != OrientBottom || x.TranslateY != 450 {
		t.Errorf("x axis = %v at y=%v, want bottom at 450", x.Orient, x.TranslateY)
	}
	if len(x.Ticks) != 3 {
		t.Fatalf("x ticks = %d, want 3", len(x.Ticks))
	}
	// Band starts at 30 with bandwidth 261: centre offset round(260/2) = 130.
	if x.Ticks[0].Label != "00ff00" || x.Ticks[0].Position != 160 {
		t.Errorf("x tick 0 = %+v, want 00ff00 at 160", x.Ticks[0])
	}
	if got, want := x.DomainPath(), "M0.5,6V0.5H900.5V6"; got != want {
		t.Errorf("x DomainPath() = %q, want %q", got, want)
	}

	y := f.YAxis()
	if y.Caption == nil || y.Caption.Text != "Frequency" {
		t.Fatalf("y caption = %+v, want Frequency", y.Caption)
	}
	if y.Caption.Rotate != -90 || y.Caption.Fill != "#ccc" || y.Caption.Anchor != "end" {
		t.Errorf("y caption = %+v", y.Caption)
	}
	if got, want := y.DomainPath(), "M-6,450.5H0.5V0.5H-6"; got != want {
		t.Errorf("y DomainPath() = %q, want %q", got, want)
	}
	if len(y.Ticks) != 16 {
		t.Fatalf("y ticks = %d, want 16", len(y.Ticks))
	}
	last := y.Ticks[len(y.Ticks)-1]
	if last.Label != "30" || last.Position != 0 {
		t.Errorf("last y tick = %+v, want 30 at 0", last)
	}
}

func TestTextAnchor(t *testing.T) {
	if got := (Axis{Orient: OrientBottom}).TextAnchor(); got != "middle" {
		t.Errorf("bottom anchor = %q", got)
	}
	if got := (Axis{Orient: OrientLeft}).TextAnchor(); got != "end" {
		t.Errorf("left anchor = %q", got)
	}
}

func TestTickCountOption(t *testing.T) {
	f := NewCanvas(DefaultSurface(), WithTickCount(2)).Draw(freq.New(freq.Entry{Key: "fff", Value: 100}))
	got := f.YAxis().Ticks
	if len(got) != 3 || got[1].Value != 50 {
		t.Errorf("ticks = %+v, want 0, 50, 100", got)
	}
}

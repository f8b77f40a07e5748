package gart

import (
	"math"
	"testing"
)

type countingListener struct{ calls int }

func (l *countingListener) CanvasRedraw() { l.calls++ }

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		aspect        AspectRatio
		resolution    int
		width, height float64
	}{
		{Square, 720, 720, 720},
		{Widescreen, 1080, 1920, 1080},
		{SocialVideo, 1080, 1080, 1920},
		{PinterestPin, 720, 720, 1080},
	}
	for _, tt := range tests {
		c, err := NewCanvas(tt.aspect, tt.resolution)
		if err != nil {
			t.Fatalf("NewCanvas(%v, %d): %v", tt.aspect, tt.resolution, err)
		}
		if c.Width() != tt.width || c.Height() != tt.height {
			t.Errorf("NewCanvas(%v, %d) = %gx%g, want %gx%g", tt.aspect, tt.resolution,
				c.Width(), c.Height(), tt.width, tt.height)
		}
	}
	if _, err := NewCanvas(Square, 0); err == nil {
		t.Errorf("Want error for zero resolution")
	}
	if _, err := NewCanvasSize(0, 10); err == nil {
		t.Errorf("Want error for zero width")
	}
}

func TestCoordinateRemap(t *testing.T) {
	c, err := NewCanvasSize(500, 500)
	if err != nil {
		t.Fatal(err)
	}
	ratio := NewCoordinate(c, V(0.25, 0.5), Ratio)
	pixel := NewCoordinate(c, V(100, 400), CanvasMode)
	if got := ratio.Position(CanvasMode); got != V(125, 250) {
		t.Errorf("Want canvas position (125, 250), got %v", got)
	}
	if got := pixel.Position(Ratio); got != V(0.2, 0.8) {
		t.Errorf("Want ratio position (0.2, 0.8), got %v", got)
	}

	l := &countingListener{}
	c.AddRedrawListener(l)
	if err := c.Resize(1000, 200); err != nil {
		t.Fatal(err)
	}
	if l.calls != 1 {
		t.Errorf("Want 1 redraw call, got %d", l.calls)
	}
	ratio.Remap()
	pixel.Remap()
	if got := ratio.Position(CanvasMode); got != V(250, 100) {
		t.Errorf("Want remapped (250, 100), got %v", got)
	}
	if got := pixel.Position(CanvasMode); math.Abs(got.X-200) > 1e-9 || math.Abs(got.Y-160) > 1e-9 {
		t.Errorf("Want remapped (200, 160), got %v", got)
	}
	if got := ratio.Position(Ratio); got != V(0.25, 0.5) {
		t.Errorf("Remap moved the ratio position to %v", got)
	}
}

func TestCoordinateSetXY(t *testing.T) {
	c, _ := NewCanvasSize(200, 100)
	co := NewCoordinate(c, V(0, 0), Ratio)
	co.SetX(50, CanvasMode)
	co.SetY(0.5, Ratio)
	if got := co.Position(CanvasMode); got != V(50, 50) {
		t.Errorf("Want (50, 50), got %v", got)
	}
	if co.X(Ratio) != 0.25 || co.Y(Ratio) != 0.5 {
		t.Errorf("Want ratio (0.25, 0.5), got (%g, %g)", co.X(Ratio), co.Y(Ratio))
	}
}

func TestUpdateAspectRatio(t *testing.T) {
	c, _ := NewCanvas(Square, 720)
	if err := c.UpdateAspectRatio(Widescreen); err != nil {
		t.Fatal(err)
	}
	if c.Width() != 1280 || c.Height() != 720 {
		t.Errorf("Want 1280x720, got %gx%g", c.Width(), c.Height())
	}
	if err := c.UpdateResolution(1080); err != nil {
		t.Fatal(err)
	}
	if c.Width() != 1920 || c.Height() != 1080 {
		t.Errorf("Want 1920x1080, got %gx%g", c.Width(), c.Height())
	}
}

package gart

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/canvas"
)

// layerRecorder collects what a canvas.Canvas renders.
type layerRecorder struct {
	w, h   float64
	paths  []*canvas.Path
	styles []canvas.Style
	views  []canvas.Matrix
}

func (r *layerRecorder) Size() (float64, float64) { return r.w, r.h }

func (r *layerRecorder) RenderPath(p *canvas.Path, style canvas.Style, m canvas.Matrix) {
	r.paths = append(r.paths, p)
	r.styles = append(r.styles, style)
	r.views = append(r.views, m)
}

func (r *layerRecorder) RenderText(*canvas.Text, canvas.Matrix) {}
func (r *layerRecorder) RenderImage(image.Image, canvas.Matrix) {}

func render(ctx *Context) *layerRecorder {
	r := &layerRecorder{w: ctx.Width(), h: ctx.Height()}
	ctx.c.Render(r)
	return r
}

// origin is where the layer's local 0, 0 lands on the page, bottom left origin.
func origin(r *layerRecorder, i int) canvas.Point {
	return r.views[i].Dot(canvas.Point{})
}

func nearPoint(a, b canvas.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestContextTransform(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.Push()
	ctx.Translate(10, 20)
	ctx.Rotate(math.Pi / 2)
	ctx.Ellipse(0, 0, 4, 4)
	ctx.Ellipse(5, 0, 4, 4)
	ctx.Ellipse(0, 5, 4, 4)
	ctx.Pop()
	ctx.Ellipse(5, 0, 4, 4)
	// extra Pop is harmless
	ctx.Pop()

	// top left (x, y) is (x, 100-y) on the page
	want := []canvas.Point{{X: 10, Y: 80}, {X: 10, Y: 75}, {X: 5, Y: 80}, {X: 5, Y: 100}}
	r := render(ctx)
	if len(r.paths) != len(want) {
		t.Fatalf("Want %d paths, got %d", len(want), len(r.paths))
	}
	for i, w := range want {
		if got := origin(r, i); !nearPoint(got, w) {
			t.Errorf("Ellipse %d centered at %v, want %v", i, got, w)
		}
	}
}

func TestContextEllipseIsCurved(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.Ellipse(50, 50, 40, 20)
	r := render(ctx)
	if len(r.paths) != 1 {
		t.Fatalf("Want 1 path, got %d", len(r.paths))
	}
	d := r.paths[0].ToSVG()
	if !strings.Contains(d, "A20 10") || strings.ContainsAny(d, "LHV") {
		t.Errorf("Want an ellipse made of arcs, got %q", d)
	}
}

func TestContextStyle(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	ctx := NewContext(100, 50)
	ctx.Background(color.Black)
	ctx.Push()
	ctx.Translate(30, 30)
	ctx.SetFillColor(red)
	ctx.SetStrokeColor(nil)
	ctx.FillRect(0, 0, 10, 10)
	ctx.Point(1, 1) // no stroke color, nothing drawn
	ctx.Pop()
	ctx.Line(0, 0, 10, 10)
	ctx.SetStrokeWidth(4)
	ctx.Point(20, 20)

	r := render(ctx)
	if len(r.paths) != 4 {
		t.Fatalf("Want 4 paths, got %d", len(r.paths))
	}
	if got := origin(r, 0); !nearPoint(got, canvas.Point{}) {
		t.Errorf("Background at %v, want the page origin", got)
	}
	if got := r.paths[0].Bounds(); got.W != 100 || got.H != 50 {
		t.Errorf("Background covers %v, want the whole page", got)
	}
	if got := r.styles[1]; got.FillColor != red || got.StrokeColor.A != 0 {
		t.Errorf("FillRect style = %v, want red fill and no stroke", got)
	}
	if got := r.styles[2]; got.FillColor.A != 0 || got.StrokeColor != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Line style = %v, want black stroke and no fill", got)
	}
	if got := r.styles[3]; got.FillColor != (color.RGBA{0, 0, 0, 255}) || got.StrokeColor.A != 0 {
		t.Errorf("Point style = %v, want filled with the stroke color", got)
	}
	if got := r.paths[3].Bounds(); math.Abs(got.W-4) > 1e-6 {
		t.Errorf("Point is %g wide, want the stroke width", got.W)
	}
}

func TestContextReset(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.Translate(40, 40)
	ctx.SetFillColor(nil)
	ctx.Ellipse(0, 0, 10, 10)
	ctx.Reset()
	ctx.Ellipse(0, 0, 10, 10)

	r := render(ctx)
	if len(r.paths) != 1 {
		t.Fatalf("Want 1 path after Reset, got %d", len(r.paths))
	}
	if got := origin(r, 0); !nearPoint(got, canvas.Point{X: 0, Y: 100}) {
		t.Errorf("Want a fresh view after Reset, got %v", got)
	}
	if r.styles[0].FillColor != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Want the default fill after Reset, got %v", r.styles[0].FillColor)
	}
}

func TestRasterEllipse(t *testing.T) {
	r := NewRaster(40, 40)
	r.Background(color.Black)
	r.SetFillColor(color.RGBA{255, 0, 0, 255})
	r.SetStrokeColor(nil)
	r.Push()
	r.Translate(20, 20)
	r.Ellipse(0, 0, 20, 20)
	r.Pop()

	img := r.Image()
	if got := color.RGBAModel.Convert(img.At(20, 20)).(color.RGBA); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Want red at center, got %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Want background at corner, got %v", got)
	}
}

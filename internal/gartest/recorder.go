// Package gartest has test helpers shared by the sketch packages.
package gartest

import (
	"fmt"
	"image/color"

	gart "github.com/scottkirkwood/rainbow-gart"
)

// Call is one recorded drawing call
type Call struct {
	Op   string
	Args []float64
	Fill color.Color
}

// Recorder is a gart.Renderer that remembers what was drawn.
type Recorder struct {
	W, H  float64
	Calls []Call
	Depth int // current Push depth

	fill color.Color
}

var _ gart.Renderer = (*Recorder)(nil)

// NewRecorder returns an empty Recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) add(op string, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Fill: r.fill})
}

// Count returns how many calls of op were made.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the calls as op names, handy in failure messages.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = fmt.Sprintf("%s%v", c.Op, c.Args)
	}
	return ops
}

// Reset forgets all calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) Width() float64  { return r.W }
func (r *Recorder) Height() float64 { return r.H }

func (r *Recorder) Push() {
	r.Depth++
	r.add("push")
}

func (r *Recorder) Pop() {
	r.Depth--
	r.add("pop")
}

func (r *Recorder) Translate(x, y float64) { r.add("translate", x, y) }
func (r *Recorder) Rotate(angle float64)   { r.add("rotate", angle) }

func (r *Recorder) SetFillColor(col color.Color) { r.fill = col }
func (r *Recorder) SetStrokeColor(color.Color)   {}
func (r *Recorder) SetStrokeWidth(float64)       {}

func (r *Recorder) Background(col color.Color) {
	r.fill = col
	r.add("background")
}

func (r *Recorder) FillRect(x, y, w, h float64) { r.add("fillrect", x, y, w, h) }
func (r *Recorder) Ellipse(x, y, w, h float64)  { r.add("ellipse", x, y, w, h) }
func (r *Recorder) Rect(x, y, w, h float64)     { r.add("rect", x, y, w, h) }
func (r *Recorder) Point(x, y float64)          { r.add("point", x, y) }
func (r *Recorder) Line(x1, y1, x2, y2 float64) { r.add("line", x1, y1, x2, y2) }

func (r *Recorder) Quad(a, b, c, d gart.Vec) {
	r.add("quad", a.X, a.Y, b.X, b.Y, c.X, c.Y, d.X, d.Y)
}

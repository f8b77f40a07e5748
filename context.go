package gart

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is my abstraction for Canvas, drawing vector output.
// The view is flipped so the origin is top left, like the raster.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

// NewContext returns a vector Context of width x height units.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c: canvas.New(width, height),
	}
	ctx.ctx = ctx.newDrawState()
	return ctx
}

func (ctx *Context) newDrawState() *canvas.Context {
	dc := canvas.NewContext(ctx.c)
	dc.ReflectYAbout(ctx.c.H / 2)
	dc.SetFillColor(color.White)
	dc.SetStrokeColor(color.Black)
	dc.SetStrokeWidth(1)
	return dc
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(1.0))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) Width() float64  { return ctx.ctx.Width() }
func (ctx *Context) Height() float64 { return ctx.ctx.Height() }

func (ctx *Context) Push() {
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	ctx.ctx.Pop()
}

// Reset empties the canvas and starts over with a fresh draw state.
func (ctx *Context) Reset() {
	ctx.c.Reset()
	ctx.ctx = ctx.newDrawState()
}

// Translate moves the origin to x, y in the current frame.
func (ctx *Context) Translate(x, y float64) {
	ctx.ctx.Translate(x, y)
}

// Rotate turns the current frame clockwise on screen by angle radians.
func (ctx *Context) Rotate(angle float64) {
	ctx.ctx.ComposeView(canvas.Identity.Rotate(Degrees(angle)))
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(orTransparent(col))
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(orTransparent(col))
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// Background covers the whole page, ignoring the transform.
func (ctx *Context) Background(col color.Color) {
	ctx.ctx.Push()
	ctx.ctx.ResetView()
	ctx.ctx.SetFillColor(col)
	ctx.ctx.SetStrokeColor(canvas.Transparent)
	ctx.ctx.DrawPath(0, 0, canvas.Rectangle(ctx.Width(), ctx.Height()))
	ctx.ctx.Pop()
}

// FillRect draws a rectangle with its top left corner at x, y
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// Rect draws a rectangle centered at x, y
func (ctx *Context) Rect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x-w/2, y-h/2, canvas.Rectangle(w, h))
}

// Ellipse draws an ellipse centered at x, y
func (ctx *Context) Ellipse(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Ellipse(w/2, h/2))
}

// Point draws a dot the size of the stroke width in the stroke color
func (ctx *Context) Point(x, y float64) {
	stroke, width := ctx.ctx.StrokeColor, ctx.ctx.StrokeWidth
	if stroke.A == 0 {
		return
	}
	ctx.ctx.Push()
	ctx.ctx.SetFillColor(stroke)
	ctx.ctx.SetStrokeColor(canvas.Transparent)
	ctx.ctx.DrawPath(x, y, canvas.Circle(width/2))
	ctx.ctx.Pop()
}

// Line strokes a line from x1, y1 to x2, y2
func (ctx *Context) Line(x1, y1, x2, y2 float64) {
	p := &canvas.Path{}
	p.LineTo(x2-x1, y2-y1)
	ctx.ctx.Push()
	ctx.ctx.SetFillColor(canvas.Transparent)
	ctx.ctx.DrawPath(x1, y1, p)
	ctx.ctx.Pop()
}

// Quad draws a four sided polygon
func (ctx *Context) Quad(a, b, c, d Vec) {
	p := &canvas.Path{}
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	p.LineTo(c.X, c.Y)
	p.LineTo(d.X, d.Y)
	p.Close()
	ctx.ctx.DrawPath(0, 0, p)
}

// orTransparent turns a nil color, which means off, into one canvas accepts.
func orTransparent(col color.Color) color.Color {
	if col == nil {
		return canvas.Transparent
	}
	return col
}

package gart

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Raster draws into an in memory image with gg.
type Raster struct {
	dc    *gg.Context
	style style
	stack []style
}

// NewRaster returns a width x height pixel Raster.
func NewRaster(width, height int) *Raster {
	return &Raster{
		dc:    gg.NewContext(width, height),
		style: defaultStyle(),
	}
}

// Image returns the image drawn so far.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// WritePNG writes to a PNG file
func (r *Raster) WritePNG(fname string) error {
	return r.dc.SavePNG(fname)
}

func (r *Raster) Width() float64  { return float64(r.dc.Width()) }
func (r *Raster) Height() float64 { return float64(r.dc.Height()) }

func (r *Raster) Push() {
	r.dc.Push()
	r.stack = append(r.stack, r.style)
}

// Pop restores the last pushed state; it does nothing on an empty stack.
func (r *Raster) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.dc.Pop()
	r.style = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(angle float64)   { r.dc.Rotate(angle) }

func (r *Raster) SetFillColor(col color.Color)   { r.style.fill = col }
func (r *Raster) SetStrokeColor(col color.Color) { r.style.stroke = col }
func (r *Raster) SetStrokeWidth(width float64)   { r.style.strokeWidth = width }

// Background fills the whole image, ignoring the transform.
func (r *Raster) Background(col color.Color) {
	r.dc.Push()
	r.dc.Identity()
	r.dc.SetColor(col)
	r.dc.DrawRectangle(0, 0, r.Width(), r.Height())
	r.dc.Fill()
	r.dc.Pop()
}

// FillRect draws a rectangle with its top left corner at x, y
func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.paint()
}

func (r *Raster) Rect(x, y, w, h float64) {
	r.FillRect(x-w/2, y-h/2, w, h)
}

func (r *Raster) Ellipse(x, y, w, h float64) {
	r.dc.DrawEllipse(x, y, w/2, h/2)
	r.paint()
}

// Point draws a dot the size of the stroke width in the stroke color
func (r *Raster) Point(x, y float64) {
	if r.style.stroke == nil {
		return
	}
	r.dc.DrawPoint(x, y, r.style.strokeWidth/2)
	r.dc.SetColor(r.style.stroke)
	r.dc.Fill()
}

func (r *Raster) Line(x1, y1, x2, y2 float64) {
	if r.style.stroke == nil {
		return
	}
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.SetColor(r.style.stroke)
	r.dc.SetLineWidth(r.style.strokeWidth)
	r.dc.Stroke()
}

func (r *Raster) Quad(a, b, c, d Vec) {
	r.dc.MoveTo(a.X, a.Y)
	r.dc.LineTo(b.X, b.Y)
	r.dc.LineTo(c.X, c.Y)
	r.dc.LineTo(d.X, d.Y)
	r.dc.ClosePath()
	r.paint()
}

// paint fills then strokes the current path and clears it.
func (r *Raster) paint() {
	if r.style.fill != nil {
		r.dc.SetColor(r.style.fill)
		r.dc.FillPreserve()
	}
	if r.style.stroke != nil && r.style.strokeWidth > 0 {
		r.dc.SetColor(r.style.stroke)
		r.dc.SetLineWidth(r.style.strokeWidth)
		r.dc.StrokePreserve()
	}
	r.dc.ClearPath()
}

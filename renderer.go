package gart

import "image/color"

// Renderer is the set of drawing primitives a sketch needs from the host.
// Angles are in radians; Ellipse and Rect are centered on x, y.
// A nil fill or stroke color turns filling or stroking off.
type Renderer interface {
	Width() float64
	Height() float64

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetStrokeWidth(width float64)

	Background(col color.Color)
	FillRect(x, y, w, h float64)
	Ellipse(x, y, w, h float64)
	Rect(x, y, w, h float64)
	Point(x, y float64)
	Line(x1, y1, x2, y2 float64)
	Quad(a, b, c, d Vec)
}

// style is the part of the draw state saved by Push
type style struct {
	fill, stroke color.Color
	strokeWidth  float64
}

func defaultStyle() style {
	return style{fill: color.White, stroke: color.Black, strokeWidth: 1}
}

package wave

import (
	gart "github.com/scottkirkwood/rainbow-gart"
)

// Edge is one side of a band, from top to bottom.
type Edge struct {
	top, bottom gart.Coordinate
}

// NewEdge returns an edge with `top` and `bottom` given in `mode`.
func NewEdge(c *gart.Canvas, top, bottom gart.Vec, mode gart.CoordinateMode) *Edge {
	return &Edge{
		top:    gart.NewCoordinate(c, top, mode),
		bottom: gart.NewCoordinate(c, bottom, mode),
	}
}

// Top in canvas pixels
func (e *Edge) Top() gart.Vec {
	return e.top.Position(gart.CanvasMode)
}

// Bottom in canvas pixels
func (e *Edge) Bottom() gart.Vec {
	return e.bottom.Position(gart.CanvasMode)
}

// Center is the midpoint of the edge in canvas pixels
func (e *Edge) Center() gart.Vec {
	return e.Top().Lerp(e.Bottom(), 0.5)
}

// Length of the edge in canvas pixels
func (e *Edge) Length() float64 {
	return e.Top().Dist(e.Bottom())
}

// Remap refreshes the canvas positions after a resize.
func (e *Edge) Remap() {
	e.top.Remap()
	e.bottom.Remap()
}

// Update moves both ends.
func (e *Edge) Update(top, bottom gart.Vec, mode gart.CoordinateMode) {
	e.top.SetPosition(top, mode)
	e.bottom.SetPosition(bottom, mode)
}

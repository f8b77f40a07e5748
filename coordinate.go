package gart

// CoordinateMode says which space a position is expressed in.
type CoordinateMode int

const (
	// Ratio is a fraction (0..1) of the canvas width and height.
	Ratio CoordinateMode = iota
	// CanvasMode is absolute pixels on the current canvas.
	CanvasMode
)

func (m CoordinateMode) String() string {
	switch m {
	case Ratio:
		return "ratio"
	case CanvasMode:
		return "canvas"
	}
	return "unknown"
}

// Coordinate is a position that can be read or written in either mode.
// The ratio value is authoritative; the canvas value is derived from it
// and refreshed by Remap after the canvas changes size.
type Coordinate struct {
	canvas *Canvas
	ratio  Vec
	pos    Vec
}

// NewCoordinate returns a coordinate at `v` given in `mode`.
// The canvas must already exist.
func NewCoordinate(c *Canvas, v Vec, mode CoordinateMode) Coordinate {
	if c == nil {
		panic("gart: coordinate needs a canvas")
	}
	co := Coordinate{canvas: c}
	co.SetPosition(v, mode)
	return co
}

// SetPosition stores v, given in mode.
func (co *Coordinate) SetPosition(v Vec, mode CoordinateMode) {
	if mode == CanvasMode {
		co.pos = v
		co.ratio = co.canvas.CanvasToRatio(v)
		return
	}
	co.ratio = v
	co.pos = co.canvas.RatioToCanvas(v)
}

// SetX changes only the x value.
func (co *Coordinate) SetX(x float64, mode CoordinateMode) {
	p := co.Position(mode)
	p.X = x
	co.SetPosition(p, mode)
}

// SetY changes only the y value.
func (co *Coordinate) SetY(y float64, mode CoordinateMode) {
	p := co.Position(mode)
	p.Y = y
	co.SetPosition(p, mode)
}

// Position returns the position expressed in mode.
func (co Coordinate) Position(mode CoordinateMode) Vec {
	if mode == CanvasMode {
		return co.pos
	}
	return co.ratio
}

// X returns x expressed in mode.
func (co Coordinate) X(mode CoordinateMode) float64 {
	return co.Position(mode).X
}

// Y returns y expressed in mode.
func (co Coordinate) Y(mode CoordinateMode) float64 {
	return co.Position(mode).Y
}

// Remap recomputes the canvas position after the canvas was resized.
func (co *Coordinate) Remap() {
	co.pos = co.canvas.RatioToCanvas(co.ratio)
}

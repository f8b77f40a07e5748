package wave

import (
	"image/color"
	"math"

	gart "github.com/scottkirkwood/rainbow-gart"
)

// Shape drawn for a point
type Shape int

const (
	Circle Shape = iota
	Square
)

type pointConfig struct {
	ratioStart, ratioEnd float64
	base                 gart.Vec
	diameter             float64
	theta                float64
	deltaTheta           float64
	amplitude            float64
	color                color.Color
	shape                Shape
}

// Point is one oscillating element of a wave.
// Its base sits on the line from (0, 0) to (waveLength, 0) of the wave's frame.
type Point struct {
	ratioStart, ratioEnd float64
	base                 gart.Vec
	position             gart.Vec
	diameter             float64
	theta                float64
	deltaTheta           float64
	amplitude            float64
	color                color.Color
	shape                Shape
}

func newPoint(cfg pointConfig) *Point {
	p := &Point{
		ratioStart: cfg.ratioStart,
		ratioEnd:   cfg.ratioEnd,
		base:       cfg.base,
		diameter:   cfg.diameter,
		theta:      gart.NormalizeAngle(cfg.theta),
		deltaTheta: cfg.deltaTheta,
		amplitude:  cfg.amplitude,
		color:      cfg.color,
		shape:      cfg.shape,
	}
	p.updatePosition()
	return p
}

// RatioStart is where the point's span starts along the wave, 0..1
func (p *Point) RatioStart() float64 { return p.ratioStart }

// RatioEnd is where the point's span ends along the wave, 0..1
func (p *Point) RatioEnd() float64 { return p.ratioEnd }

// RatioCenter is the middle of the point's span
func (p *Point) RatioCenter() float64 { return (p.ratioStart + p.ratioEnd) / 2 }

// RatioLength is the width of the point's span
func (p *Point) RatioLength() float64 { return math.Abs(p.ratioEnd - p.ratioStart) }

func (p *Point) Base() gart.Vec      { return p.base }
func (p *Point) Position() gart.Vec  { return p.position }
func (p *Point) Diameter() float64   { return p.diameter }
func (p *Point) Theta() float64      { return p.theta }
func (p *Point) DeltaTheta() float64 { return p.deltaTheta }
func (p *Point) Amplitude() float64  { return p.amplitude }
func (p *Point) Color() color.Color  { return p.color }
func (p *Point) Shape() Shape        { return p.shape }

// UpdateBase moves the base without touching the phase.
func (p *Point) UpdateBase(base gart.Vec) {
	p.base = base
}

func (p *Point) UpdateAmplitude(amplitude float64) {
	p.amplitude = amplitude
}

func (p *Point) UpdateDiameter(diameter float64) {
	p.diameter = diameter
}

// Move advances the phase one frame.
func (p *Point) Move() {
	p.theta = math.Mod(p.theta+p.deltaTheta, gart.TwoPi)
	p.updatePosition()
}

// CanvasRedraw recomputes the position from the current base and amplitude.
func (p *Point) CanvasRedraw() {
	p.updatePosition()
}

// Draw renders the point in the wave's frame.
func (p *Point) Draw(r gart.Renderer) {
	r.SetFillColor(p.color)
	r.SetStrokeColor(nil)
	switch p.shape {
	case Square:
		r.Rect(p.position.X, p.position.Y, p.diameter, p.diameter)
	default:
		r.Ellipse(p.position.X, p.position.Y, p.diameter, p.diameter)
	}
}

func (p *Point) updatePosition() {
	p.position = gart.Vec{X: p.base.X, Y: p.calculateY()}
}

func (p *Point) calculateY() float64 {
	return p.base.Y + math.Sin(p.theta)*p.amplitude
}

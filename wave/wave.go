// Package wave lays out bands of oscillating points between two edges.
//
// A Wave works in its own frame: the x axis runs from the center of edge A
// to the center of edge B, and the rotation of that axis is applied only
// when drawing. Point spans are kept as ratios of the wave's length so that
// a resize rescales points without rebuilding them.
package wave

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
)

const (
	MinPoints = 5
	MaxPoints = 1000

	MinSpeed = 0.0001
	MaxSpeed = 0.1

	// minStep is the smallest span a Packed point may take, so packing
	// always moves forward.
	minStep = 1.0 / MaxPoints
)

var (
	ErrNoCanvas       = errors.New("wave needs a canvas")
	ErrNilSelector    = errors.New("wave needs a color selector and a point size selector")
	ErrZeroLengthEdge = errors.New("edge top and bottom are the same point")
	ErrZeroLengthWave = errors.New("edge A and edge B have the same center")
	ErrCrossedBand    = errors.New("band edges cross each other")
)

// ColorSelector hands out colors for new points.
type ColorSelector interface {
	Color() color.Color
}

// EdgeConfig is one edge of a band.
type EdgeConfig struct {
	Top, Bottom gart.Vec
}

// Config is everything needed to build a Wave.
type Config struct {
	CoordinateMode gart.CoordinateMode
	EdgeA, EdgeB   EdgeConfig

	PointTotal   int     // clamped to [MinPoints, MaxPoints]; used by Overlap
	Frequency    float64 // full cycles across the wave
	DeltaTheta   float64 // radians per frame, clamped to [MinSpeed, MaxSpeed]
	InitialTheta float64 // phase at edge A

	Fill      Fill
	Amplitude AmplitudeType
	PointType PointType

	ColorSelector     ColorSelector
	PointSizeSelector *gart.CategorySelector[PointSize]
	Rand              *rand.Rand // only needed for MixedShapes
}

// Wave is a band of points oscillating between two edges.
type Wave struct {
	edgeA, edgeB *Edge
	rotation     float64

	pointTotal   int
	frequency    float64
	deltaTheta   float64
	initialTheta float64

	fill          Fill
	amplitudeType AmplitudeType
	pointType     PointType

	colorSelector     ColorSelector
	pointSizeSelector *gart.CategorySelector[PointSize]
	rng               *rand.Rand

	points []*Point
}

// waveData is the geometry the points are fitted to, in canvas pixels.
type waveData struct {
	amplitudeA, amplitudeB float64
	length                 float64
}

type span struct {
	start, end float64
}

// New validates cfg and builds the wave's points.
func New(c *gart.Canvas, cfg Config) (*Wave, error) {
	if c == nil {
		return nil, ErrNoCanvas
	}
	if cfg.ColorSelector == nil || cfg.PointSizeSelector == nil {
		return nil, ErrNilSelector
	}
	if cfg.Fill != Overlap && cfg.Fill != Packed {
		return nil, fmt.Errorf("unknown fill policy %v", cfg.Fill)
	}
	if cfg.Amplitude != EdgeAmplitude && cfg.Amplitude != CenterAmplitude {
		return nil, fmt.Errorf("unknown amplitude type %v", cfg.Amplitude)
	}
	switch cfg.PointType {
	case Circles, Squares:
	case MixedShapes:
		if cfg.Rand == nil {
			return nil, errors.New("mixed point shapes need a random source")
		}
	default:
		return nil, fmt.Errorf("unknown point type %v", cfg.PointType)
	}

	w := &Wave{
		edgeA:             NewEdge(c, cfg.EdgeA.Top, cfg.EdgeA.Bottom, cfg.CoordinateMode),
		edgeB:             NewEdge(c, cfg.EdgeB.Top, cfg.EdgeB.Bottom, cfg.CoordinateMode),
		pointTotal:        gart.ClampInt(cfg.PointTotal, MinPoints, MaxPoints),
		frequency:         cfg.Frequency,
		deltaTheta:        gart.Clamp(cfg.DeltaTheta, MinSpeed, MaxSpeed),
		initialTheta:      gart.NormalizeAngle(cfg.InitialTheta),
		fill:              cfg.Fill,
		amplitudeType:     cfg.Amplitude,
		pointType:         cfg.PointType,
		colorSelector:     cfg.ColorSelector,
		pointSizeSelector: cfg.PointSizeSelector,
		rng:               cfg.Rand,
	}
	if err := w.validateEdges(); err != nil {
		return nil, err
	}
	w.updateRotation()
	w.buildPoints()
	return w, nil
}

func (w *Wave) validateEdges() error {
	if w.edgeA.Length() == 0 {
		return fmt.Errorf("edge A: %w", ErrZeroLengthEdge)
	}
	if w.edgeB.Length() == 0 {
		return fmt.Errorf("edge B: %w", ErrZeroLengthEdge)
	}
	if w.edgeA.Center() == w.edgeB.Center() {
		return ErrZeroLengthWave
	}
	tops := gart.Line{P1: w.edgeA.Top(), P2: w.edgeB.Top()}
	bottoms := gart.Line{P1: w.edgeA.Bottom(), P2: w.edgeB.Bottom()}
	if tops.Crosses(bottoms) {
		return ErrCrossedBand
	}
	return nil
}

func (w *Wave) EdgeA() *Edge          { return w.edgeA }
func (w *Wave) EdgeB() *Edge          { return w.edgeB }
func (w *Wave) Rotation() float64     { return w.rotation }
func (w *Wave) PointTotal() int       { return w.pointTotal }
func (w *Wave) Frequency() float64    { return w.frequency }
func (w *Wave) DeltaTheta() float64   { return w.deltaTheta }
func (w *Wave) InitialTheta() float64 { return w.initialTheta }
func (w *Wave) Fill() Fill            { return w.fill }

// Points in order along the wave
func (w *Wave) Points() []*Point { return w.points }

// CanvasRedraw rescales the existing points to the resized canvas.
func (w *Wave) CanvasRedraw() {
	w.edgeA.Remap()
	w.edgeB.Remap()
	w.updateRotation()
	w.updatePoints()
}

// UpdateEdges moves the band. Points keep their spans and phases.
func (w *Wave) UpdateEdges(edgeA, edgeB EdgeConfig, mode gart.CoordinateMode) error {
	oldA, oldB := *w.edgeA, *w.edgeB
	w.edgeA.Update(edgeA.Top, edgeA.Bottom, mode)
	w.edgeB.Update(edgeB.Top, edgeB.Bottom, mode)
	if err := w.validateEdges(); err != nil {
		*w.edgeA, *w.edgeB = oldA, oldB
		return err
	}
	w.updateRotation()
	w.updatePoints()
	return nil
}

// Draw renders the points along the wave's axis.
func (w *Wave) Draw(r gart.Renderer) {
	centerA := w.edgeA.Center()
	r.Push()
	r.Translate(centerA.X, centerA.Y)
	r.Rotate(w.rotation)
	for _, p := range w.points {
		p.Draw(r)
	}
	r.Pop()
}

// Move advances every point one frame.
func (w *Wave) Move() {
	for _, p := range w.points {
		p.Move()
	}
}

// DrawAndMove draws the current frame then advances to the next.
func (w *Wave) DrawAndMove(r gart.Renderer) {
	w.Draw(r)
	w.Move()
}

// DebugDrawFrame outlines the band, marks both edge centers and draws the axis.
func (w *Wave) DebugDrawFrame(r gart.Renderer, border color.Color, strokeWidth float64) {
	r.Push()
	r.SetFillColor(nil)
	r.SetStrokeColor(border)
	r.SetStrokeWidth(strokeWidth)
	r.Quad(w.edgeA.Top(), w.edgeB.Top(), w.edgeB.Bottom(), w.edgeA.Bottom())

	centerA, centerB := w.edgeA.Center(), w.edgeB.Center()
	r.SetStrokeWidth(strokeWidth * 5)
	r.SetStrokeColor(color.RGBA{0, 255, 0, 255})
	r.Point(centerA.X, centerA.Y)
	r.SetStrokeColor(color.RGBA{0, 0, 255, 255})
	r.Point(centerB.X, centerB.Y)

	r.SetStrokeWidth(strokeWidth)
	r.SetStrokeColor(color.RGBA{0, 255, 255, 255})
	r.Translate(centerA.X, centerA.Y)
	r.Rotate(w.rotation)
	r.Line(0, 0, centerA.Dist(centerB), 0)
	r.Pop()
}

func (w *Wave) updateRotation() {
	w.rotation = w.edgeB.Center().Sub(w.edgeA.Center()).Heading()
}

func (w *Wave) data() waveData {
	return waveData{
		amplitudeA: w.edgeA.Length() / 2,
		amplitudeB: w.edgeB.Length() / 2,
		length:     w.edgeA.Center().Dist(w.edgeB.Center()),
	}
}

func (w *Wave) buildPoints() {
	var spans []span
	if w.fill == Packed {
		spans = w.packedSpans()
	} else {
		spans = w.overlapSpans()
	}

	data := w.data()
	w.points = make([]*Point, 0, len(spans))
	for _, s := range spans {
		center := (s.start + s.end) / 2
		p := newPoint(pointConfig{
			ratioStart: s.start,
			ratioEnd:   s.end,
			theta:      w.initialTheta + gart.TwoPi*w.frequency*center,
			deltaTheta: w.deltaTheta,
			color:      w.colorSelector.Color(),
			shape:      w.nextShape(),
		})
		w.fit(p, data)
		p.CanvasRedraw()
		w.points = append(w.points, p)
	}
}

// overlapSpans gives each of pointTotal equal slots one point centered in
// the slot; a point's span is its drawn size, so neighbours may overlap.
func (w *Wave) overlapSpans() []span {
	spans := make([]span, w.pointTotal)
	slot := 1.0 / float64(w.pointTotal)
	for i := range spans {
		center := (float64(i) + 0.5) * slot
		size := w.pointSizeSelector.Choice()
		spans[i] = span{center - size/2, center + size/2}
	}
	return spans
}

// packedSpans lays points end to end from 0 to 1. A gap too small for the
// current category's smallest point is absorbed by the last point.
func (w *Wave) packedSpans() []span {
	var spans []span
	start := 0.0
	for i := 0; start < 1; i++ {
		size := max(w.pointSizeSelector.Choice(), minStep)
		smallest := minStep
		if r, ok := w.pointSizeSelector.CurrentCategoryRange(); ok {
			smallest = max(r.Min, minStep)
		}
		end := start + size
		if end >= 1 || 1-end < smallest || i == MaxPoints-1 {
			end = 1
		}
		spans = append(spans, span{start, end})
		start = end
	}
	return spans
}

func (w *Wave) nextShape() Shape {
	switch w.pointType {
	case Squares:
		return Square
	case MixedShapes:
		if w.rng.Intn(2) == 0 {
			return Square
		}
	}
	return Circle
}

func (w *Wave) updatePoints() {
	data := w.data()
	for _, p := range w.points {
		w.fit(p, data)
		p.CanvasRedraw()
	}
}

// fit sets a point's base, diameter and amplitude from its span and the
// wave's geometry. With EdgeAmplitude a point never reaches past the band:
// when it is wider than the band it stops moving and shrinks to fit.
func (w *Wave) fit(p *Point, data waveData) {
	center := p.RatioCenter()
	diameter := data.length * p.RatioLength()
	envelope := gart.Lerp(data.amplitudeA, data.amplitudeB, center)
	amplitude := envelope
	if w.amplitudeType == EdgeAmplitude {
		amplitude = envelope - diameter/2
		if amplitude < 0 {
			amplitude = 0
			diameter = envelope * 2
		}
	}
	p.UpdateBase(gart.Vec{X: data.length * center, Y: 0})
	p.UpdateDiameter(diameter)
	p.UpdateAmplitude(amplitude)
}

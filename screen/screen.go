package screen

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/palette"
	"github.com/scottkirkwood/rainbow-gart/wave"
)

// Screen names, also used as export file prefixes.
const (
	HorizontalWaves = "horizontal_waves"
	VerticalWaves   = "vertical_waves"
	WaveTesting     = "wave_testing"
)

// Screen is one composition the Handler can show.
type Screen interface {
	Name() string
	// Draw renders one frame and advances the animation.
	Draw(r gart.Renderer)
	// Activate makes the next frame start from a cleared background.
	Activate()
	CanvasRedraw()
	// SetColors rebuilds the screen with new colors.
	SetColors(cs palette.ColorSelector) error
}

// WaveScreen fills the canvas with a stack of waves, one per band.
type WaveScreen struct {
	name      string
	canvas    *gart.Canvas
	opts      Options
	selectors *Selectors
	colors    palette.ColorSelector
	rng       *rand.Rand

	background      color.Color
	backgroundAlpha uint8
	clear           bool

	waves []*wave.Wave
}

var _ Screen = (*WaveScreen)(nil)

// NewWaveScreen validates opts and builds the waves.
func NewWaveScreen(name string, c *gart.Canvas, opts Options, sel *Selectors, colors palette.ColorSelector, rng *rand.Rand) (*WaveScreen, error) {
	if c == nil {
		return nil, wave.ErrNoCanvas
	}
	if sel == nil || colors == nil || rng == nil {
		return nil, errors.New("wave screen needs selectors, colors and a random source")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s := &WaveScreen{
		name:       name,
		canvas:     c,
		opts:       opts,
		selectors:  sel,
		colors:     colors,
		rng:        rng,
		background: color.Black,
		clear:      true,
	}
	if err := s.build(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// NewHorizontal is a WaveScreen with DefaultHorizontalOptions.
func NewHorizontal(c *gart.Canvas, sel *Selectors, colors palette.ColorSelector, rng *rand.Rand) (*WaveScreen, error) {
	return NewWaveScreen(HorizontalWaves, c, DefaultHorizontalOptions(), sel, colors, rng)
}

// NewVertical is a WaveScreen with DefaultVerticalOptions.
func NewVertical(c *gart.Canvas, sel *Selectors, colors palette.ColorSelector, rng *rand.Rand) (*WaveScreen, error) {
	return NewWaveScreen(VerticalWaves, c, DefaultVerticalOptions(), sel, colors, rng)
}

func (s *WaveScreen) Name() string           { return s.name }
func (s *WaveScreen) Waves() []*wave.Wave    { return s.waves }
func (s *WaveScreen) Options() Options       { return s.opts }
func (s *WaveScreen) BackgroundAlpha() uint8 { return s.backgroundAlpha }

func (s *WaveScreen) Activate() { s.clear = true }

// CanvasRedraw rescales every wave and clears the trails.
func (s *WaveScreen) CanvasRedraw() {
	for _, w := range s.waves {
		w.CanvasRedraw()
	}
	s.clear = true
}

// SetColors rebuilds the waves with a new color selector.
func (s *WaveScreen) SetColors(cs palette.ColorSelector) error {
	if cs == nil {
		return errors.New("nil color selector")
	}
	old := s.colors
	s.colors = cs
	if err := s.build(); err != nil {
		s.colors = old
		return err
	}
	s.clear = true
	return nil
}

// Draw fades the previous frame and draws and moves every wave.
func (s *WaveScreen) Draw(r gart.Renderer) {
	if s.clear {
		r.Background(s.background)
		s.clear = false
	} else {
		r.Push()
		r.SetStrokeColor(nil)
		r.SetFillColor(palette.WithAlpha(s.background, s.backgroundAlpha))
		r.FillRect(-10, -10, r.Width()+20, r.Height()+20)
		r.Pop()
	}
	for _, w := range s.waves {
		w.DrawAndMove(r)
	}
}

func (s *WaveScreen) build() error {
	bands, err := s.opts.Layout.Bands(s.rng)
	if err != nil {
		return err
	}
	s.selectors.PointSize.SetRandomCategory()
	s.selectors.PointDensity.SetRandomCategory()

	shared := s.opts.drawParams(s.rng)
	waves := make([]*wave.Wave, 0, len(bands))
	for i, b := range bands {
		params := s.opts.nextParams(shared, s.rng)
		edgeA, edgeB := s.opts.Layout.Edges(b)
		w, err := wave.New(s.canvas, wave.Config{
			CoordinateMode:    gart.Ratio,
			EdgeA:             edgeA,
			EdgeB:             edgeB,
			PointTotal:        s.pointTotal(),
			Frequency:         params.frequency,
			DeltaTheta:        params.deltaTheta,
			InitialTheta:      params.initialTheta,
			Fill:              s.opts.Fill,
			Amplitude:         params.amplitude,
			PointType:         s.opts.PointType,
			ColorSelector:     s.colors,
			PointSizeSelector: s.selectors.PointSize,
			Rand:              s.rng,
		})
		if err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}
		waves = append(waves, w)
	}
	s.backgroundAlpha = uint8(gart.RandIntRange(s.rng, int(s.opts.BackgroundAlpha.Min), int(s.opts.BackgroundAlpha.Max)))
	s.waves = waves
	return nil
}

func (s *WaveScreen) pointTotal() int {
	if s.opts.Points.Max == 0 {
		return int(s.selectors.PointDensity.Choice())
	}
	return gart.RandIntRange(s.rng, int(s.opts.Points.Min), int(s.opts.Points.Max))
}

package screen

import (
	"errors"
	"image/color"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/palette"
	"github.com/scottkirkwood/rainbow-gart/wave"
)

// Testing shows three fixed waves with their frames, one of each kind of
// band: horizontal, vertical and diagonal.
type Testing struct {
	canvas    *gart.Canvas
	selectors *Selectors
	colors    palette.ColorSelector
	rng       *rand.Rand
	waves     []*wave.Wave
}

var _ Screen = (*Testing)(nil)

type testWave struct {
	edgeA, edgeB wave.EdgeConfig
	fill         wave.Fill
	amplitude    wave.AmplitudeType
}

var testWaves = []testWave{
	{
		edgeA:     wave.EdgeConfig{Top: gart.V(0, 0.3), Bottom: gart.V(0, 0.7)},
		edgeB:     wave.EdgeConfig{Top: gart.V(1, 0.4), Bottom: gart.V(1, 0.6)},
		fill:      wave.Overlap,
		amplitude: wave.CenterAmplitude,
	},
	{
		edgeA:     wave.EdgeConfig{Top: gart.V(0.4, 0), Bottom: gart.V(0.6, 0)},
		edgeB:     wave.EdgeConfig{Top: gart.V(0.4, 1), Bottom: gart.V(0.6, 1)},
		fill:      wave.Packed,
		amplitude: wave.EdgeAmplitude,
	},
	{
		edgeA:     wave.EdgeConfig{Top: gart.V(0, 0.1), Bottom: gart.V(0.1, 0)},
		edgeB:     wave.EdgeConfig{Top: gart.V(0.9, 1), Bottom: gart.V(1, 0.9)},
		fill:      wave.Packed,
		amplitude: wave.EdgeAmplitude,
	},
}

// NewTesting builds the diagnostic waves. It uses its own selectors pinned
// to medium sizes so it never disturbs the other screens.
func NewTesting(c *gart.Canvas, colors palette.ColorSelector, rng *rand.Rand) (*Testing, error) {
	if c == nil {
		return nil, wave.ErrNoCanvas
	}
	if colors == nil || rng == nil {
		return nil, errors.New("testing screen needs colors and a random source")
	}
	sel, err := NewSelectors(rng)
	if err != nil {
		return nil, err
	}
	sel.PointSize.SetCurrentCategory(wave.Medium)
	sel.PointSize.SetSameChoice(false)
	sel.PointDensity.SetCurrentCategory(wave.MediumDensity)
	sel.PointDensity.SetSameChoice(true)

	t := &Testing{canvas: c, selectors: sel, colors: colors, rng: rng}
	if err := t.build(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Testing) build() error {
	waves := make([]*wave.Wave, 0, len(testWaves))
	for _, tw := range testWaves {
		w, err := wave.New(t.canvas, wave.Config{
			CoordinateMode:    gart.Ratio,
			EdgeA:             tw.edgeA,
			EdgeB:             tw.edgeB,
			PointTotal:        int(t.selectors.PointDensity.Choice()),
			Frequency:         1,
			DeltaTheta:        0.01,
			Fill:              tw.fill,
			Amplitude:         tw.amplitude,
			ColorSelector:     t.colors,
			PointSizeSelector: t.selectors.PointSize,
		})
		if err != nil {
			return err
		}
		waves = append(waves, w)
	}
	t.waves = waves
	return nil
}

func (t *Testing) Name() string        { return WaveTesting }
func (t *Testing) Waves() []*wave.Wave { return t.waves }

// Activate is a no-op; every frame starts from a cleared background.
func (t *Testing) Activate() {}

func (t *Testing) CanvasRedraw() {
	for _, w := range t.waves {
		w.CanvasRedraw()
	}
}

func (t *Testing) SetColors(cs palette.ColorSelector) error {
	if cs == nil {
		return errors.New("nil color selector")
	}
	old := t.colors
	t.colors = cs
	if err := t.build(); err != nil {
		t.colors = old
		return err
	}
	return nil
}

// Draw clears the canvas, then draws each wave with its frame.
func (t *Testing) Draw(r gart.Renderer) {
	r.Background(color.Black)
	for _, w := range t.waves {
		w.Draw(r)
		w.DebugDrawFrame(r, color.White, t.canvas.DefaultStroke())
		w.Move()
	}
}

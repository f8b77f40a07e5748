package screen

import (
	"errors"
	"fmt"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/wave"
)

// Selectors are shared by every screen of a run so that a category picked
// once applies to the whole composition.
type Selectors struct {
	PointSize    *gart.CategorySelector[wave.PointSize]
	PointDensity *gart.CategorySelector[wave.PointDensity]
}

// NewSelectors creates both selectors, each randomly caching its choice or not.
func NewSelectors(rng *rand.Rand) (*Selectors, error) {
	size, err := wave.NewPointSizeSelector(rng.Intn(2) == 0, rng)
	if err != nil {
		return nil, err
	}
	density, err := wave.NewPointDensitySelector(rng.Intn(2) == 0, rng)
	if err != nil {
		return nil, err
	}
	return &Selectors{PointSize: size, PointDensity: density}, nil
}

// Options for a WaveScreen.
type Options struct {
	Layout Layout

	// Points is the range of points per wave. The zero range uses the
	// point density selector instead.
	Points     gart.Range
	Frequency  gart.Range
	DeltaTheta gart.Range

	// BackgroundAlpha is the range of the per-frame fade, 0..255.
	// Lower values leave longer trails.
	BackgroundAlpha gart.Range

	Fill      wave.Fill
	Amplitude wave.AmplitudeType
	PointType wave.PointType

	// The SameWave flags draw a value once per screen instead of once per wave.
	SameWaveAmplitude    bool
	SameWaveDeltaTheta   bool
	SameWaveInitialTheta bool
	SameWaveFrequency    bool
}

// DefaultHorizontalOptions are overlapping waves of 10 to 150 points.
func DefaultHorizontalOptions() Options {
	return Options{
		Layout:               DefaultLayout(),
		Points:               gart.Range{Min: 10, Max: 150},
		Frequency:            gart.Range{Min: 0.5, Max: 10},
		DeltaTheta:           gart.Range{Min: 0.005, Max: 0.05},
		BackgroundAlpha:      gart.Range{Min: 5, Max: 75},
		Fill:                 wave.Overlap,
		Amplitude:            wave.CenterAmplitude,
		PointType:            wave.Circles,
		SameWaveAmplitude:    true,
		SameWaveDeltaTheta:   true,
		SameWaveInitialTheta: true,
		SameWaveFrequency:    true,
	}
}

// DefaultVerticalOptions are vertical waves that stay inside their bands,
// with the point count taken from the density selector.
func DefaultVerticalOptions() Options {
	opts := DefaultHorizontalOptions()
	opts.Layout.Orientation = VerticalBands
	opts.Points = gart.Range{}
	opts.Fill = wave.Overlap
	opts.Amplitude = wave.EdgeAmplitude
	opts.PointType = wave.MixedShapes
	opts.SameWaveInitialTheta = false
	return opts
}

// Validate checks the ranges and the layout.
func (o Options) Validate() error {
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	ranges := []struct {
		name string
		r    gart.Range
	}{
		{"points", o.Points},
		{"frequency", o.Frequency},
		{"delta theta", o.DeltaTheta},
		{"background alpha", o.BackgroundAlpha},
	}
	for _, r := range ranges {
		if r.r.Min > r.r.Max {
			return fmt.Errorf("%s range is inverted: %g > %g", r.name, r.r.Min, r.r.Max)
		}
	}
	if o.BackgroundAlpha.Min < 0 || o.BackgroundAlpha.Max > 255 {
		return errors.New("background alpha must be within 0..255")
	}
	return nil
}

// waveParams are the per-wave random draws.
type waveParams struct {
	frequency    float64
	deltaTheta   float64
	initialTheta float64
	amplitude    wave.AmplitudeType
}

func (o Options) drawParams(rng *rand.Rand) waveParams {
	return waveParams{
		frequency:    o.Frequency.Random(rng),
		deltaTheta:   o.DeltaTheta.Random(rng),
		initialTheta: gart.RandRange(rng, 0, gart.TwoPi),
		amplitude:    o.Amplitude,
	}
}

// nextParams keeps the shared values and redraws the rest.
func (o Options) nextParams(shared waveParams, rng *rand.Rand) waveParams {
	p := shared
	if !o.SameWaveFrequency {
		p.frequency = o.Frequency.Random(rng)
	}
	if !o.SameWaveDeltaTheta {
		p.deltaTheta = o.DeltaTheta.Random(rng)
	}
	if !o.SameWaveInitialTheta {
		p.initialTheta = gart.RandRange(rng, 0, gart.TwoPi)
	}
	if !o.SameWaveAmplitude && rng.Intn(2) == 0 {
		// flip to the other policy on half the waves
		if p.amplitude == wave.EdgeAmplitude {
			p.amplitude = wave.CenterAmplitude
		} else {
			p.amplitude = wave.EdgeAmplitude
		}
	}
	return p
}

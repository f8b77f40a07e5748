package palette

import (
	"errors"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ojrac/opensimplex-go"
)

// NoiseSelector treats a palette as a gradient and walks along it with
// simplex noise, so consecutive colors drift instead of jumping.
type NoiseSelector struct {
	palette Palette
	stops   []colorful.Color
	noise   opensimplex.Noise
	step    float64
	t       float64
}

// NewNoiseSelector returns a selector over p that moves `step` along the
// noise field for each color. Smaller steps give smoother gradients.
func NewNoiseSelector(p Palette, seed int64, step float64) (*NoiseSelector, error) {
	if len(p.Colors) == 0 {
		return nil, errors.New("noise selector needs at least one color")
	}
	stops := make([]colorful.Color, 0, len(p.Colors))
	for _, c := range p.Colors {
		cc, ok := colorful.MakeColor(c)
		if !ok {
			continue
		}
		stops = append(stops, cc)
	}
	if len(stops) == 0 {
		return nil, errors.New("noise selector needs an opaque color")
	}
	return &NoiseSelector{
		palette: p,
		stops:   stops,
		noise:   opensimplex.New(seed),
		step:    step,
	}, nil
}

func (n *NoiseSelector) Name() string { return n.palette.Name + "-noise" }

func (n *NoiseSelector) Color() color.Color {
	// Eval2 is roughly -1..1
	pos := (n.noise.Eval2(n.t, 0) + 1) / 2
	n.t += n.step
	return toRGBA(n.at(pos), 255)
}

// at blends the two stops around pos, 0..1 along the gradient.
func (n *NoiseSelector) at(pos float64) colorful.Color {
	if len(n.stops) == 1 {
		return n.stops[0]
	}
	pos = math.Max(0, math.Min(1, pos)) * float64(len(n.stops)-1)
	i := int(pos)
	if i >= len(n.stops)-1 {
		return n.stops[len(n.stops)-1]
	}
	return n.stops[i].BlendLab(n.stops[i+1], pos-float64(i))
}

package palette

import (
	"errors"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSelector hands out a color each time one is needed.
type ColorSelector interface {
	Color() color.Color
	Name() string
}

// Order is how a PaletteSelector walks its palette.
type Order int

const (
	Random Order = iota
	Cycle
	Mirror // 0, 1, .. n-1, n-2, .. 1, 0, 1, ..
)

// PaletteSelector picks colors out of one palette.
type PaletteSelector struct {
	palette Palette
	order   Order
	rng     *rand.Rand
	next    int
	step    int
}

// NewPaletteSelector returns a selector over p.
func NewPaletteSelector(p Palette, order Order, rng *rand.Rand) (*PaletteSelector, error) {
	if len(p.Colors) == 0 {
		return nil, errors.New("palette selector needs at least one color")
	}
	if order == Random && rng == nil {
		return nil, errors.New("random palette order needs a random source")
	}
	return &PaletteSelector{palette: p, order: order, rng: rng, step: 1}, nil
}

func (s *PaletteSelector) Name() string { return s.palette.Name }

// Palette the colors come from
func (s *PaletteSelector) Palette() Palette { return s.palette }

func (s *PaletteSelector) Color() color.Color {
	n := len(s.palette.Colors)
	switch s.order {
	case Cycle:
		c := s.palette.Colors[s.next]
		s.next = (s.next + 1) % n
		return c
	case Mirror:
		c := s.palette.Colors[s.next]
		if n > 1 {
			if s.next+s.step < 0 || s.next+s.step >= n {
				s.step = -s.step
			}
			s.next += s.step
		}
		return c
	}
	return s.palette.Colors[s.rng.Intn(n)]
}

// FixedSelector always returns the same color.
type FixedSelector struct {
	C color.Color
}

func (f FixedSelector) Color() color.Color { return f.C }
func (f FixedSelector) Name() string       { return "fixed" }

// HSLSelector walks the hue wheel, `Steps` colors per full turn.
type HSLSelector struct {
	Start      float64 // hue in degrees
	Steps      int
	Saturation float64
	Lightness  float64

	i int
}

// NewHSLSelector returns a selector starting at a random hue.
func NewHSLSelector(steps int, rng *rand.Rand) *HSLSelector {
	return &HSLSelector{
		Start:      rng.Float64() * 360,
		Steps:      max(steps, 1),
		Saturation: 0.85,
		Lightness:  0.55,
	}
}

func (h *HSLSelector) Name() string { return "hsl" }

func (h *HSLSelector) Color() color.Color {
	hue := math.Mod(h.Start+360*float64(h.i)/float64(max(h.Steps, 1)), 360)
	h.i++
	return toRGBA(colorful.Hsl(hue, h.Saturation, h.Lightness), 255)
}

// Manager holds the selectors a screen can choose from.
type Manager struct {
	selectors []ColorSelector
}

// Add registers selectors.
func (m *Manager) Add(selectors ...ColorSelector) {
	m.selectors = append(m.selectors, selectors...)
}

// Len is the number of registered selectors.
func (m *Manager) Len() int { return len(m.selectors) }

// Random returns one of the registered selectors.
func (m *Manager) Random(rng *rand.Rand) (ColorSelector, error) {
	if len(m.selectors) == 0 {
		return nil, errors.New("no color selectors registered")
	}
	return m.selectors[rng.Intn(len(m.selectors))], nil
}

// NewManager registers one random-order selector per palette.
func NewManager(palettes []Palette, rng *rand.Rand) (*Manager, error) {
	m := &Manager{}
	for _, p := range palettes {
		s, err := NewPaletteSelector(p, Random, rng)
		if err != nil {
			return nil, err
		}
		m.Add(s)
	}
	return m, nil
}

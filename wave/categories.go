package wave

import (
	"fmt"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
)

// PointSize is the size of the points in a wave, as a fraction of the
// wave's length. It decides how many points a Fill wave gets.
type PointSize string

const (
	Small  PointSize = "small"
	Medium PointSize = "medium"
	Large  PointSize = "large"
	Mixed  PointSize = "mixed"
)

// PointSizeChoices is the point size taxonomy.
func PointSizeChoices() []gart.CategoryChoice[PointSize] {
	return []gart.CategoryChoice[PointSize]{
		{Category: Small, Range: gart.Range{Min: 1.0 / 250.0, Max: 1.0 / 75.0}},
		{Category: Medium, Range: gart.Range{Min: 1.0 / 75.0, Max: 1.0 / 25.0}},
		{Category: Large, Range: gart.Range{Min: 1.0 / 25.0, Max: 1.0 / 4.0}},
		{Category: Mixed, Range: gart.Range{Min: 1.0 / 250.0, Max: 1.0 / 4.0}},
	}
}

// NewPointSizeSelector returns a selector over PointSizeChoices.
func NewPointSizeSelector(sameChoice bool, rng *rand.Rand) (*gart.CategorySelector[PointSize], error) {
	return gart.NewCategorySelector(PointSizeChoices(), sameChoice, rng)
}

// PointDensity is how many points an Overlap wave gets.
type PointDensity int

const (
	LowDensity    PointDensity = iota // 4-25 points
	MediumDensity                     // 25-75 points
	HighDensity                       // 75-250 points
)

func (d PointDensity) String() string {
	switch d {
	case LowDensity:
		return "low"
	case MediumDensity:
		return "medium"
	case HighDensity:
		return "high"
	}
	return fmt.Sprintf("PointDensity(%d)", int(d))
}

// PointDensityChoices is the point count taxonomy.
func PointDensityChoices() []gart.CategoryChoice[PointDensity] {
	return []gart.CategoryChoice[PointDensity]{
		{Category: LowDensity, Range: gart.Range{Min: 4, Max: 25}},
		{Category: MediumDensity, Range: gart.Range{Min: 25, Max: 75}},
		{Category: HighDensity, Range: gart.Range{Min: 75, Max: 250}},
	}
}

// NewPointDensitySelector returns a selector over PointDensityChoices.
func NewPointDensitySelector(sameChoice bool, rng *rand.Rand) (*gart.CategorySelector[PointDensity], error) {
	return gart.NewCategorySelector(PointDensityChoices(), sameChoice, rng)
}

// WaveDensity is how many waves share a screen.
type WaveDensity int

const (
	LowWaves    WaveDensity = iota // 1-10 waves
	MediumWaves                    // 10-25 waves
	HighWaves                      // 25-100 waves
)

// WaveDensityChoices is the wave count taxonomy.
func WaveDensityChoices() []gart.CategoryChoice[WaveDensity] {
	return []gart.CategoryChoice[WaveDensity]{
		{Category: LowWaves, Range: gart.Range{Min: 1, Max: 10}},
		{Category: MediumWaves, Range: gart.Range{Min: 10, Max: 25}},
		{Category: HighWaves, Range: gart.Range{Min: 25, Max: 100}},
	}
}

// Fill is how points are packed along a wave.
type Fill int

const (
	// Overlap places points at equal spacing; big points can overlap.
	Overlap Fill = iota
	// Packed lays points end to end so they cover the wave exactly.
	Packed
)

func (f Fill) String() string {
	switch f {
	case Overlap:
		return "overlap"
	case Packed:
		return "fill"
	}
	return fmt.Sprintf("Fill(%d)", int(f))
}

// AmplitudeType is what a point's amplitude is measured from.
type AmplitudeType int

const (
	// EdgeAmplitude keeps the whole point inside the band.
	EdgeAmplitude AmplitudeType = iota
	// CenterAmplitude lets the point's center reach the band's edge.
	CenterAmplitude
)

func (a AmplitudeType) String() string {
	switch a {
	case EdgeAmplitude:
		return "edge"
	case CenterAmplitude:
		return "center"
	}
	return fmt.Sprintf("AmplitudeType(%d)", int(a))
}

// PointType is the shape drawn for each point.
type PointType int

const (
	Circles PointType = iota
	Squares
	MixedShapes
)

func (t PointType) String() string {
	switch t {
	case Circles:
		return "circle"
	case Squares:
		return "square"
	case MixedShapes:
		return "mixed"
	}
	return fmt.Sprintf("PointType(%d)", int(t))
}

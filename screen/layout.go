// Package screen stacks waves into full-canvas compositions and routes
// host input to them.
package screen

import (
	"errors"
	"fmt"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/wave"
)

// ErrBadLayout is wrapped by every Layout validation error.
var ErrBadLayout = errors.New("bad layout")

// Orientation is the direction waves travel in.
type Orientation int

const (
	// HorizontalBands stacks bands top to bottom; waves run left to right.
	HorizontalBands Orientation = iota
	// VerticalBands stacks bands left to right; waves run top to bottom.
	VerticalBands
)

func (o Orientation) String() string {
	switch o {
	case HorizontalBands:
		return "horizontal"
	case VerticalBands:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Band is a slice of the canvas across the stacking direction, as ratios.
type Band struct {
	Start, End float64
}

// Height of the band as a ratio.
func (b Band) Height() float64 { return b.End - b.Start }

// Layout says how to cut the canvas into bands.
type Layout struct {
	MinBands, MaxBands int
	// EdgeBuffer is left empty at both ends of the canvas.
	EdgeBuffer float64
	// Gap is left empty between bands.
	Gap         float64
	Orientation Orientation
}

// DefaultLayout is 5 to 30 horizontal bands.
func DefaultLayout() Layout {
	return Layout{
		MinBands:   5,
		MaxBands:   30,
		EdgeBuffer: 0.01,
		Gap:        0.01,
	}
}

// Validate checks that the layout can always produce at least one band.
func (l Layout) Validate() error {
	switch {
	case l.MinBands < 1:
		return fmt.Errorf("%w: min bands %d < 1", ErrBadLayout, l.MinBands)
	case l.MaxBands < l.MinBands:
		return fmt.Errorf("%w: max bands %d < min bands %d", ErrBadLayout, l.MaxBands, l.MinBands)
	case l.EdgeBuffer < 0 || l.Gap < 0:
		return fmt.Errorf("%w: negative buffer or gap", ErrBadLayout)
	case 1-2*l.EdgeBuffer < l.minHeight():
		return fmt.Errorf("%w: edge buffer %g leaves no room for a band", ErrBadLayout, l.EdgeBuffer)
	case l.Orientation != HorizontalBands && l.Orientation != VerticalBands:
		return fmt.Errorf("%w: unknown orientation %v", ErrBadLayout, l.Orientation)
	}
	return nil
}

func (l Layout) minHeight() float64 { return 1 / float64(l.MaxBands) }
func (l Layout) maxHeight() float64 { return 1 / float64(l.MinBands) }

// Bands cuts the canvas between the edge buffers. Heights are drawn from
// [1/MaxBands, 1/MinBands]; a band that would overflow, or would leave less
// than one minimal band after it, is stretched to the end.
func (l Layout) Bands(rng *rand.Rand) ([]Band, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	limit := 1 - l.EdgeBuffer
	var bands []Band
	for start := l.EdgeBuffer; start < limit; {
		end := start + gart.RandRange(rng, l.minHeight(), l.maxHeight())
		if end > limit || limit-(end+l.Gap) < l.minHeight() {
			end = limit
		}
		bands = append(bands, Band{Start: start, End: end})
		start = end + l.Gap
	}
	return bands, nil
}

// Edges turns a band into the two ratio-space edges of a wave.
func (l Layout) Edges(b Band) (edgeA, edgeB wave.EdgeConfig) {
	if l.Orientation == VerticalBands {
		return wave.EdgeConfig{Top: gart.V(b.Start, 0), Bottom: gart.V(b.End, 0)},
			wave.EdgeConfig{Top: gart.V(b.Start, 1), Bottom: gart.V(b.End, 1)}
	}
	return wave.EdgeConfig{Top: gart.V(0, b.Start), Bottom: gart.V(0, b.End)},
		wave.EdgeConfig{Top: gart.V(1, b.Start), Bottom: gart.V(1, b.End)}
}

package screen

import (
	"errors"
	"fmt"
	"math/rand"

	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/palette"
)

// ErrUnknownScreen is returned when switching to a screen that was never added.
var ErrUnknownScreen = errors.New("unknown screen")

// Handler owns the screens, shows one at a time and turns key presses into
// canvas and screen changes.
type Handler struct {
	canvas  *gart.Canvas
	screens []Screen
	current int

	// OnSaveSet is called when the social media set is requested.
	OnSaveSet func(s Screen)

	// OnFrameRate is called when the frame rate is requested.
	OnFrameRate func()
}

// NewHandler registers the handler with the canvas so resizes reach every screen.
func NewHandler(c *gart.Canvas, screens ...Screen) (*Handler, error) {
	if c == nil {
		return nil, errors.New("handler needs a canvas")
	}
	if len(screens) == 0 {
		return nil, errors.New("handler needs at least one screen")
	}
	h := &Handler{canvas: c, screens: screens}
	c.AddRedrawListener(h)
	h.Current().Activate()
	return h, nil
}

// NewDefaultHandler builds the horizontal, vertical and testing screens,
// sharing one set of selectors, and shows the horizontal one.
func NewDefaultHandler(c *gart.Canvas, colors palette.ColorSelector, rng *rand.Rand) (*Handler, error) {
	sel, err := NewSelectors(rng)
	if err != nil {
		return nil, err
	}
	horizontal, err := NewHorizontal(c, sel, colors, rng)
	if err != nil {
		return nil, err
	}
	vertical, err := NewVertical(c, sel, colors, rng)
	if err != nil {
		return nil, err
	}
	debug, err := NewTesting(c, colors, rng)
	if err != nil {
		return nil, err
	}
	return NewHandler(c, horizontal, vertical, debug)
}

// Current is the screen being shown.
func (h *Handler) Current() Screen { return h.screens[h.current] }

// Screens in the order they were added.
func (h *Handler) Screens() []Screen { return h.screens }

// SetCurrent switches to the named screen.
func (h *Handler) SetCurrent(name string) error {
	for i, s := range h.screens {
		if s.Name() == name {
			h.current = i
			s.Activate()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// Draw renders one frame of the current screen.
func (h *Handler) Draw(r gart.Renderer) {
	h.Current().Draw(r)
}

// CanvasRedraw tells every screen, not only the current one, so switching
// screens after a resize needs no extra work.
func (h *Handler) CanvasRedraw() {
	for _, s := range h.screens {
		s.CanvasRedraw()
	}
}

// SetColors recolors every screen.
func (h *Handler) SetColors(cs palette.ColorSelector) error {
	for _, s := range h.screens {
		if err := s.SetColors(cs); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return nil
}

var screenKeys = map[rune]string{
	'a': HorizontalWaves,
	's': VerticalWaves,
	'd': WaveTesting,
}

// KeyPressed handles one key and reports whether it was bound.
//
//	1-5  aspect ratio: square, pinterest pin, tiktok photo, social video, widescreen
//	8 9  resolution 720, 1080
//	0    report the frame rate
//	a s d  horizontal waves, vertical waves, wave testing
//	z    save the social media set
func (h *Handler) KeyPressed(key rune) (bool, error) {
	var err error
	switch {
	case key >= '1' && key <= '5':
		err = h.canvas.UpdateAspectRatio(gart.AspectRatios[key-'1'])
	case key == '8':
		err = h.canvas.UpdateResolution(720)
	case key == '9':
		err = h.canvas.UpdateResolution(1080)
	case key == '0':
		if h.OnFrameRate != nil {
			h.OnFrameRate()
		}
		return true, nil
	case screenKeys[key] != "":
		err = h.SetCurrent(screenKeys[key])
	case key == 'z':
		if h.OnSaveSet != nil {
			h.OnSaveSet(h.Current())
		}
	default:
		return false, nil
	}
	h.Current().Activate()
	return true, err
}

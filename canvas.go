package gart

import (
	"errors"
	"fmt"
	"math"
)

// AspectRatio of a canvas, width:height
type AspectRatio struct {
	Name          string
	Width, Height int
}

// Float returns width / height
func (a AspectRatio) Float() float64 {
	return float64(a.Width) / float64(a.Height)
}

func (a AspectRatio) String() string {
	return fmt.Sprintf("%s (%d:%d)", a.Name, a.Width, a.Height)
}

// Aspect ratios used for social media exports.
var (
	Square       = AspectRatio{"square", 1, 1}
	PinterestPin = AspectRatio{"pinterest_pin", 2, 3}
	TikTokPhoto  = AspectRatio{"tiktok_photo", 3, 4}
	SocialVideo  = AspectRatio{"social_video", 9, 16}
	Widescreen   = AspectRatio{"widescreen", 16, 9}

	AspectRatios = []AspectRatio{Square, PinterestPin, TikTokPhoto, SocialVideo, Widescreen}
)

// AspectRatioByName finds one of AspectRatios by name.
func AspectRatioByName(name string) (AspectRatio, bool) {
	for _, a := range AspectRatios {
		if a.Name == name {
			return a, true
		}
	}
	return AspectRatio{}, false
}

// RedrawListener is told when the canvas changes size.
type RedrawListener interface {
	CanvasRedraw()
}

// Canvas is the drawing surface that owns the current size.
// Every Coordinate converts between ratio and canvas space through it.
type Canvas struct {
	width, height float64
	aspect        AspectRatio
	resolution    int // pixels along the shorter side
	listeners     []RedrawListener
}

var errBadSize = errors.New("canvas size must be positive")

// NewCanvas creates a canvas with the given aspect ratio, `resolution` pixels
// along the shorter side.
func NewCanvas(aspect AspectRatio, resolution int) (*Canvas, error) {
	c := &Canvas{aspect: aspect, resolution: resolution}
	w, h, err := sizeFor(aspect, resolution)
	if err != nil {
		return nil, err
	}
	c.width, c.height = w, h
	return c, nil
}

// NewCanvasSize creates a canvas of an exact size in pixels.
func NewCanvasSize(width, height float64) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", errBadSize, width, height)
	}
	return &Canvas{
		width:      width,
		height:     height,
		aspect:     AspectRatio{"custom", int(width), int(height)},
		resolution: int(math.Min(width, height)),
	}, nil
}

func sizeFor(aspect AspectRatio, resolution int) (w, h float64, err error) {
	if aspect.Width <= 0 || aspect.Height <= 0 || resolution <= 0 {
		return 0, 0, fmt.Errorf("%w: %v at %d", errBadSize, aspect, resolution)
	}
	short := float64(resolution)
	if aspect.Width >= aspect.Height {
		return math.Round(short * aspect.Float()), short, nil
	}
	return short, math.Round(short / aspect.Float()), nil
}

// Width in pixels
func (c *Canvas) Width() float64 { return c.width }

// Height in pixels
func (c *Canvas) Height() float64 { return c.height }

// AspectRatio returns the current aspect ratio
func (c *Canvas) AspectRatio() AspectRatio { return c.aspect }

// Resolution returns the number of pixels along the shorter side
func (c *Canvas) Resolution() int { return c.resolution }

// DefaultStroke is a stroke width that scales with the canvas.
func (c *Canvas) DefaultStroke() float64 {
	return math.Max(1, math.Min(c.width, c.height)*0.0015)
}

// AddRedrawListener registers l to be called after each resize.
func (c *Canvas) AddRedrawListener(l RedrawListener) {
	c.listeners = append(c.listeners, l)
}

// Resize sets the canvas size in pixels and tells all listeners.
func (c *Canvas) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %gx%g", errBadSize, width, height)
	}
	c.width, c.height = width, height
	c.redraw()
	return nil
}

// UpdateAspectRatio keeps the resolution and changes the shape.
func (c *Canvas) UpdateAspectRatio(aspect AspectRatio) error {
	w, h, err := sizeFor(aspect, c.resolution)
	if err != nil {
		return err
	}
	c.aspect = aspect
	return c.Resize(w, h)
}

// UpdateResolution keeps the aspect ratio and changes the size.
func (c *Canvas) UpdateResolution(resolution int) error {
	w, h, err := sizeFor(c.aspect, resolution)
	if err != nil {
		return err
	}
	c.resolution = resolution
	return c.Resize(w, h)
}

func (c *Canvas) redraw() {
	for _, l := range c.listeners {
		l.CanvasRedraw()
	}
}

// RatioToCanvas converts a position from ratio to canvas space.
func (c *Canvas) RatioToCanvas(v Vec) Vec {
	return Vec{v.X * c.width, v.Y * c.height}
}

// CanvasToRatio converts a position from canvas to ratio space.
func (c *Canvas) CanvasToRatio(v Vec) Vec {
	return Vec{v.X / c.width, v.Y / c.height}
}

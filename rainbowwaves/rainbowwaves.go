// Rainbow waves stacks bands of oscillating dots across the canvas and
// renders a number of animation frames to an image.
// Inspired by brittni and the polar bear's rainbow waves
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"path/filepath"
	"time"

	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/palette"
	"github.com/scottkirkwood/rainbow-gart/screen"
)

const (
	maxImageColors = 12

	swatchWidth  = 512 // pixels
	swatchHeight = 256 // pixels
	swatchRows   = 2
)

var (
	seedFlag     = flag.String("seed", "", "Hex value for the seed to use")
	screenFlag   = flag.String("screen", screen.HorizontalWaves, "Screen to render: horizontal_waves, vertical_waves or wave_testing")
	framesFlag   = flag.Int("frames", 120, "Frames to run before saving")
	extFlag      = flag.String("ext", ".png", "Output format: .png, .svg or .pdf")
	ratioFlag    = flag.String("ratio", gart.Square.Name, "Aspect ratio: square, pinterest_pin, tiktok_photo, social_video or widescreen")
	sizeFlag     = flag.Int("size", 1080, "Pixels along the shorter side")
	palettesFlag = flag.String("palettes", "", "JSON file of palettes to use instead of the builtin ones")
	imageFlag    = flag.String("image", "", "Image to take a palette from")
	hslFlag      = flag.Bool("hsl", false, "Also pick from a hue wheel")
	noiseFlag    = flag.Float64("noise", 0, "If > 0 also pick a noise walk along a palette, moving this far per color")
	outFlag      = flag.String("out", "samples", "Folder to save to")
	socialFlag   = flag.Bool("social", false, "Save one image per social media aspect ratio")
	delayFlag    = flag.Duration("delay", 0, "Wait between social media snapshots")
	swatchFlag   = flag.Bool("swatch", false, "Also save the palette as a grid of swatches")
)

// frameRenderer is a renderer that can be saved.
type frameRenderer interface {
	gart.Renderer
	gart.PNGWriter
}

func main() {
	flag.Parse()
	g, err := gart.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
	}
	rng := g.Rand()

	aspect, ok := gart.AspectRatioByName(*ratioFlag)
	if !ok {
		fmt.Printf("Unknown aspect ratio %q\n", *ratioFlag)
		return
	}
	c, err := gart.NewCanvas(aspect, *sizeFlag)
	if err != nil {
		fmt.Printf("Unable to create the canvas: %v\n", err)
		return
	}

	colors, err := pickColors(rng)
	if err != nil {
		fmt.Printf("Unable to load palettes: %v\n", err)
		return
	}
	fmt.Printf("Using palette %q\n", colors.Name())
	if *swatchFlag {
		saveSwatches(g, colors)
	}

	h, err := screen.NewDefaultHandler(c, colors, rng)
	if err != nil {
		fmt.Printf("Unable to build screens: %v\n", err)
		return
	}
	if err := h.SetCurrent(*screenFlag); err != nil {
		fmt.Printf("Unable to show screen: %v\n", err)
		return
	}

	if *socialFlag {
		st := &stage{canvas: c, handler: h, frames: *framesFlag, out: *outFlag}
		saved, err := screen.SaveSocialMediaSet(context.Background(), st, h.Current().Name(), *delayFlag)
		if err != nil {
			fmt.Printf("Unable to save the social media set: %v\n", err)
		}
		fmt.Printf("Saved %d images\n", len(saved))
		return
	}

	r := newRenderer(c, *extFlag)
	for i := 0; i < *framesFlag; i++ {
		if ctx, ok := r.(*gart.Context); ok {
			// vector output keeps only the last frame, on a solid background
			ctx.Reset()
			h.Current().Activate()
		}
		h.Draw(r)
	}

	prefix := filepath.Join(*outFlag, h.Current().Name()+"-")
	if err := g.SafeWrite(r, prefix, *extFlag); err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
}

func pickColors(rng *rand.Rand) (palette.ColorSelector, error) {
	palettes, err := palette.Load(*palettesFlag, *imageFlag, maxImageColors)
	if err != nil {
		return nil, err
	}
	m, err := palette.NewManager(palettes, rng)
	if err != nil {
		return nil, err
	}
	if *hslFlag {
		m.Add(palette.NewHSLSelector(gart.RandIntRange(rng, 6, 36), rng))
	}
	if *noiseFlag > 0 {
		n, err := palette.NewNoiseSelector(palettes[rng.Intn(len(palettes))], rng.Int63(), *noiseFlag)
		if err != nil {
			return nil, err
		}
		m.Add(n)
	}
	return m.Random(rng)
}

func saveSwatches(g gart.Seed, colors palette.ColorSelector) {
	ps, ok := colors.(*palette.PaletteSelector)
	if !ok {
		fmt.Printf("Palette %q has no swatches\n", colors.Name())
		return
	}
	r := gart.NewRaster(swatchWidth, swatchHeight)
	r.Background(color.Black)
	palette.DrawSwatches(r, ps.Palette(), swatchWidth, swatchHeight, swatchRows)
	prefix := filepath.Join(*outFlag, "swatch-"+ps.Name()+"-")
	if err := g.SafeWrite(r, prefix, ".png"); err != nil {
		fmt.Printf("Unable write swatches: %v\n", err)
	}
}

func newRenderer(c *gart.Canvas, ext string) frameRenderer {
	switch ext {
	case ".svg", ".pdf":
		return gart.NewContext(c.Width(), c.Height())
	}
	return gart.NewRaster(int(c.Width()), int(c.Height()))
}

// stage renders frames headlessly for each social media snapshot.
type stage struct {
	canvas  *gart.Canvas
	handler *screen.Handler
	frames  int
	out     string
}

func (s *stage) UpdateAspectRatio(aspect gart.AspectRatio) error {
	fmt.Printf("Aspect ratio %v\n", aspect)
	return s.canvas.UpdateAspectRatio(aspect)
}

func (s *stage) Snapshot(fname string) error {
	start := time.Now()
	r := gart.NewRaster(int(s.canvas.Width()), int(s.canvas.Height()))
	for i := 0; i < max(s.frames, 1); i++ {
		s.handler.Draw(r)
	}
	fname = filepath.Join(s.out, fname)
	if err := gart.SafeWriteFile(r, fname); err != nil {
		return err
	}
	fmt.Printf("Saved to %s in %v\n", fname, time.Since(start).Round(time.Millisecond))
	return nil
}

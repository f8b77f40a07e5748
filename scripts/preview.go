// This program shows rainbow waves live in a window.
// Keys go to the screen handler (0-5, 8, 9, a, s, d, z); q or escape quits.
// With -palettes it also watches the palette file and recolors on each save.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	gart "github.com/scottkirkwood/rainbow-gart"
	"github.com/scottkirkwood/rainbow-gart/palette"
	waves "github.com/scottkirkwood/rainbow-gart/screen"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var (
	seedFlag     = flag.String("seed", "", "Hex value for the seed to use")
	ratioFlag    = flag.String("ratio", gart.Square.Name, "Starting aspect ratio")
	sizeFlag     = flag.Int("size", 720, "Pixels along the shorter side")
	palettesFlag = flag.String("palettes", "", "JSON palette file to use and watch")
	fpsFlag      = flag.Int("fps", 30, "Frames per second")
	outFlag      = flag.String("out", "samples", "Folder the social media set is saved to")
	delayFlag    = flag.Duration("delay", time.Second, "Wait between social media snapshots")
)

// paletteReload is sent by the watcher when the palette file changes.
type paletteReload struct {
	palettes []palette.Palette
	err      error
}

// stageRequest asks the event loop to reshape the canvas or save a frame.
type stageRequest struct {
	aspect *gart.AspectRatio
	fname  string
	done   chan error
}

// exportDone is sent when a social media set finishes.
type exportDone struct {
	saved []string
	err   error
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
	palettes, err := palette.Load(*palettesFlag, "", 0)
	if err != nil {
		fmt.Printf("Unable to load palettes: %v\n", err)
		return
	}
	colors, err := pickColors(palettes, rng)
	if err != nil {
		fmt.Printf("Unable to pick colors: %v\n", err)
		return
	}
	h, err := waves.NewDefaultHandler(c, colors, rng)
	if err != nil {
		fmt.Printf("Unable to build screens: %v\n", err)
		return
	}
	fmt.Printf("Showing %s with palette %q\n", h.Current().Name(), colors.Name())

	driver.Main(func(s screen.Screen) {
		run(s, c, h, rng)
	})
}

func pickColors(palettes []palette.Palette, rng *rand.Rand) (palette.ColorSelector, error) {
	m, err := palette.NewManager(palettes, rng)
	if err != nil {
		return nil, err
	}
	return m.Random(rng)
}

func run(s screen.Screen, c *gart.Canvas, h *waves.Handler, rng *rand.Rand) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  int(c.Width()),
		Height: int(c.Height()),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer w.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go tick(ctx, w, time.Second/time.Duration(max(*fpsFlag, 1)))
	if *palettesFlag != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fmt.Printf("Failed to create watcher: %v\n", err)
		} else {
			defer watcher.Close()
			// editors often replace the file, so watch its folder
			if err := watcher.Add(filepath.Dir(*palettesFlag)); err != nil {
				fmt.Printf("Problem adding palette watcher: %v\n", err)
			}
			go watchPalettes(watcher, w, *palettesFlag)
			fmt.Printf("Monitoring %q\n", *palettesFlag)
		}
	}

	var meter frameMeter
	h.OnFrameRate = func() {
		fmt.Printf("framerate = %.1f (want %d)\n", meter.Rate(), *fpsFlag)
	}

	saving := false
	h.OnSaveSet = func(cur waves.Screen) {
		if saving {
			fmt.Println("Already saving")
			return
		}
		saving = true
		st := windowStage{ctx: ctx, w: w}
		go func() {
			saved, err := waves.SaveSocialMediaSet(ctx, st, cur.Name(), *delayFlag)
			w.Send(exportDone{saved: saved, err: err})
		}()
	}

	var (
		sz size.Event
		r  *gart.Raster
		b  screen.Buffer
	)
	defer func() {
		if b != nil {
			b.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				break
			}
			if e.Code == key.CodeEscape || e.Code == key.CodeQ {
				return
			}
			if handled, err := h.KeyPressed(e.Rune); err != nil {
				fmt.Printf("Key %q: %v\n", e.Rune, err)
			} else if handled {
				fmt.Printf("Showing %s at %gx%g\n", h.Current().Name(), c.Width(), c.Height())
			}

		case paint.Event:
			if r == nil || r.Width() != c.Width() || r.Height() != c.Height() {
				// first frame or the canvas changed size
				r = gart.NewRaster(int(c.Width()), int(c.Height()))
				if b != nil {
					b.Release()
				}
				b, err = s.NewBuffer(image.Point{int(c.Width()), int(c.Height())})
				if err != nil {
					fmt.Println(err)
					return
				}
				w.Fill(sz.Bounds(), color.Black, draw.Src)
			}
			h.Draw(r)
			meter.Frame(time.Now())
			draw.Draw(b.RGBA(), b.Bounds(), r.Image(), image.Point{}, draw.Src)
			dp := gart.VpCenter(r.Image(), sz.WidthPx, sz.HeightPx)
			w.Upload(dp, b, b.Bounds())
			w.Publish()

		case size.Event:
			sz = e
			w.Fill(sz.Bounds(), color.Black, draw.Src)

		case paletteReload:
			if e.err != nil {
				fmt.Printf("Unable to reload palettes: %v\n", e.err)
				break
			}
			colors, err := pickColors(e.palettes, rng)
			if err == nil {
				err = h.SetColors(colors)
			}
			if err != nil {
				fmt.Printf("Unable to recolor: %v\n", err)
				break
			}
			fmt.Printf("Palette %q\n", colors.Name())

		case stageRequest:
			if e.aspect != nil {
				e.done <- c.UpdateAspectRatio(*e.aspect)
				break
			}
			if r == nil {
				e.done <- errors.New("nothing drawn yet")
				break
			}
			fname := filepath.Join(*outFlag, e.fname)
			err := gart.SafeWriteFile(r, fname)
			if err == nil {
				fmt.Printf("Saved to %s\n", fname)
			}
			e.done <- err

		case exportDone:
			saving = false
			if e.err != nil {
				fmt.Printf("Social media set: %v\n", e.err)
			}
			fmt.Printf("Social media set saved, %d images\n", len(e.saved))

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case error:
			fmt.Printf("Screen error: %v\n", e)
			return

		case mouse.Event:
		}
	}
}

// frameWindow is how many recent frames the frame rate is measured over.
const frameWindow = 60

// frameMeter measures frames per second over the last frameWindow frames.
type frameMeter struct {
	times []time.Time
}

// Frame records a frame drawn at t.
func (m *frameMeter) Frame(t time.Time) {
	if len(m.times) == frameWindow {
		m.times = m.times[1:]
	}
	m.times = append(m.times, t)
}

// Rate is the measured frames per second, 0 until two frames are seen.
func (m *frameMeter) Rate() float64 {
	if len(m.times) < 2 {
		return 0
	}
	elapsed := m.times[len(m.times)-1].Sub(m.times[0])
	if elapsed <= 0 {
		return 0
	}
	return float64(len(m.times)-1) / elapsed.Seconds()
}

// tick asks for a new frame at a steady rate.
func tick(ctx context.Context, w screen.Window, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.Send(paint.Event{External: true})
		}
	}
}

// windowStage runs each step of a social media export on the event loop.
type windowStage struct {
	ctx context.Context
	w   screen.Window
}

func (st windowStage) UpdateAspectRatio(aspect gart.AspectRatio) error {
	return st.send(stageRequest{aspect: &aspect})
}

func (st windowStage) Snapshot(fname string) error {
	return st.send(stageRequest{fname: fname})
}

func (st windowStage) send(req stageRequest) error {
	req.done = make(chan error, 1)
	st.w.Send(req)
	select {
	case err := <-req.done:
		return err
	case <-st.ctx.Done():
		return st.ctx.Err()
	}
}

func watchPalettes(watcher *fsnotify.Watcher, w screen.Window, fname string) {
	want, _ := filepath.Abs(fname)
	var lastCrc uint64
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if got, _ := filepath.Abs(event.Name); got != want {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			crc := fileChecksum(fname)
			if crc == 0 || crc == lastCrc {
				// unreadable, or saved without changes
				continue
			}
			lastCrc = crc
			palettes, err := palette.LoadFile(fname)
			w.Send(paletteReload{palettes: palettes, err: err})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println("ERROR", err)
		}
	}
}

func fileChecksum(fname string) uint64 {
	h := crc64.New(crc64.MakeTable(crc64.ECMA))
	bytes, err := os.ReadFile(fname)
	if err != nil {
		fmt.Printf("Readfile error %q: %v\n", fname, err)
		return 0
	}
	h.Write(bytes)
	return h.Sum64()
}

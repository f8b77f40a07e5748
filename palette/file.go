package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	gart "github.com/scottkirkwood/rainbow-gart"
)

// ErrNoPalettes is returned when a palette file or image yields nothing.
var ErrNoPalettes = errors.New("no palettes found")

type paletteJSON struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// LoadFile reads palettes from a JSON file shaped like
//
//	[{"name": "ocean", "colors": ["#03045e", "#0077b6"]}]
func LoadFile(fname string) ([]Palette, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes the JSON form read by LoadFile.
func Parse(data []byte) ([]Palette, error) {
	var raw []paletteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing palettes: %w", err)
	}
	palettes := make([]Palette, 0, len(raw))
	for i, r := range raw {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("palette-%d", i)
		}
		p, err := FromHex(name, r.Colors...)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	if len(palettes) == 0 {
		return nil, ErrNoPalettes
	}
	return palettes, nil
}

// minImageDistance is how far apart in Lab space two colors taken from an
// image must be.
const minImageDistance = 0.1

// FromImage builds a palette of up to maxColors of the most common colors in
// an image file, skipping colors too close to one already taken.
func FromImage(fname string, maxColors int) (Palette, error) {
	imgs, errs := gart.DecodeImages([]string{fname})
	if len(errs) > 0 {
		return Palette{}, errs[0]
	}
	if len(imgs) == 0 {
		return Palette{}, ErrNoPalettes
	}
	return fromImage(imgs[0].Name, imgs[0].Image, maxColors)
}

func fromImage(name string, m image.Image, maxColors int) (Palette, error) {
	bounds := m.Bounds()
	colorMap := make(map[color.RGBA]int, 512)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			col := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			if col.A == 0 {
				continue
			}
			colorMap[col]++
		}
	}
	type colCount struct {
		col   color.RGBA
		count int
	}
	toSort := make([]colCount, 0, len(colorMap))
	for key, val := range colorMap {
		toSort = append(toSort, colCount{key, val})
	}
	sort.Slice(toSort, func(i, j int) bool {
		if toSort[i].count != toSort[j].count {
			return toSort[i].count > toSort[j].count
		}
		a, b := toSort[i].col, toSort[j].col
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})

	pal := Palette{Name: name}
	var taken []colorful.Color
	for _, cc := range toSort {
		if len(pal.Colors) >= maxColors {
			break
		}
		c, _ := colorful.MakeColor(cc.col)
		if tooClose(c, taken) {
			continue
		}
		taken = append(taken, c)
		pal.Colors = append(pal.Colors, toRGBA(c, 255))
	}
	if len(pal.Colors) == 0 {
		return Palette{}, ErrNoPalettes
	}
	return pal, nil
}

func tooClose(c colorful.Color, taken []colorful.Color) bool {
	for _, t := range taken {
		if c.DistanceLab(t) < minImageDistance {
			return true
		}
	}
	return false
}

// Load returns the palettes read from paletteFile, plus one taken from
// imageFile. Either may be empty; with both empty it returns Builtin.
func Load(paletteFile, imageFile string, maxImageColors int) ([]Palette, error) {
	var palettes []Palette
	if paletteFile != "" {
		p, err := LoadFile(paletteFile)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p...)
	}
	if imageFile != "" {
		p, err := FromImage(imageFile, maxImageColors)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	if len(palettes) == 0 {
		return Builtin, nil
	}
	return palettes, nil
}

// Package palette provides the colors waves are painted with.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a named list of colors.
type Palette struct {
	Name   string
	Colors []color.Color
}

// FromHex builds a palette from "#rrggbb" strings.
func FromHex(name string, hexes ...string) (Palette, error) {
	p := Palette{Name: name, Colors: make([]color.Color, 0, len(hexes))}
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %q: %w", name, err)
		}
		p.Colors = append(p.Colors, toRGBA(c, 255))
	}
	if len(p.Colors) == 0 {
		return Palette{}, fmt.Errorf("palette %q has no colors", name)
	}
	return p, nil
}

func mustHex(name string, hexes ...string) Palette {
	p, err := FromHex(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func toRGBA(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	// RGBA is alpha premultiplied
	return color.RGBA{
		R: uint8(uint16(r) * uint16(alpha) / 255),
		G: uint8(uint16(g) * uint16(alpha) / 255),
		B: uint8(uint16(b) * uint16(alpha) / 255),
		A: alpha,
	}
}

// WithAlpha returns col with its alpha replaced.
func WithAlpha(col color.Color, alpha uint8) color.Color {
	c, ok := colorful.MakeColor(col)
	if !ok {
		// fully transparent colors carry no hue
		return color.RGBA{}
	}
	return toRGBA(c, alpha)
}

// Builtin palettes, rainbow first.
var Builtin = []Palette{
	mustHex("rainbow", "#e81416", "#ffa500", "#faeb36", "#79c314", "#487de7", "#4b369d", "#70369d"),
	mustHex("ocean", "#03045e", "#0077b6", "#00b4d8", "#90e0ef", "#caf0f8"),
	mustHex("sunset", "#f8b195", "#f67280", "#c06c84", "#6c5b7b", "#355c7d"),
	mustHex("forest", "#2d6a4f", "#40916c", "#52b788", "#74c69d", "#b7e4c7"),
	mustHex("neon", "#ff00c1", "#9600ff", "#4900ff", "#00b8ff", "#00fff9"),
	mustHex("ember", "#03071e", "#6a040f", "#d00000", "#e85d04", "#faa307"),
}

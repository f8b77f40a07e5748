package palette

import (
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hexes   []string
		want    []color.RGBA
		wantErr bool
	}{
		{
			hexes: []string{"#ff0000", "#00ff00"},
			want:  []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}},
		},
		{hexes: []string{"#zz0000"}, wantErr: true},
		{hexes: nil, wantErr: true},
	}
	for _, test := range tests {
		got, err := FromHex("test", test.hexes...)
		if test.wantErr {
			if err == nil {
				t.Errorf("FromHex(%v) got nil error", test.hexes)
			}
			continue
		}
		if err != nil {
			t.Fatalf("FromHex(%v) = %v", test.hexes, err)
		}
		if len(got.Colors) != len(test.want) {
			t.Fatalf("FromHex(%v) got %d colors, want %d", test.hexes, len(got.Colors), len(test.want))
		}
		for i, c := range got.Colors {
			if c != test.want[i] {
				t.Errorf("FromHex(%v)[%d] = %v, want %v", test.hexes, i, c, test.want[i])
			}
		}
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.RGBA{255, 255, 255, 255}, 51)
	want := color.RGBA{51, 51, 51, 51}
	if got != want {
		t.Errorf("WithAlpha() = %v, want %v", got, want)
	}
}

func TestBuiltin(t *testing.T) {
	if len(Builtin) == 0 {
		t.Fatal("no builtin palettes")
	}
	for _, p := range Builtin {
		if len(p.Colors) == 0 {
			t.Errorf("palette %q is empty", p.Name)
		}
	}
}

func TestPaletteSelectorOrders(t *testing.T) {
	p, err := FromHex("abc", "#000001", "#000002", "#000003")
	if err != nil {
		t.Fatal(err)
	}
	blue := func(c color.Color) uint8 { return c.(color.RGBA).B }

	tests := []struct {
		order Order
		want  []uint8
	}{
		{Cycle, []uint8{1, 2, 3, 1, 2, 3, 1}},
		{Mirror, []uint8{1, 2, 3, 2, 1, 2, 3}},
	}
	for _, test := range tests {
		s, err := NewPaletteSelector(p, test.order, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i, want := range test.want {
			if got := blue(s.Color()); got != want {
				t.Errorf("order %d color %d = %d, want %d", test.order, i, got, want)
			}
		}
	}
}

func TestPaletteSelectorRandom(t *testing.T) {
	p := Builtin[0]
	if _, err := NewPaletteSelector(p, Random, nil); err == nil {
		t.Error("random order without a random source should fail")
	}
	if _, err := NewPaletteSelector(Palette{Name: "empty"}, Cycle, nil); err == nil {
		t.Error("empty palette should fail")
	}
	s, err := NewPaletteSelector(p, Random, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != p.Name {
		t.Errorf("Name() = %q, want %q", s.Name(), p.Name)
	}
	inPalette := func(c color.Color) bool {
		for _, pc := range p.Colors {
			if pc == c {
				return true
			}
		}
		return false
	}
	for i := 0; i < 100; i++ {
		if c := s.Color(); !inPalette(c) {
			t.Fatalf("Color() = %v, not in palette", c)
		}
	}
}

func TestHSLSelector(t *testing.T) {
	h := &HSLSelector{Start: 0, Steps: 4, Saturation: 1, Lightness: 0.5}
	want := []color.RGBA{
		{255, 0, 0, 255},
		{128, 255, 0, 255},
		{0, 255, 255, 255},
		{127, 0, 255, 255},
		{255, 0, 0, 255},
	}
	for i, w := range want {
		got := h.Color().(color.RGBA)
		if diff(got.R, w.R) > 1 || diff(got.G, w.G) > 1 || diff(got.B, w.B) > 1 || got.A != w.A {
			t.Errorf("color %d = %v, want %v", i, got, w)
		}
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestManager(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m := &Manager{}
	if _, err := m.Random(rng); err == nil {
		t.Error("empty manager should fail")
	}
	m, err := NewManager(Builtin, rng)
	if err != nil {
		t.Fatal(err)
	}
	m.Add(FixedSelector{C: color.White})
	if got, want := m.Len(), len(Builtin)+1; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	s, err := m.Random(rng)
	if err != nil || s == nil {
		t.Fatalf("Random() = %v, %v", s, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		wantNames []string
		wantErr   bool
	}{
		{
			in:        `[{"name": "a", "colors": ["#ffffff"]}, {"colors": ["#000000", "#111111"]}]`,
			wantNames: []string{"a", "palette-1"},
		},
		{in: `[]`, wantErr: true},
		{in: `{`, wantErr: true},
		{in: `[{"name": "bad", "colors": ["nope"]}]`, wantErr: true},
	}
	for _, test := range tests {
		got, err := Parse([]byte(test.in))
		if test.wantErr {
			if err == nil {
				t.Errorf("Parse(%s) got nil error", test.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%s) = %v", test.in, err)
		}
		if len(got) != len(test.wantNames) {
			t.Fatalf("Parse(%s) got %d palettes, want %d", test.in, len(got), len(test.wantNames))
		}
		for i, p := range got {
			if p.Name != test.wantNames[i] {
				t.Errorf("Parse(%s)[%d].Name = %q, want %q", test.in, i, p.Name, test.wantNames[i])
			}
		}
	}
}

func TestLoadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "palettes.json")
	if err := os.WriteFile(fname, []byte(`[{"name": "mono", "colors": ["#808080"]}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "mono" {
		t.Errorf("LoadFile() = %v", got)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{255, 0, 0, 255}
	nearRed := color.RGBA{254, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			switch {
			case y < 6:
				img.Set(x, y, red)
			case y < 7:
				img.Set(x, y, nearRed)
			case y < 9:
				img.Set(x, y, blue)
			}
			// last row stays transparent
		}
	}
	got, err := fromImage("test", img, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []color.Color{red, blue}
	if len(got.Colors) != len(want) {
		t.Fatalf("fromImage() got %v, want %v", got.Colors, want)
	}
	for i := range want {
		if got.Colors[i] != want[i] {
			t.Errorf("fromImage()[%d] = %v, want %v", i, got.Colors[i], want[i])
		}
	}

	one, err := fromImage("test", img, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(one.Colors) != 1 || one.Colors[0] != red {
		t.Errorf("fromImage(max 1) = %v", one.Colors)
	}

	if _, err := fromImage("empty", image.NewRGBA(image.Rect(0, 0, 2, 2)), 3); err == nil {
		t.Error("transparent image should fail")
	}
}

func TestLoad(t *testing.T) {
	got, err := Load("", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(Builtin) {
		t.Errorf("Load() with no files got %d palettes, want the %d builtin ones", len(got), len(Builtin))
	}

	fname := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(fname, []byte(`[{"name": "a", "colors": ["#010203"]}, {"name": "b", "colors": ["#040506"]}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = Load(fname, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Errorf("Load(%s) = %v", fname, got)
	}
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.png"), 10); err == nil {
		t.Error("Load() with a missing image got nil error")
	}
}

package gart

import (
	"image"
	"math"
	"math/rand"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		cur, low, high, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{11, 10, 0, 10},
	}
	for _, test := range tests {
		if got := Clamp(test.cur, test.low, test.high); got != test.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", test.cur, test.low, test.high, got, test.want)
		}
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		value, start1, stop1, start2, stop2, want float64
	}{
		{0.5, 0, 1, 0, 100, 50},
		{2, 1, 3, 10, 20, 15},
		{7, 3, 3, 10, 20, 10},
	}
	for _, test := range tests {
		if got := Map(test.value, test.start1, test.stop1, test.start2, test.stop2); got != test.want {
			t.Errorf("Map(%v) = %g, want %g", test, got, test.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		theta, want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, test := range tests {
		if got := NormalizeAngle(test.theta); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", test.theta, got, test.want)
		}
	}
}

func TestDegrees(t *testing.T) {
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > 1e-9 {
		t.Errorf("Degrees(π/2) = %g, want 90", got)
	}
}

func TestRandIntRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		if got := RandIntRange(rng, 7, 3); got < 3 || got > 7 {
			t.Fatalf("RandIntRange(7, 3) = %d", got)
		}
	}
}

func TestVpCenter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	tests := []struct {
		w, h int
		want image.Point
	}{
		{100, 50, image.Point{0, 0}},
		{200, 150, image.Point{50, 50}},
		{80, 150, image.Point{0, 50}},
	}
	for _, test := range tests {
		if got := VpCenter(img, test.w, test.h); got != test.want {
			t.Errorf("VpCenter(%d, %d) = %v, want %v", test.w, test.h, got, test.want)
		}
	}
}

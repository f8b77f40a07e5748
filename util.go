package gart

import (
	"math"
	"math/rand"
	"strings"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Basename retrieves the basename of a file path.
func Basename(fName string) string {
	if lslash := strings.LastIndex(fName, "/"); lslash != -1 {
		fName = fName[lslash+1:]
	}
	return fName
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// Map re-maps value from the range [start1, stop1] to [start2, stop2].
// A zero width source range maps everything to start2.
func Map(value, start1, stop1, start2, stop2 float64) float64 {
	if stop1 == start1 {
		return start2
	}
	return start2 + (value-start1)*(stop2-start2)/(stop1-start1)
}

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// NormalizeAngle wraps theta into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	return theta
}

// RandRange returns a random float in [low, high).
func RandRange(rng *rand.Rand, low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	return rng.Float64()*(high-low) + low
}

// RandIntRange returns a random int in [low, high].
func RandIntRange(rng *rand.Rand, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + rng.Intn(high-low+1)
}

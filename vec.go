package gart

import "math"

// Vec is a 2D vector or position
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Lerp interpolates from v to o where t varies from 0 to 1
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Dist is the euclidean distance between v and o
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Heading is the angle of v in radians, measured from the positive x axis.
func (v Vec) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

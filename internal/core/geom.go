// Package core provides fundamental types and utilities for layout generation.
// It contains no external dependencies so generation stays pure and testable.
package core

import "fmt"

// Vec3 is a point or extent in world space. Y is the vertical axis.
type Vec3 struct {
	X, Y, Z float64
}

// V creates a new vector.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Half returns v scaled by 0.5.
func (v Vec3) Half() Vec3 {
	return v.Scale(0.5)
}

// Positive reports whether every component is strictly greater than zero.
func (v Vec3) Positive() bool {
	return v.X > 0 && v.Y > 0 && v.Z > 0
}

// String formats the vector with two decimals per component.
func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// Box is an axis-aligned box described by its center and full extents.
type Box struct {
	Center Vec3
	Size   Vec3
}

// NewBox creates a box from center and size.
func NewBox(center, size Vec3) Box {
	return Box{Center: center, Size: size}
}

// Min returns the lowest corner.
func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Size.Half())
}

// Max returns the highest corner.
func (b Box) Max() Vec3 {
	return b.Center.Add(b.Size.Half())
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

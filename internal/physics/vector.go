// Package physics provides a small 2D rigid-body world: vectors, bodies,
// force integration, collision-start events, and an anchor constraint.
package physics

import "math"

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude.
// Use this when comparing distances to avoid the sqrt cost.
func (v Vec) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction,
// or the zero vector if the input has zero length.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates the vector by angle radians (counter-clockwise in a
// y-up frame; in the game's y-down screen frame this reads clockwise).
func (v Vec) Rotate(angle float64) Vec {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Distance returns the distance between two points.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Length()
}

// FromAngle creates a vector from an angle and magnitude.
func FromAngle(angle, magnitude float64) Vec {
	return Vec{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

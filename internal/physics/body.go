package physics

import "math"

// Body is a rectangular rigid body. Static bodies never move and only
// participate in collisions as targets.
type Body struct {
	Label string // Owner-assigned identifier ("rocket", "tower", ...)

	Pos    Vec     // Center position
	Vel    Vec     // Linear velocity
	Angle  float64 // Rotation in radians, unbounded (callers wrap as needed)
	AngVel float64 // Angular velocity in radians per second

	HalfW, HalfH float64 // Half extents of the collision box
	Mass         float64 // Must be > 0 for dynamic bodies
	Inertia      float64 // Rotational inertia scale for anchored swinging
	Static       bool

	id    int // Assigned by the world, used for stable pair keys
	force Vec // Accumulated force, cleared every step
}

// ApplyForce accumulates a force to be applied during the next Step.
// No-op for static bodies.
func (b *Body) ApplyForce(f Vec) {
	if b.Static {
		return
	}
	b.force = b.force.Add(f)
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Length()
}

// AABB returns the axis-aligned bounding box of the rotated body.
func (b *Body) AABB() (min, max Vec) {
	cos := math.Abs(math.Cos(b.Angle))
	sin := math.Abs(math.Sin(b.Angle))
	rx := b.HalfW*cos + b.HalfH*sin
	ry := b.HalfW*sin + b.HalfH*cos
	min = Vec{X: b.Pos.X - rx, Y: b.Pos.Y - ry}
	max = Vec{X: b.Pos.X + rx, Y: b.Pos.Y + ry}
	return min, max
}

// overlaps reports whether the bounding boxes of two bodies intersect.
func (b *Body) overlaps(o *Body) bool {
	aMin, aMax := b.AABB()
	bMin, bMax := o.AABB()
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y
}

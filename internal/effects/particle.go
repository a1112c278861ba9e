// Package effects provides short-lived visual particles: exhaust flame
// while the booster burns, debris when it crashes.
package effects

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/tomz197/boostercatch/internal/draw"
)

// particlePool reuses Particle objects to avoid per-frame allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a single short-lived pixel effect on the canvas.
type Particle struct {
	X, Y        float64 // Position in logical canvas units
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime, for the fade cutoff
	Drag        float64 // Velocity retention per frame at 60fps
	Gravity     float64 // Downward acceleration (debris arcs, flame doesn't)
	Color       draw.Color
	Fade        bool // Skip drawing below 25% lifetime
}

// System owns all live particles for one game session.
type System struct {
	particles []*Particle
}

// NewSystem creates an empty particle system.
func NewSystem() *System {
	return &System{}
}

// spawn takes a particle from the pool and initializes it.
func (s *System) spawn(x, y, vx, vy, lifetime, gravity float64, c draw.Color, drag float64) {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = drag
	p.Gravity = gravity
	p.Color = c
	p.Fade = true
	s.particles = append(s.particles, p)
}

// flameColors cycles the exhaust between yellow and orange with the
// occasional red flicker.
var flameColors = []draw.Color{draw.ColorYellow, draw.ColorOrange, draw.ColorOrange, draw.ColorRed}

// SpawnFlame emits exhaust particles from the booster's engine nozzle,
// blowing opposite the thrust direction. Intensity 0..1 follows the
// throttle.
func (s *System) SpawnFlame(x, y, angle, intensity float64) {
	if intensity <= 0 {
		return
	}
	count := 1 + int(math.Round(intensity*2))
	for i := 0; i < count; i++ {
		// Down along the rocket's own axis, with spread
		exhaust := angle + math.Pi/2 + (rand.Float64()-0.5)*0.6
		speed := (12 + rand.Float64()*8) * (0.4 + 0.6*intensity)
		life := 0.1 + rand.Float64()*0.2

		s.spawn(x, y,
			math.Cos(exhaust)*speed,
			math.Sin(exhaust)*speed,
			life, 0,
			flameColors[rand.IntN(len(flameColors))],
			0.85)
	}
}

// SpawnExplosion bursts debris in all directions from a crash site.
func (s *System) SpawnExplosion(x, y float64, count int, speed float64) {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := 0.4 + rand.Float64()*0.8

		c := draw.ColorGray
		if i%3 == 0 {
			c = draw.ColorOrange
		}
		s.spawn(x, y,
			math.Cos(angle)*spd,
			math.Sin(angle)*spd,
			life, 30,
			c, 0.92)
	}
}

// Update advances all particles and releases expired ones to the pool.
func (s *System) Update(dt float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			particlePool.Put(p)
			continue
		}
		dragFactor := math.Pow(p.Drag, dt*60)
		p.VX *= dragFactor
		p.VY *= dragFactor
		p.VY += p.Gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		kept = append(kept, p)
	}
	s.particles = kept
}

// Draw renders all live particles as single pixels.
func (s *System) Draw(canvas *draw.Canvas) {
	for _, p := range s.particles {
		if p.Fade && p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
			continue
		}
		canvas.SetFloat(p.X, p.Y, p.Color)
	}
}

// Clear drops all particles, returning them to the pool.
func (s *System) Clear() {
	for _, p := range s.particles {
		particlePool.Put(p)
	}
	s.particles = s.particles[:0]
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

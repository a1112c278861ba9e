package game

import (
	"math"

	"github.com/tomz197/boostercatch/internal/physics"
)

// Controls is the held-key state the flight controller consumes each tick.
type Controls struct {
	Thrust bool
	Left   bool
	Right  bool
}

// UpdateFlight runs one flight-controller tick: throttle smoothing,
// thrust force, fuel drain, rotation impulses, and angular damping.
// No-op once the round has ended or the booster hangs on the arm.
func (s *Session) UpdateFlight(c Controls, dt float64) {
	if !s.Round.Active || s.Rocket == nil || s.Rocket.Body == nil {
		return
	}
	r := s.Rocket
	body := r.Body
	if s.World.Anchored(body) {
		return
	}

	// Throttle ramps while thrusting, decays 1.5x faster when released
	// so cutting thrust feels immediate.
	if c.Thrust && r.Fuel > 0 {
		r.Throttle = math.Min(100, r.Throttle+ThrottleRamp*dt)
	} else {
		r.Throttle = math.Max(0, r.Throttle-ThrottleDecay*dt)
	}

	if r.Throttle > 0 && r.Fuel > 0 {
		force := ThrustForce * (r.Throttle / 100)
		// Falling fast on low throttle still needs to arrest descent.
		if body.Vel.Y > DescentBoostVY {
			force *= DescentBoost
		}
		up := physics.Vec{X: 0, Y: -1}.Rotate(body.Angle)
		body.ApplyForce(up.Scale(force))

		// Drain floors at 20% of the max rate: any live throttle burns.
		r.Fuel = math.Max(0, r.Fuel-FuelRate*dt*(0.2+0.8*r.Throttle/100))
	}

	// Rotation is a direct angular velocity change, not a torque, at a
	// fixed fuel cost per tick while a rotate key is held.
	if (c.Left || c.Right) && r.Fuel > 0 {
		if c.Left {
			body.AngVel -= RotationRate * dt
		}
		if c.Right {
			body.AngVel += RotationRate * dt
		}
		r.Fuel = math.Max(0, r.Fuel-RotationFuelRate*dt)
	}

	// Aerodynamic stabilization damps spin every tick, input or not.
	body.AngVel *= math.Pow(AngularDrag, dt)
}

// ClampSpeed rescales the booster's velocity down to MaxSpeed if the
// physics step pushed it past the cap. Direction is preserved exactly.
func (s *Session) ClampSpeed() {
	if s.Rocket == nil || s.Rocket.Body == nil {
		return
	}
	body := s.Rocket.Body
	if body.Vel.Length() > MaxSpeed {
		body.Vel = body.Vel.Normalize().Scale(MaxSpeed)
	}
}

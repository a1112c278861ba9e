package game

import (
	"math"
	"testing"

	"github.com/tomz197/boostercatch/internal/physics"
)

const tickDt = 1.0 / 60.0

func newTestSession() *Session {
	return NewSession(7)
}

func TestThrottleRampsWhileThrusting(t *testing.T) {
	s := newTestSession()
	s.UpdateFlight(Controls{Thrust: true}, tickDt)

	want := ThrottleRamp * tickDt
	if math.Abs(s.Rocket.Throttle-want) > 1e-9 {
		t.Errorf("throttle after one tick = %v, want %v", s.Rocket.Throttle, want)
	}

	for i := 0; i < 600; i++ {
		s.UpdateFlight(Controls{Thrust: true}, tickDt)
	}
	if s.Rocket.Throttle != 100 {
		t.Errorf("throttle not capped at 100: %v", s.Rocket.Throttle)
	}
}

func TestThrottleDecaysFasterThanItRamps(t *testing.T) {
	s := newTestSession()
	s.Rocket.Throttle = 100

	s.UpdateFlight(Controls{}, tickDt)
	want := 100 - ThrottleDecay*tickDt
	if math.Abs(s.Rocket.Throttle-want) > 1e-9 {
		t.Errorf("throttle after release = %v, want %v", s.Rocket.Throttle, want)
	}
	if ThrottleDecay != ThrottleRamp*1.5 {
		t.Errorf("decay/ramp ratio = %v, want 1.5", ThrottleDecay/ThrottleRamp)
	}

	for i := 0; i < 600; i++ {
		s.UpdateFlight(Controls{}, tickDt)
	}
	if s.Rocket.Throttle != 0 {
		t.Errorf("throttle not floored at 0: %v", s.Rocket.Throttle)
	}
}

func TestThrustDrainsFuelWithFloor(t *testing.T) {
	s := newTestSession()
	s.Rocket.Throttle = 1 // Barely live throttle still burns at >= 20% rate

	before := s.Rocket.Fuel
	s.UpdateFlight(Controls{Thrust: true}, tickDt)
	drained := before - s.Rocket.Fuel

	floor := 0.2 * FuelRate * tickDt
	if drained < floor-1e-9 {
		t.Errorf("drain %v below the 20%% floor %v", drained, floor)
	}
	if drained > FuelRate*tickDt+1e-9 {
		t.Errorf("drain %v above the max rate", drained)
	}
}

func TestFuelMonotonicNonIncreasing(t *testing.T) {
	s := newTestSession()
	prev := s.Rocket.Fuel
	for i := 0; i < 300; i++ {
		s.UpdateFlight(Controls{Thrust: true, Left: i%2 == 0}, tickDt)
		if s.Rocket.Fuel > prev {
			t.Fatalf("fuel rose from %v to %v", prev, s.Rocket.Fuel)
		}
		prev = s.Rocket.Fuel
	}
	if s.Rocket.Fuel < 0 {
		t.Errorf("fuel went negative: %v", s.Rocket.Fuel)
	}
}

func TestNoThrustWithoutFuel(t *testing.T) {
	s := newTestSession()
	s.Rocket.Fuel = 0
	s.Rocket.Body.Vel = physics.Vec{}

	s.UpdateFlight(Controls{Thrust: true}, tickDt)
	s.World.Step(tickDt)

	// Only gravity acts: the booster keeps falling.
	if s.Rocket.Body.Vel.Y < Gravity*tickDt-1e-9 {
		t.Errorf("vy = %v, want free fall %v", s.Rocket.Body.Vel.Y, Gravity*tickDt)
	}
	if s.Rocket.Throttle != 0 {
		t.Errorf("throttle ramped with no fuel: %v", s.Rocket.Throttle)
	}
}

func TestRotationChargesFixedFuelCost(t *testing.T) {
	s := newTestSession()
	s.Rocket.Throttle = 0
	before := s.Rocket.Fuel

	s.UpdateFlight(Controls{Left: true}, tickDt)

	if s.Rocket.Body.AngVel >= 0 {
		t.Errorf("left rotation did not spin counter-clockwise: %v", s.Rocket.Body.AngVel)
	}
	want := RotationFuelRate * tickDt
	if math.Abs((before-s.Rocket.Fuel)-want) > 1e-9 {
		t.Errorf("rotation fuel cost = %v, want %v", before-s.Rocket.Fuel, want)
	}
}

func TestAngularDampingAlwaysApplies(t *testing.T) {
	s := newTestSession()
	s.Rocket.Body.AngVel = 1.0

	s.UpdateFlight(Controls{}, tickDt)

	want := math.Pow(AngularDrag, tickDt)
	if math.Abs(s.Rocket.Body.AngVel-want) > 1e-9 {
		t.Errorf("angvel after damping = %v, want %v", s.Rocket.Body.AngVel, want)
	}
}

func TestClampSpeedPreservesDirection(t *testing.T) {
	s := newTestSession()
	b := s.Rocket.Body
	b.Vel = physics.Vec{X: 30, Y: 40} // Magnitude 50

	s.ClampSpeed()

	if math.Abs(b.Vel.Length()-MaxSpeed) > 1e-9 {
		t.Errorf("clamped speed = %v, want exactly %v", b.Vel.Length(), float64(MaxSpeed))
	}
	// Parallel check: cross product with the original direction is zero.
	cross := 30*b.Vel.Y - 40*b.Vel.X
	if math.Abs(cross) > 1e-6 {
		t.Errorf("clamped velocity not parallel to original, cross = %v", cross)
	}
}

func TestClampSpeedLeavesSlowRocketAlone(t *testing.T) {
	s := newTestSession()
	b := s.Rocket.Body
	b.Vel = physics.Vec{X: 1, Y: 2}

	s.ClampSpeed()

	if b.Vel != (physics.Vec{X: 1, Y: 2}) {
		t.Errorf("slow velocity changed: %+v", b.Vel)
	}
}

func TestFlightIsInertAfterRoundEnds(t *testing.T) {
	s := newTestSession()
	s.endRound(MsgMissedTarget, false)
	fuel := s.Rocket.Fuel

	s.UpdateFlight(Controls{Thrust: true, Left: true}, tickDt)

	if s.Rocket.Fuel != fuel || s.Rocket.Throttle != 0 {
		t.Error("flight controller ran on an ended round")
	}
}

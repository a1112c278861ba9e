package game

import (
	"math"

	"github.com/tomz197/boostercatch/internal/physics"
)

// AlignStatus is the verdict of the alignment evaluator, with the raw
// numbers behind each check for the verbose HUD readout.
type AlignStatus struct {
	Upright bool
	Aligned bool
	Slow    bool
	Ready   bool // Upright && Aligned && Slow

	Tilt  float64 // Radians from vertical, wrapped to (-pi, pi]
	DX    float64 // Nearest catch point offset from arm center, horizontal
	DY    float64 // Same, vertical
	Speed float64
}

// wrapAngle reduces an unbounded angle to (-pi, pi] so that both
// representations of "near zero" pass the upright check.
func wrapAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Evaluate runs the alignment check for a rocket pose against the arm.
// Pure and deterministic: the continuous HUD readout and the landing
// attempt call it identically and must agree.
func Evaluate(pos physics.Vec, angle float64, vel physics.Vec, arm *Arm) AlignStatus {
	st := AlignStatus{
		Tilt:  wrapAngle(angle),
		Speed: vel.Length(),
	}
	st.Upright = math.Abs(st.Tilt) <= UprightTolerance
	st.Slow = st.Speed < LandingSpeedLimit

	// Of the two projected catch points, only the one nearer the arm
	// center is judged.
	left, right := ProjectCatchPoints(pos, angle)
	point := left
	if right.Sub(arm.Center).LengthSquared() < left.Sub(arm.Center).LengthSquared() {
		point = right
	}
	st.DX = point.X - arm.Center.X
	st.DY = point.Y - arm.Center.Y
	st.Aligned = math.Abs(st.DX) < arm.Width/2 && math.Abs(st.DY) < VerticalTolerance

	st.Ready = st.Upright && st.Aligned && st.Slow
	return st
}

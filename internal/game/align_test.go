package game

import (
	"math"
	"testing"

	"github.com/tomz197/boostercatch/internal/physics"
)

func testArm() *Arm {
	return &Arm{Center: physics.Vec{X: 70, Y: ArmY}, Width: BaseArmWidth}
}

// readyPose returns a pose whose left catch point sits exactly on the
// arm center.
func readyPose(arm *Arm) physics.Vec {
	return physics.Vec{X: arm.Center.X + CatchPointOffsetX, Y: ArmY - CatchPointOffsetY}
}

func TestEvaluateReadyOnExactAlignment(t *testing.T) {
	arm := testArm()
	st := Evaluate(readyPose(arm), 0, physics.Vec{}, arm)

	if !st.Upright || !st.Aligned || !st.Slow || !st.Ready {
		t.Errorf("exact alignment not ready: %+v", st)
	}
	if st.DX != 0 || st.DY != 0 {
		t.Errorf("offsets = (%v, %v), want (0, 0)", st.DX, st.DY)
	}
}

func TestEvaluateUpsideDownNeverUpright(t *testing.T) {
	arm := testArm()
	st := Evaluate(readyPose(arm), math.Pi, physics.Vec{}, arm)

	if st.Upright {
		t.Error("upright at angle pi")
	}
	if st.Ready {
		t.Error("ready while upside down")
	}
}

func TestEvaluateUprightUnderModuloWrap(t *testing.T) {
	arm := testArm()
	pose := readyPose(arm)

	for _, angle := range []float64{0.1, -0.1, 2*math.Pi + 0.1, -2*math.Pi + 0.1, 4 * math.Pi} {
		st := Evaluate(pose, angle, physics.Vec{}, arm)
		if !st.Upright {
			t.Errorf("angle %v: upright = false, want true", angle)
		}
	}
	for _, angle := range []float64{0.5, math.Pi, 2*math.Pi + 1, -math.Pi / 2} {
		st := Evaluate(pose, angle, physics.Vec{}, arm)
		if st.Upright {
			t.Errorf("angle %v: upright = true, want false", angle)
		}
	}
}

func TestEvaluateUprightBoundaryIsInclusive(t *testing.T) {
	arm := testArm()
	pose := readyPose(arm)

	if st := Evaluate(pose, UprightTolerance, physics.Vec{}, arm); !st.Upright {
		t.Errorf("tilt exactly %v not upright", float64(UprightTolerance))
	}
	if st := Evaluate(pose, -UprightTolerance, physics.Vec{}, arm); !st.Upright {
		t.Errorf("tilt exactly -%v not upright", float64(UprightTolerance))
	}
	if st := Evaluate(pose, UprightTolerance+0.01, physics.Vec{}, arm); st.Upright {
		t.Error("tilt past the tolerance counted as upright")
	}
}

func TestEvaluateSpeedBoundaryIsStrict(t *testing.T) {
	arm := testArm()
	pose := readyPose(arm)

	if st := Evaluate(pose, 0, physics.Vec{X: LandingSpeedLimit}, arm); st.Slow {
		t.Errorf("speed %v counted as slow", LandingSpeedLimit)
	}
	if st := Evaluate(pose, 0, physics.Vec{X: LandingSpeedLimit - 0.01}, arm); !st.Slow {
		t.Error("speed just under the limit not counted as slow")
	}
}

func TestEvaluateUsesNearerCatchPoint(t *testing.T) {
	arm := testArm()

	// Rocket centered on the arm: the right catch point is nearer when
	// the rocket sits left of center.
	pos := physics.Vec{X: arm.Center.X - CatchPointOffsetX, Y: ArmY - CatchPointOffsetY}
	st := Evaluate(pos, 0, physics.Vec{}, arm)
	if st.DX != 0 {
		t.Errorf("DX = %v, want 0 (right point on center)", st.DX)
	}
}

func TestEvaluateAlignmentTolerances(t *testing.T) {
	arm := testArm()
	base := readyPose(arm)

	// Just inside the half-width horizontally.
	inside := base
	inside.X += arm.Width/2 - 1
	if st := Evaluate(inside, 0, physics.Vec{}, arm); !st.Aligned {
		t.Errorf("point %v inside half-width not aligned (DX=%v)", inside.X, st.DX)
	}

	// Outside the half-width. Shift well past so the far catch point
	// cannot take over.
	outside := base
	outside.X += arm.Width/2 + 6
	if st := Evaluate(outside, 0, physics.Vec{}, arm); st.Aligned {
		t.Errorf("point outside half-width aligned (DX=%v)", st.DX)
	}

	// Vertical tolerance.
	high := base
	high.Y -= VerticalTolerance + 1
	if st := Evaluate(high, 0, physics.Vec{}, arm); st.Aligned {
		t.Errorf("point above vertical tolerance aligned (DY=%v)", st.DY)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	arm := testArm()
	pose := readyPose(arm)
	vel := physics.Vec{X: 0.5, Y: -0.25}

	first := Evaluate(pose, 0.1, vel, arm)
	second := Evaluate(pose, 0.1, vel, arm)
	if first != second {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

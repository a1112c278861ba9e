package game

import "github.com/tomz197/boostercatch/internal/physics"

// Rocket is the player-controlled booster: a physics body plus the fuel
// and throttle state owned by the flight controller.
type Rocket struct {
	Body     *physics.Body
	Fuel     float64 // Remaining fuel, 0..InitialFuel
	Throttle float64 // Smoothed thrust intensity, 0..100
}

// Arm is the catch arm the booster must align with. It is pure geometry,
// not a collision body: the booster has to be able to hover through the
// catch line, and only the tower and ground are crash targets. Rebuilt
// between rounds when the difficulty level changes, never during a round.
type Arm struct {
	Center physics.Vec // World position of the arm's catch line
	Width  float64
}

// catchPointLocal are the two catch markers near the booster's nose, in
// rocket-local coordinates (y negative is toward the nose).
var catchPointLocal = [2]physics.Vec{
	{X: -CatchPointOffsetX, Y: CatchPointOffsetY},
	{X: CatchPointOffsetX, Y: CatchPointOffsetY},
}

// catchMidLocal is the midpoint of the two catch points, used as the
// anchor point when the booster is secured on the arm.
var catchMidLocal = physics.Vec{X: 0, Y: CatchPointOffsetY}

// ProjectCatchPoints transforms the two rocket-local catch markers into
// world coordinates for the given pose.
func ProjectCatchPoints(pos physics.Vec, angle float64) (left, right physics.Vec) {
	left = catchPointLocal[0].Rotate(angle).Add(pos)
	right = catchPointLocal[1].Rotate(angle).Add(pos)
	return left, right
}

package loop

import (
	"github.com/tomz197/boostercatch/internal/draw"
	"github.com/tomz197/boostercatch/internal/game"
	"github.com/tomz197/boostercatch/internal/physics"
)

// rocketShape is the booster outline in rocket-local units: nose cone,
// body, and two fins. y negative is toward the nose.
var rocketShape = []physics.Vec{
	{X: 0, Y: -11},
	{X: 2.5, Y: -7},
	{X: 2.5, Y: 8},
	{X: 4.5, Y: 11},
	{X: 1.5, Y: 9},
	{X: -1.5, Y: 9},
	{X: -4.5, Y: 11},
	{X: -2.5, Y: 8},
	{X: -2.5, Y: -7},
}

// drawScene draws ground, tower, catch arm, and the booster onto the
// canvas in back-to-front order.
func drawScene(state *State, canvas *draw.Canvas, status game.AlignStatus) {
	sess := state.Session

	canvas.DrawRect(0, game.GroundY, game.FieldWidth, game.FieldHeight, true, draw.ColorGray)

	// Tower reports the outcome: green after a catch, red after a crash.
	towerColor := draw.ColorGray
	if !sess.Round.Active {
		if sess.Round.Success {
			towerColor = draw.ColorGreen
		} else {
			towerColor = draw.ColorRed
		}
	}
	canvas.DrawRect(
		game.TowerCenterX-game.TowerHalfW, game.TowerCenterY-game.TowerHalfH,
		game.TowerCenterX+game.TowerHalfW, game.TowerCenterY+game.TowerHalfH,
		true, towerColor)

	// Arm lights up green the moment everything lines up.
	armColor := draw.ColorWhite
	if status.Ready {
		armColor = draw.ColorGreen
	}
	arm := sess.Arm
	canvas.DrawRect(
		arm.Center.X-arm.Width/2, arm.Center.Y-game.ArmHalfThick,
		arm.Center.X+arm.Width/2, arm.Center.Y+game.ArmHalfThick,
		true, armColor)

	drawRocket(sess, canvas)
}

// drawRocket draws the booster polygon at its current pose, with the
// two catch markers on top.
func drawRocket(sess *game.Session, canvas *draw.Canvas) {
	if sess.Rocket == nil || sess.Rocket.Body == nil {
		return
	}
	b := sess.Rocket.Body

	points := canvas.BorrowPoints(len(rocketShape))
	for i, p := range rocketShape {
		world := p.Rotate(b.Angle).Add(b.Pos)
		points[i] = draw.Point{X: world.X, Y: world.Y}
	}
	canvas.DrawPolygon(points, true, draw.ColorWhite)

	left, right := game.ProjectCatchPoints(b.Pos, b.Angle)
	canvas.SetFloat(left.X, left.Y, draw.ColorCyan)
	canvas.SetFloat(right.X, right.Y, draw.ColorCyan)
}

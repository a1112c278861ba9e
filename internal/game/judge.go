package game

import (
	"math"

	"github.com/tomz197/boostercatch/internal/physics"
)

// Attempt is the landing judge: the explicit catch action while a round
// is active. Re-evaluates alignment, scores a clean catch, secures the
// booster on the arm, and ends the round. Ignored outside an active
// round, so rapid keypresses are harmless.
func (s *Session) Attempt() {
	if !s.Round.Active || s.Rocket == nil || s.Rocket.Body == nil || s.Arm == nil {
		return
	}
	body := s.Rocket.Body
	st := Evaluate(body.Pos, body.Angle, body.Vel, s.Arm)

	if st.Ready {
		score := ScorePerfectCatch
		switch {
		case st.Speed < SoftBonusSpeed:
			score += ScoreSoftBonus
		case st.Speed < FirmBonusSpeed:
			score += ScoreFirmBonus
		}
		score += int(math.Round(s.Rocket.Fuel)) * ScoreFuelMultiplier
		s.Round.Score += score

		s.capture()
		s.SuccessCount++
		s.Level = AdvanceLevel(s.SuccessCount, s.Level)
		s.endRound(MsgPerfectCatch, true)
		return
	}

	// Failure cause by priority: tilt beats speed beats alignment.
	switch {
	case !st.Upright:
		s.endRound(MsgNotUpright, false)
	case !st.Slow:
		s.endRound(MsgTooFast, false)
	default:
		s.endRound(MsgNotAligned, false)
	}
}

// capture physically couples the booster to the arm: the catch-point
// midpoint is pinned to the arm's midpoint, rotational inertia drops so
// the booster can swing passively, gravity falls to a residual value to
// model the secured hold, and all motion is zeroed at the moment of
// capture.
func (s *Session) capture() {
	body := s.Rocket.Body
	body.Vel = physics.Vec{}
	body.AngVel = 0
	body.Inertia = CaughtInertia
	s.World.Anchor(body, catchMidLocal, s.Arm.Center)
	s.World.SetGravity(physics.Vec{Y: ResidualGravity})
}

// handleCollision is the collision judge: the fallback path fired by the
// physics world on contact start. A slow, upright tower contact earns a
// consolation score; anything else involving the rocket is a failed
// round. Pairs not involving the rocket are ignored, and because the
// first qualifying pair ends the round, later pairs from the same step
// short-circuit on the Active check.
func (s *Session) handleCollision(a, b *physics.Body) {
	if !s.Round.Active || s.Rocket == nil || s.Rocket.Body == nil {
		return
	}
	body := s.Rocket.Body

	var other *physics.Body
	switch {
	case a == body:
		other = b
	case b == body:
		other = a
	default:
		return
	}
	if s.World.Anchored(body) {
		// Secured on the arm; brushing the tower frame is expected.
		return
	}

	speed := body.Vel.Length()
	upright := math.Abs(wrapAngle(body.Angle)) <= UprightTolerance

	if other == s.Tower && speed < TowerSpeedLimit && upright {
		s.Round.Score += ScoreTowerGraze
		s.endRound(MsgTowerGraze, false)
		return
	}

	switch {
	case speed >= TowerSpeedLimit:
		s.endRound(MsgCrashTooFast, false)
	case !upright:
		s.endRound(MsgToppled, false)
	default:
		s.endRound(MsgMissedTarget, false)
	}
}

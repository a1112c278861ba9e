package game

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/boostercatch/internal/physics"
)

// Round is one attempt cycle from spawn to landing or crash resolution.
type Round struct {
	Score   int
	Active  bool
	Message string // Outcome message, set when the round ends
	Success bool   // True only for a perfect arm catch
	EndedAt time.Time
}

// Session owns everything that persists for the lifetime of a game: the
// physics world, the static scenery, the current rocket and round, and
// the difficulty progression. A session is driven by exactly one loop
// goroutine; it is not safe for concurrent use.
type Session struct {
	World  *physics.World
	Rocket *Rocket
	Arm    *Arm
	Tower  *physics.Body
	Ground *physics.Body

	Level        int // Difficulty level, 1..MaxLevel
	SuccessCount int // Perfect catches this session
	Round        Round

	rng *rand.Rand
	now func() time.Time
}

// NewSession builds a world with tower, ground, and level-1 arm, spawns
// the first rocket, and starts an active round.
func NewSession(seed uint64) *Session {
	s := &Session{
		Level: 1,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:   time.Now,
	}
	s.World = physics.NewWorld(physics.Vec{Y: Gravity})

	s.Tower = s.World.AddBody(&physics.Body{
		Label:  "tower",
		Static: true,
		Pos:    physics.Vec{X: TowerCenterX, Y: TowerCenterY},
		HalfW:  TowerHalfW,
		HalfH:  TowerHalfH,
	})
	s.Ground = s.World.AddBody(&physics.Body{
		Label:  "ground",
		Static: true,
		Pos:    physics.Vec{X: FieldWidth / 2, Y: GroundY + 2},
		HalfW:  FieldWidth / 2,
		HalfH:  2,
	})

	s.buildArm()
	s.spawnRocket()
	s.World.OnCollisionStart(s.handleCollision)
	s.Round = Round{Active: true}
	return s
}

// buildArm replaces the catch arm with one sized for the current level.
// The arm hangs off the tower's left face at ArmY.
func (s *Session) buildArm() {
	width := CatchArmWidth(s.Level)
	if s.Arm != nil && s.Arm.Width == width {
		return
	}
	rightEdge := float64(TowerCenterX - TowerHalfW)
	s.Arm = &Arm{
		Center: physics.Vec{X: rightEdge - width/2, Y: ArmY},
		Width:  width,
	}
}

// spawnRocket rolls a fresh spawn state for the current level and puts a
// fully fueled rocket into the world.
func (s *Session) spawnRocket() {
	st := NewSpawnState(s.rng, s.Level, FieldWidth)
	body := s.World.AddBody(&physics.Body{
		Label:   "rocket",
		Pos:     st.Pos,
		Vel:     st.Vel,
		Angle:   st.Angle,
		AngVel:  st.AngVel,
		HalfW:   RocketHalfW,
		HalfH:   RocketHalfH,
		Mass:    RocketMass,
		Inertia: 1,
	})
	s.Rocket = &Rocket{Body: body, Fuel: InitialFuel}
}

// Align evaluates the live alignment status for the HUD. Returns the
// zero status when no rocket is in play.
func (s *Session) Align() AlignStatus {
	if s.Rocket == nil || s.Rocket.Body == nil || s.Arm == nil {
		return AlignStatus{}
	}
	b := s.Rocket.Body
	return Evaluate(b.Pos, b.Angle, b.Vel, s.Arm)
}

// Caught reports whether the booster is secured on the arm.
func (s *Session) Caught() bool {
	return s.Rocket != nil && s.Rocket.Body != nil && s.World.Anchored(s.Rocket.Body)
}

// Restart discards the ended round and spawns the next one. Ignored
// while a round is active and rate-limited to RestartCooldown after the
// round ended, so one keypress cannot end and restart in the same beat.
func (s *Session) Restart() bool {
	if s.Round.Active {
		return false
	}
	if s.now().Sub(s.Round.EndedAt) < RestartCooldown {
		return false
	}

	if s.Rocket != nil && s.Rocket.Body != nil {
		s.World.RemoveBody(s.Rocket.Body)
	}
	s.World.SetGravity(physics.Vec{Y: Gravity})

	s.buildArm()
	s.spawnRocket()
	s.Round = Round{Active: true}
	return true
}

// endRound transitions Active -> Ended with an outcome.
func (s *Session) endRound(message string, success bool) {
	s.Round.Active = false
	s.Round.Message = message
	s.Round.Success = success
	s.Round.EndedAt = s.now()
}

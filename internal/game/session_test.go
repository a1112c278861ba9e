package game

import (
	"testing"
	"time"

	"github.com/tomz197/boostercatch/internal/physics"
)

// clockedSession returns a session with a controllable clock.
func clockedSession() (*Session, *time.Time) {
	s := newTestSession()
	cur := time.Unix(1000, 0)
	s.now = func() time.Time { return cur }
	return s, &cur
}

func TestNewSessionStartsActiveAtLevelOne(t *testing.T) {
	s := newTestSession()

	if !s.Round.Active {
		t.Error("new session round not active")
	}
	if s.Level != 1 {
		t.Errorf("level = %d, want 1", s.Level)
	}
	if s.Rocket.Fuel != InitialFuel {
		t.Errorf("fuel = %v, want %v", s.Rocket.Fuel, float64(InitialFuel))
	}
	if s.Arm.Width != CatchArmWidth(1) {
		t.Errorf("arm width = %v, want %v", s.Arm.Width, CatchArmWidth(1))
	}
	if s.Round.Score != 0 {
		t.Errorf("score = %d, want 0", s.Round.Score)
	}
}

func TestRestartIgnoredWhileActive(t *testing.T) {
	s, _ := clockedSession()

	if s.Restart() {
		t.Error("restart succeeded during an active round")
	}
}

func TestRestartRateLimited(t *testing.T) {
	s, cur := clockedSession()
	s.Attempt() // Misaligned at spawn: round ends

	if s.Round.Active {
		t.Fatal("attempt did not end the round")
	}
	if s.Restart() {
		t.Error("restart honored immediately after the round ended")
	}

	*cur = cur.Add(RestartCooldown - time.Millisecond)
	if s.Restart() {
		t.Error("restart honored inside the cooldown window")
	}

	*cur = cur.Add(2 * time.Millisecond)
	if !s.Restart() {
		t.Error("restart refused after the cooldown")
	}
}

func TestRestartResetsRoundState(t *testing.T) {
	s, cur := clockedSession()
	placeReady(s)
	s.Rocket.Fuel = 17
	s.Attempt()
	if !s.Round.Success {
		t.Fatal("setup: catch failed")
	}

	*cur = cur.Add(time.Second)
	if !s.Restart() {
		t.Fatal("restart refused")
	}

	if !s.Round.Active {
		t.Error("round not active after restart")
	}
	if s.Round.Score != 0 {
		t.Errorf("score = %d, want 0", s.Round.Score)
	}
	if s.Rocket.Fuel != InitialFuel {
		t.Errorf("fuel = %v, want %v", s.Rocket.Fuel, float64(InitialFuel))
	}
	if s.Rocket.Throttle != 0 {
		t.Errorf("throttle = %v, want 0", s.Rocket.Throttle)
	}
	if s.Caught() {
		t.Error("new rocket still anchored")
	}
	if s.World.Gravity().Y != Gravity {
		t.Errorf("gravity = %v, want %v restored", s.World.Gravity().Y, float64(Gravity))
	}
}

func TestDifficultyAdvancesEveryTwoCatches(t *testing.T) {
	s, cur := clockedSession()

	catch := func() {
		placeReady(s)
		s.Attempt()
		if !s.Round.Success {
			t.Fatal("setup: catch failed")
		}
		*cur = cur.Add(time.Second)
		if !s.Restart() {
			t.Fatal("setup: restart refused")
		}
	}

	catch()
	if s.Level != 1 {
		t.Errorf("level after 1 catch = %d, want 1", s.Level)
	}

	catch()
	if s.Level != 2 {
		t.Errorf("level after 2 catches = %d, want 2", s.Level)
	}
	if s.Arm.Width != CatchArmWidth(2) {
		t.Errorf("arm width = %v, want %v for level 2", s.Arm.Width, CatchArmWidth(2))
	}

	// Level is terminal at MaxLevel no matter how many catches follow.
	for i := 0; i < 20; i++ {
		catch()
	}
	if s.Level != MaxLevel {
		t.Errorf("level = %d, want terminal %d", s.Level, MaxLevel)
	}
	if s.Arm.Width < MinArmWidth {
		t.Errorf("arm width = %v, below floor", s.Arm.Width)
	}
}

func TestConsolationDoesNotAdvanceDifficulty(t *testing.T) {
	s, cur := clockedSession()
	b := s.Rocket.Body
	b.Vel = physics.Vec{Y: 2.0}
	s.handleCollision(b, s.Tower)

	if s.SuccessCount != 0 {
		t.Errorf("success count = %d after consolation, want 0", s.SuccessCount)
	}

	*cur = cur.Add(time.Second)
	s.Restart()
	if s.Level != 1 {
		t.Errorf("level = %d after consolation restart, want 1", s.Level)
	}
}

func TestAlignStatusTracksRocket(t *testing.T) {
	s := newTestSession()
	placeReady(s)

	if st := s.Align(); !st.Ready {
		t.Errorf("ready pose evaluated not ready: %+v", st)
	}

	s.Rocket.Body.Angle = 3.0
	if st := s.Align(); st.Ready {
		t.Error("tilted pose evaluated ready")
	}
}

func TestSessionSurvivesFullTickCycle(t *testing.T) {
	// Drive the whole per-tick pipeline for a few seconds of game time
	// the way the loop does: flight, physics, clamp, align.
	s := newTestSession()
	for i := 0; i < 600 && s.Round.Active; i++ {
		s.UpdateFlight(Controls{Thrust: i%3 == 0}, tickDt)
		s.World.Step(tickDt)
		s.ClampSpeed()
		s.Align()

		if speed := s.Rocket.Body.Speed(); speed > MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v exceeds cap", i, speed)
		}
	}
}

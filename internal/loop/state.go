package loop

import (
	"time"

	"github.com/tomz197/boostercatch/internal/effects"
	"github.com/tomz197/boostercatch/internal/game"
)

// phase is the coarse screen state. Round progression (active vs. ended)
// lives inside the session; the title screen is purely presentational.
type phase int

const (
	phaseTitle phase = iota
	phasePlaying
)

// State holds everything the loop needs between frames.
type State struct {
	Session *game.Session
	Effects *effects.System

	Phase   phase
	Running bool
	Verbose bool // Show the per-check alignment readout
	Delta   time.Duration

	controls game.Controls
	action   bool // Space, edge-triggered this frame
	enter    bool // Enter, edge-triggered this frame

	prevAction  bool
	prevEnter   bool
	prevVerbose bool

	exploded bool // Debris already spawned for the current ended round
	fps      float64
}

// NewState creates the loop state with a fresh session.
func NewState(seed uint64) *State {
	return &State{
		Session: game.NewSession(seed),
		Effects: effects.NewSystem(),
		Running: true,
	}
}

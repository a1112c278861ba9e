package game

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/boostercatch/internal/physics"
)

// SpawnState is the randomized initial kinematic state for a round.
type SpawnState struct {
	Pos    physics.Vec
	Vel    physics.Vec
	Angle  float64
	AngVel float64
}

// NewSpawnState rolls a spawn for the given difficulty level.
//
// Level 1 spawns in the right-hand 70-90% band of the field, biased
// toward the already-aligned side; higher levels use the full 20-80%
// band, start lower, drift faster, and tilt harder. Levels above 1 also
// have a 30% chance of a random velocity burst on top of the base roll.
func NewSpawnState(rng *rand.Rand, level int, fieldWidth float64) SpawnState {
	factor := DifficultyFactor(level)

	var x float64
	if level <= 1 {
		x = (0.7 + rng.Float64()*0.2) * fieldWidth
	} else {
		x = (0.2 + rng.Float64()*0.6) * fieldWidth
	}
	y := SpawnBaseY + rng.Float64()*SpawnDepthRange*factor

	angle := (rng.Float64()*2 - 1) * SpawnTiltRange * factor

	vel := physics.Vec{
		X: (rng.Float64()*2 - 1) * SpawnVXRange * factor,
		Y: rng.Float64()*SpawnVYRange*factor - SpawnVYLift*factor,
	}

	// Sudden gust: additive burst in a random direction.
	if level > 1 && rng.Float64() < SpawnBurstChance {
		dir := rng.Float64() * 2 * math.Pi
		mag := 1 + rng.Float64()*factor
		vel = vel.Add(physics.FromAngle(dir, mag))
	}

	return SpawnState{
		Pos:    physics.Vec{X: x, Y: y},
		Vel:    vel,
		Angle:  angle,
		AngVel: (rng.Float64()*2 - 1) * SpawnAngVelRange * factor,
	}
}

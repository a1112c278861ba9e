// Package game implements the booster-catch core: difficulty progression,
// round spawning, flight control, alignment evaluation, and the landing
// and collision judges that end a round.
package game

import "time"

// Playfield - logical units, y grows downward. Rendering scales to fit
// the terminal.
const (
	FieldWidth  = 120
	FieldHeight = 160
	GroundY     = 156 // Top surface of the ground
)

// Tower and catch arm geometry.
const (
	TowerCenterX    = 104
	TowerHalfW      = 3
	TowerHalfH      = 22
	TowerCenterY    = GroundY - TowerHalfH
	ArmY            = 116 // Height of the catch arm
	ArmHalfThick    = 2
	BaseArmWidth    = 60 // Arm width at difficulty level 1
	MinArmWidth     = 20 // Width never shrinks below this
	ArmWidthTaper   = 0.15
	MaxLevel        = 5
	CatchesPerLevel = 2 // Successful catches required per level-up
)

// Rocket body.
const (
	RocketHalfW = 3
	RocketHalfH = 8
	RocketMass  = 1.0
)

// Catch points - two markers near the nose, in rocket-local units
// (y negative is toward the nose).
const (
	CatchPointOffsetX = 2.5
	CatchPointOffsetY = -5.0
)

// Physics.
const (
	Gravity         = 22.0 // Units per second squared, downward
	ResidualGravity = 2.2  // Gravity while the booster hangs on the arm
	MaxSpeed        = 25.0 // Hard cap on rocket speed
	CaughtInertia   = 0.2  // Low rotational inertia for passive swinging
)

// Flight controller.
const (
	InitialFuel      = 100.0
	ThrottleRamp     = 180.0 // Throttle points per second while thrusting
	ThrottleDecay    = ThrottleRamp * 1.5
	ThrustForce      = 55.0
	DescentBoost     = 1.3 // Extra thrust while falling fast
	DescentBoostVY   = 2.0 // Falling speed that triggers the boost
	FuelRate         = 8.0 // Max fuel per second at full throttle
	RotationRate     = 3.0 // Angular velocity gain, radians per second²
	RotationFuelRate = 1.5 // Fuel per second while a rotate key is held
	AngularDrag      = 0.046 // Per-second angular velocity retention
)

// Alignment thresholds.
const (
	UprightTolerance  = 0.35 // Radians from vertical
	VerticalTolerance = 12.0 // Catch point distance above/below the arm
	LandingSpeedLimit = 3.0  // Max speed for a clean catch
	TowerSpeedLimit   = 2.5  // Max speed for a survivable tower graze
)

// Scoring.
const (
	ScorePerfectCatch   = 2000
	ScoreSoftBonus      = 300 // Speed below SoftBonusSpeed
	ScoreFirmBonus      = 150 // Speed below FirmBonusSpeed
	SoftBonusSpeed      = 1.2
	FirmBonusSpeed      = 1.8
	ScoreFuelMultiplier = 2 // Points per remaining fuel unit
	ScoreTowerGraze     = 300
)

// Spawn randomization (see NewSpawnState).
const (
	SpawnBaseY       = 12.0
	SpawnDepthRange  = 50.0
	SpawnTiltRange   = 0.1
	SpawnVXRange     = 3.5
	SpawnVYRange     = 2.0
	SpawnVYLift      = 0.8
	SpawnBurstChance = 0.3
	SpawnAngVelRange = 0.02
)

// RestartCooldown is the minimum wall-clock gap between a round ending
// and the restart input being honored. Prevents a single keypress from
// both ending and restarting a round.
const RestartCooldown = 500 * time.Millisecond

// Outcome messages.
const (
	MsgPerfectCatch = "Perfect Mechazilla Catch!"
	MsgNotUpright   = "Failed! Booster wasn't upright"
	MsgTooFast      = "Failed! Coming in too fast"
	MsgNotAligned   = "Missed the catch arm!"
	MsgTowerGraze   = "Almost! Missed the catch arm"
	MsgCrashTooFast = "Crashed! Came in too fast"
	MsgToppled      = "Crashed! Booster toppled over"
	MsgMissedTarget = "Missed the target"
)

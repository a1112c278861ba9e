// Package loop provides the main game loop: input, simulation, and
// frame rendering at a fixed tick rate.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/boostercatch/internal/draw"
	"github.com/tomz197/boostercatch/internal/game"
	"github.com/tomz197/boostercatch/internal/input"
	"github.com/tomz197/boostercatch/internal/physics"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxDelta caps the simulation step after a stall (suspend, slow link)
// so the rocket doesn't teleport through the arm or the ground.
const maxDelta = 0.1

// Options configures a loop run. The zero value works for a local
// terminal.
type Options struct {
	// TermSizeFunc reports the terminal dimensions each frame. Defaults
	// to the local stdout size; SSH sessions supply their own.
	TermSizeFunc draw.TermSizeFunc

	// Seed for spawn randomization. 0 means derive from the clock.
	Seed uint64
}

// Run starts the game loop with default options, reading input from r
// and rendering to w until the player quits.
func Run(r *bufio.Reader, w io.Writer) error {
	return RunWithOptions(r, w, Options{})
}

// RunWithOptions starts the game loop with the standard
// Input → Update → Draw cycle.
func RunWithOptions(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	state := NewState(seed)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight, game.FieldWidth, game.FieldHeight)

	// All frame output is batched through one chunked writer so a frame
	// reaches the SSH session as a few MTU-sized writes instead of a
	// flood of tiny ones.
	cw := draw.NewChunkWriter(w, 0, 0)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		dt := state.Delta.Seconds()
		if dt > maxDelta {
			dt = maxDelta
		}
		if dt > 0 {
			state.fps = state.fps*0.9 + 0.1/dt
		}

		// ===== INPUT PHASE =====
		processInput(state, stream)

		// ===== UPDATE PHASE =====
		if err := updateScreen(canvas, cw, sizeFunc); err != nil {
			return err
		}

		switch state.Phase {
		case phaseTitle:
			updateTitle(state, stream)
		case phasePlaying:
			updatePlaying(state, stream, dt)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input and derives per-frame key state.
// Space, Enter, and the verbose toggle are edge-triggered so a held key
// fires once.
func processInput(state *State, stream *input.Stream) {
	inp := input.ReadInput(stream)

	state.controls = game.Controls{
		Thrust: inp.Thrust,
		Left:   inp.Left,
		Right:  inp.Right,
	}
	state.action = inp.Action && !state.prevAction
	state.enter = inp.Enter && !state.prevEnter
	if inp.Verbose && !state.prevVerbose {
		state.Verbose = !state.Verbose
	}
	state.prevAction = inp.Action
	state.prevEnter = inp.Enter
	state.prevVerbose = inp.Verbose

	if inp.Quit {
		state.Running = false
	}
}

// updateScreen checks for terminal resize and updates canvas scaling.
// Terminals with room get the playfield inset one cell for a border.
func updateScreen(canvas *draw.Canvas, cw *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	offCol, offRow := 0, 0
	if termWidth > 4 && termHeight > 4 {
		termWidth -= 2
		termHeight -= 2
		offCol, offRow = 1, 1
	}
	canvas.Resize(termWidth, termHeight)
	canvas.SetOffset(offCol, offRow)
	cw.SetOffset(offCol, offRow)
	return nil
}

// updateTitle waits on the title screen for the launch key.
func updateTitle(state *State, stream *input.Stream) {
	if state.action || state.enter {
		input.ResetKeyInput(stream)
		state.Phase = phasePlaying
	}
}

// updatePlaying advances one simulation tick: catch attempt, physics,
// flight control, effects, and the restart path once a round has ended.
func updatePlaying(state *State, stream *input.Stream, dt float64) {
	sess := state.Session

	if sess.Round.Active && state.action {
		sess.Attempt()
	}

	// Collision outcomes fire inside the step; remember whether the
	// round survived it so a crash gets exactly one debris burst.
	activeBeforeStep := sess.Round.Active
	sess.World.Step(dt)
	sess.UpdateFlight(state.controls, dt)
	sess.ClampSpeed()

	if activeBeforeStep && !sess.Round.Active && !sess.Round.Success && !state.exploded {
		b := sess.Rocket.Body
		state.Effects.SpawnExplosion(b.Pos.X, b.Pos.Y, 28, 18)
		state.exploded = true
	}

	if sess.Round.Active && sess.Rocket.Throttle > 0 && sess.Rocket.Fuel > 0 {
		b := sess.Rocket.Body
		nozzle := physics.Vec{Y: game.RocketHalfH}.Rotate(b.Angle).Add(b.Pos)
		state.Effects.SpawnFlame(nozzle.X, nozzle.Y, b.Angle, sess.Rocket.Throttle/100)
	}

	state.Effects.Update(dt)

	if !sess.Round.Active && (state.action || state.enter) {
		if sess.Restart() {
			input.ResetKeyInput(stream)
			state.Effects.Clear()
			state.exploded = false
		}
	}
}

// drawFrame clears the screen, draws the scene to the canvas, and lays
// the border and HUD on top. The whole frame is accumulated in the
// chunk writer and flushed as one batch.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	status := state.Session.Align()

	if state.Phase == phasePlaying {
		drawScene(state, canvas, status)
		state.Effects.Draw(canvas)
	}

	canvas.Render(cw)
	canvas.RenderBorder(cw)

	// UI overlay goes after the canvas so it sits on top.
	drawUI(state, cw, canvas, status)
	return cw.Flush()
}

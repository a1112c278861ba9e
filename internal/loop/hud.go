package loop

import (
	"fmt"

	"github.com/tomz197/boostercatch/internal/draw"
	"github.com/tomz197/boostercatch/internal/game"
)

// drawUI accumulates the text overlay for the current phase into the
// frame's chunk writer.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas, status game.AlignStatus) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()

	switch state.Phase {
	case phaseTitle:
		drawTitleScreen(cw, termWidth/2, termHeight/2)
	case phasePlaying:
		drawPlayingHUD(state, cw, termWidth, status)
		if !state.Session.Round.Active {
			drawEndOverlay(state, cw, termWidth/2, termHeight/2)
		}
	}
}

// drawTitleScreen draws the launch screen.
func drawTitleScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "B O O S T E R   C A T C H"
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	tagline := "Land the booster on the tower's catch arm"
	cw.WriteAt(centerX-len(tagline)/2, centerY-1, tagline)

	subtitle := "Press SPACE to Launch"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to tilt, W or Up to burn, SPACE to catch, V for readout, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawPlayingHUD draws the in-game readouts: flight state on the left,
// score and level on the right, alignment status below.
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, termWidth int, status game.AlignStatus) {
	sess := state.Session

	flight := fmt.Sprintf("Fuel %3.0f%%  Speed %4.1f  Throttle %3.0f%%",
		sess.Rocket.Fuel, status.Speed, sess.Rocket.Throttle)
	cw.WriteAt(2, 1, flight)

	score := fmt.Sprintf("Score %d  Level %d/%d", sess.Round.Score, sess.Level, game.MaxLevel)
	cw.WriteAt(termWidth-len(score)-1, 1, score)

	if sess.Round.Active {
		text, color := statusLine(status)
		cw.WriteStyledAt(2, 2, text, color)
	}

	if state.Verbose {
		drawVerboseReadout(state, cw, status)
	}
}

// statusLine summarizes the alignment checks, naming the first failing
// one in the same order the landing judge blames them.
func statusLine(status game.AlignStatus) (string, draw.Color) {
	switch {
	case status.Ready:
		return "CATCH READY", draw.ColorGreen
	case !status.Upright:
		return "TILTED", draw.ColorRed
	case !status.Slow:
		return "TOO FAST", draw.ColorRed
	default:
		return "OFF TARGET", draw.ColorRed
	}
}

// drawVerboseReadout shows each alignment check against its limit.
func drawVerboseReadout(state *State, cw *draw.ChunkWriter, status game.AlignStatus) {
	checkColor := func(ok bool) draw.Color {
		if ok {
			return draw.ColorGreen
		}
		return draw.ColorRed
	}

	cw.WriteStyledAt(2, 3,
		fmt.Sprintf("tilt   %+5.2f rad  (max %.2f)", status.Tilt, game.UprightTolerance),
		checkColor(status.Upright))
	cw.WriteStyledAt(2, 4,
		fmt.Sprintf("offset %+5.1f,%+5.1f (max %.1f, %.1f)",
			status.DX, status.DY, state.Session.Arm.Width/2, game.VerticalTolerance),
		checkColor(status.Aligned))
	cw.WriteStyledAt(2, 5,
		fmt.Sprintf("speed  %5.2f      (max %.2f)", status.Speed, game.LandingSpeedLimit),
		checkColor(status.Slow))

	cw.WriteAt(2, 6, fmt.Sprintf("fps %3.0f", state.fps))
}

// drawEndOverlay draws the outcome message and the restart prompt. The
// prompt names the next round after a catch and a retry after a miss.
func drawEndOverlay(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	round := state.Session.Round

	color := draw.ColorRed
	if round.Success {
		color = draw.ColorGreen
	}
	cw.WriteStyledAt(centerX-len(round.Message)/2, centerY-2, round.Message, color)

	score := fmt.Sprintf("Score: %d", round.Score)
	cw.WriteAt(centerX-len(score)/2, centerY, score)

	prompt := "Press SPACE to Restart"
	if round.Success {
		prompt = "Press SPACE for Next Round"
	}
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}

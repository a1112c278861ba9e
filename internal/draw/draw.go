// Package draw renders game frames to a terminal: a scaled half-block
// canvas with per-pixel color, ANSI helpers, and a chunked writer tuned
// for SSH sessions.
package draw

// Point represents a 2D coordinate in logical canvas space.
type Point struct {
	X, Y float64
}

// Color is a palette index for canvas pixels and HUD text.
type Color uint8

const (
	ColorNone Color = iota // Unset pixel
	ColorWhite
	ColorGray
	ColorGreen
	ColorRed
	ColorYellow
	ColorOrange
	ColorCyan
)

// fgCodes maps palette colors to ANSI SGR foreground sequences.
var fgCodes = [...]string{
	ColorNone:   "\033[39m",
	ColorWhite:  "\033[97m",
	ColorGray:   "\033[90m",
	ColorGreen:  "\033[32m",
	ColorRed:    "\033[31m",
	ColorYellow: "\033[33m",
	ColorOrange: "\033[38;5;208m",
	ColorCyan:   "\033[36m",
}

// bgCodes maps palette colors to ANSI SGR background sequences.
var bgCodes = [...]string{
	ColorNone:   "\033[49m",
	ColorWhite:  "\033[107m",
	ColorGray:   "\033[100m",
	ColorGreen:  "\033[42m",
	ColorRed:    "\033[41m",
	ColorYellow: "\033[43m",
	ColorOrange: "\033[48;5;208m",
	ColorCyan:   "\033[46m",
}

// Fg returns the ANSI foreground sequence for a color.
func Fg(c Color) string {
	if int(c) >= len(fgCodes) {
		return fgCodes[ColorNone]
	}
	return fgCodes[c]
}

// Reset is the ANSI attribute reset sequence.
const Reset = "\033[0m"

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

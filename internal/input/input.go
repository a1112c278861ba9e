// Package input reads raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals auto-repeat held keys, so a short window makes a key
// read as continuously held while still releasing promptly.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool // Rotate counter-clockwise
	Right   bool // Rotate clockwise
	Thrust  bool
	Action  bool // Catch attempt / restart
	Enter   bool // Alternate restart control
	Verbose bool // Toggle the alignment breakdown readout
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	thrust  time.Time
	action  time.Time
	enter   time.Time
	verbose time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys and key combinations survive between frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to
// the stream. The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput clears all key state, so stale holds from the previous
// round do not leak into the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking),
// handles arrow-key escape sequences, and builds the frame's input from
// the key hold window.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader closed (disconnect): treat as quit.
				s.state.quit = now
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Thrust:  now.Sub(s.state.thrust) < keyHoldDuration,
		Action:  now.Sub(s.state.action) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Verbose: now.Sub(s.state.verbose) < keyHoldDuration,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps for a pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case ' ':
		state.action = now
	case '\n', '\r':
		state.enter = now
	case 'v', 'V':
		state.verbose = now
	}
}

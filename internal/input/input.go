// Package input decodes raw terminal bytes into game commands. A reader
// goroutine pumps bytes into a channel; Poll drains at most one keypress
// per call without ever blocking the game loop.
package input

import (
	"bufio"

	"github.com/tomz197/slither/internal/game"
)

// Event classifies a decoded keypress.
type Event int

const (
	// EventNone means no input was pending, or the pending byte mapped to
	// no command.
	EventNone Event = iota
	// EventDirection carries a direction change request in Key.Dir.
	EventDirection
	// EventQuit is the quit command (q/Q).
	EventQuit
	// EventPause is the pause toggle (space).
	EventPause
)

// Key is one decoded input event.
type Key struct {
	Event Event
	Dir   game.Direction
}

// Stream delivers input bytes from a reader goroutine via a channel so the
// single-threaded loop can poll without blocking.
type Stream struct {
	ch chan byte
}

// Start spawns a goroutine that reads from r and feeds the stream. The
// goroutine exits (and the channel closes) when the reader errors, which
// on a closed session or stdin is the normal teardown path.
func Start(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Next blocks until one byte arrives or the stream closes. Used for the
// "press any key" prompt after game over, never inside the loop.
func (s *Stream) Next() (byte, bool) {
	b, ok := <-s.ch
	return b, ok
}

// tryByte returns the next pending byte without blocking.
func (s *Stream) tryByte() (byte, bool) {
	select {
	case b, ok := <-s.ch:
		return b, ok
	default:
		return 0, false
	}
}

// Poll decodes at most one keypress and never blocks. Plain wasd (either
// case) and CSI arrow sequences map to directions; q quits, space toggles
// pause, anything else is EventNone. An escape sequence whose remaining
// bytes have not arrived yet is dropped rather than buffered across polls.
func (s *Stream) Poll() Key {
	b, ok := s.tryByte()
	if !ok {
		return Key{}
	}

	if b == 0x1b {
		next, ok := s.tryByte()
		if !ok || next != '[' {
			return Key{}
		}
		code, ok := s.tryByte()
		if !ok {
			return Key{}
		}
		switch code {
		case 'A':
			return Key{Event: EventDirection, Dir: game.DirUp}
		case 'B':
			return Key{Event: EventDirection, Dir: game.DirDown}
		case 'C':
			return Key{Event: EventDirection, Dir: game.DirRight}
		case 'D':
			return Key{Event: EventDirection, Dir: game.DirLeft}
		}
		return Key{}
	}

	switch b {
	case 'w', 'W':
		return Key{Event: EventDirection, Dir: game.DirUp}
	case 's', 'S':
		return Key{Event: EventDirection, Dir: game.DirDown}
	case 'a', 'A':
		return Key{Event: EventDirection, Dir: game.DirLeft}
	case 'd', 'D':
		return Key{Event: EventDirection, Dir: game.DirRight}
	case 'q', 'Q':
		return Key{Event: EventQuit}
	case ' ':
		return Key{Event: EventPause}
	}
	return Key{}
}

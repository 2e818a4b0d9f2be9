// Package loop runs the game: a single-threaded scheduler interleaving
// move ticks, render ticks and non-blocking input polling, plus the board
// renderer. Move and render cadences are independent, so input stays
// responsive at render rate while the snake advances at move rate.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/slither/internal/config"
	"github.com/tomz197/slither/internal/draw"
	"github.com/tomz197/slither/internal/game"
	"github.com/tomz197/slither/internal/input"
)

// loopSleep bounds CPU usage between iterations. Small enough that tick
// accuracy is unaffected at any sane FPS.
const loopSleep = time.Millisecond

// clock measures elapsed microseconds against an epoch fixed at creation,
// backed by the runtime's monotonic reading.
type clock struct {
	epoch time.Time
}

func newClock() clock {
	return clock{epoch: time.Now()}
}

func (c clock) elapsedMicros() int64 {
	return time.Since(c.epoch).Microseconds()
}

// cadence fires whenever the interval has passed since the last firing.
// Missed ticks are not caught up: after a stall the next due check fires
// once and the schedule continues from there.
type cadence struct {
	interval int64 // microseconds
	last     int64
}

func (c *cadence) due(elapsed int64) bool {
	if elapsed-c.last < c.interval {
		return false
	}
	c.last = elapsed
	return true
}

// Run plays one game to completion and returns the final score. The writer
// must be a terminal already in raw mode (or an SSH session PTY, which
// behaves the same). Run hides the cursor for the duration and restores it
// on every exit path; raw mode itself is the caller's to manage. After
// game over the final score is shown and one keypress is awaited before
// returning, while the terminal is still intact.
func Run(cfg *config.Config, r *bufio.Reader, w io.Writer) (int, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(cfg.Rules(), rng)
	stream := input.Start(r)
	rend := newRenderer(cfg, w)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	clk := newClock()
	move := cadence{interval: cfg.MoveInterval}
	render := cadence{interval: cfg.RenderInterval}

	for !g.Over() {
		elapsed := clk.elapsedMicros()

		apply(g, stream.Poll())

		if !g.Paused() && move.due(elapsed) {
			g.Move()
		}
		if render.due(elapsed) {
			if err := rend.frame(g); err != nil {
				return g.Score(), err
			}
		}

		time.Sleep(loopSleep)
	}

	draw.ClearScreen(w)
	fmt.Fprintf(w, "Game Over! Final Score: %d\r\n", g.Score())
	fmt.Fprint(w, "Press any key to exit...")
	stream.Next()
	fmt.Fprint(w, "\r\n")

	return g.Score(), nil
}

// apply routes one decoded keypress to the game.
func apply(g *game.Game, k input.Key) {
	switch k.Event {
	case input.EventDirection:
		g.ChangeDirection(k.Dir)
	case input.EventQuit:
		g.End()
	case input.EventPause:
		g.TogglePause()
	}
}

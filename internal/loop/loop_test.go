package loop

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/slither/internal/config"
	"github.com/tomz197/slither/internal/game"
	"github.com/tomz197/slither/internal/input"
)

func TestCadenceFiresAtInterval(t *testing.T) {
	c := cadence{interval: 100}

	steps := []struct {
		elapsed int64
		want    bool
	}{
		{0, false},
		{50, false},
		{99, false},
		{100, true},  // threshold reached
		{150, false}, // 50 since last firing
		{199, false},
		{205, true}, // fires late, schedule continues from 205
		{304, false},
		{305, true},
	}

	for _, s := range steps {
		if got := c.due(s.elapsed); got != s.want {
			t.Errorf("due(%d) = %v, want %v", s.elapsed, got, s.want)
		}
	}
}

func TestCadenceDoesNotCatchUp(t *testing.T) {
	c := cadence{interval: 100}

	// A long stall covers many intervals; only one tick fires.
	if !c.due(1000) {
		t.Fatal("expected a tick after the stall")
	}
	if c.due(1001) {
		t.Error("missed ticks were caught up")
	}
	if !c.due(1100) {
		t.Error("next tick did not fire one interval after the stall")
	}
}

func TestClockElapsedGrows(t *testing.T) {
	clk := newClock()
	a := clk.elapsedMicros()
	time.Sleep(5 * time.Millisecond)
	b := clk.elapsedMicros()

	if a < 0 {
		t.Errorf("elapsed went negative: %d", a)
	}
	if b-a < 4000 {
		t.Errorf("elapsed advanced %dus over a 5ms sleep", b-a)
	}
}

func TestApplyKey(t *testing.T) {
	newGame := func() *game.Game {
		cfg, _ := config.Parse([]string{"-w", "10", "-h", "10"})
		return game.New(cfg.Rules(), testRand())
	}

	t.Run("direction", func(t *testing.T) {
		g := newGame()
		apply(g, input.Key{Event: input.EventDirection, Dir: game.DirUp})
		if g.Direction() != game.DirUp {
			t.Errorf("direction = %v, want up", g.Direction())
		}
	})

	t.Run("quit", func(t *testing.T) {
		g := newGame()
		apply(g, input.Key{Event: input.EventQuit})
		if !g.Over() {
			t.Error("quit did not end the game")
		}
	})

	t.Run("pause", func(t *testing.T) {
		g := newGame()
		apply(g, input.Key{Event: input.EventPause})
		if !g.Paused() {
			t.Error("pause toggle had no effect")
		}
		apply(g, input.Key{Event: input.EventPause})
		if g.Paused() {
			t.Error("second toggle did not resume")
		}
	})

	t.Run("none", func(t *testing.T) {
		g := newGame()
		dir := g.Direction()
		apply(g, input.Key{})
		if g.Direction() != dir || g.Over() || g.Paused() {
			t.Error("EventNone mutated game state")
		}
	})
}

func TestRunQuitsOnQ(t *testing.T) {
	cfg, _ := config.Parse([]string{"-w", "10", "-h", "10", "-m", "1"})

	// One q to quit, one trailing byte for the exit prompt.
	r := bufio.NewReader(strings.NewReader("q\n"))
	var out strings.Builder

	done := make(chan error, 1)
	go func() {
		_, err := Run(cfg, r, &out)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not exit after quit command")
	}

	if !strings.Contains(out.String(), "Game Over! Final Score: 0") {
		t.Errorf("final score message missing from output")
	}
}

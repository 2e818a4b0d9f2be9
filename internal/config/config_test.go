package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomz197/slither/internal/game"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.RenderFPS != 30 || c.MoveFPS != 6 {
		t.Errorf("default FPS = %d/%d, want 30/6", c.RenderFPS, c.MoveFPS)
	}
	if c.Wraparound || c.Emoji || c.Mode != game.ModeRegular {
		t.Errorf("unexpected non-default flags: %+v", c)
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse([]string{"-w", "60", "-h", "30", "-r", "50", "-m", "10",
		"--mode", "greedy", "--wraparound", "--emoji"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Width != 60 || c.Height != 30 {
		t.Errorf("board = %dx%d, want 60x30", c.Width, c.Height)
	}
	if c.RenderFPS != 50 || c.MoveFPS != 10 {
		t.Errorf("FPS = %d/%d, want 50/10", c.RenderFPS, c.MoveFPS)
	}
	if c.Mode != game.ModeGreedy {
		t.Errorf("mode = %v, want greedy", c.Mode)
	}
	if !c.Wraparound || !c.Emoji {
		t.Errorf("boolean flags not set: %+v", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown option", []string{"--frobnicate"}},
		{"missing width value", []string{"-w"}},
		{"missing height value", []string{"-h"}},
		{"missing render value", []string{"-r"}},
		{"missing move value", []string{"-m"}},
		{"missing mode value", []string{"--mode"}},
		{"unknown mode", []string{"--mode", "hardcore"}},
		{"zero width", []string{"-w", "0"}},
		{"negative height", []string{"-h", "-3"}},
		{"width below minimum", []string{"-w", "4"}},
		{"height below minimum", []string{"-h", "2"}},
		{"non-numeric fps", []string{"-r", "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"--help"})
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("Parse(--help) = %v, want ErrHelp", err)
	}
}

func TestCalculateIntervals(t *testing.T) {
	tests := []struct {
		renderFPS, moveFPS int
		renderUS, moveUS   int64
	}{
		{30, 6, 33333, 166666},
		{60, 1, 16666, 1000000},
		{1, 1, 1000000, 1000000},
	}

	for _, tt := range tests {
		c := &Config{RenderFPS: tt.renderFPS, MoveFPS: tt.moveFPS}
		c.CalculateIntervals()
		if c.RenderInterval != tt.renderUS {
			t.Errorf("render interval for %d fps = %d, want %d",
				tt.renderFPS, c.RenderInterval, tt.renderUS)
		}
		if c.MoveInterval != tt.moveUS {
			t.Errorf("move interval for %d fps = %d, want %d",
				tt.moveFPS, c.MoveInterval, tt.moveUS)
		}
	}
}

func TestDeriveSizeFromTerminal(t *testing.T) {
	c, _ := Parse(nil)
	c.DeriveSize(func() (int, int, error) { return 100, 40, nil })

	if c.Width != 96 {
		t.Errorf("derived width = %d, want 96", c.Width)
	}
	if c.Height != 34 {
		t.Errorf("derived height = %d, want 34", c.Height)
	}
}

func TestDeriveSizeEmojiHalvesWidth(t *testing.T) {
	c, _ := Parse([]string{"--emoji"})
	c.DeriveSize(func() (int, int, error) { return 100, 40, nil })

	if c.Width != 48 {
		t.Errorf("derived emoji width = %d, want 48", c.Width)
	}
}

func TestDeriveSizeKeepsOverrides(t *testing.T) {
	c, _ := Parse([]string{"-w", "12", "-h", "7"})
	c.DeriveSize(func() (int, int, error) { return 200, 60, nil })

	if c.Width != 12 || c.Height != 7 {
		t.Errorf("overrides lost: %dx%d, want 12x7", c.Width, c.Height)
	}
}

func TestDeriveSizeQueryFailure(t *testing.T) {
	c, _ := Parse(nil)
	c.DeriveSize(func() (int, int, error) { return 0, 0, errors.New("not a tty") })

	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Errorf("fallback size = %dx%d, want defaults %dx%d",
			c.Width, c.Height, DefaultWidth, DefaultHeight)
	}
}

func TestDeriveSizeClampsTinyTerminal(t *testing.T) {
	c, _ := Parse(nil)
	c.DeriveSize(func() (int, int, error) { return 8, 6, nil })

	if c.Width < minWidth || c.Height < minHeight {
		t.Errorf("derived size %dx%d below usable minimum", c.Width, c.Height)
	}
}

func TestUsageMentionsEveryFlag(t *testing.T) {
	var sb strings.Builder
	Usage(&sb, "slither")
	out := sb.String()

	for _, flag := range []string{"-w", "-h", "-r", "-m", "--mode", "--wraparound", "--emoji", "--help"} {
		if !strings.Contains(out, flag) {
			t.Errorf("usage text missing %s", flag)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SLITHER_TEST_KEY", "set")
	if got := GetEnv("SLITHER_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("SLITHER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

// Package config builds the game configuration from CLI arguments, the
// environment and the terminal size. The parsed Config is constructed once
// in main and passed down; nothing in the game reads ambient state.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tomz197/slither/internal/game"
)

// Defaults used when neither flags nor the terminal provide a value.
const (
	DefaultWidth     = 40
	DefaultHeight    = 20
	DefaultRenderFPS = 30
	DefaultMoveFPS   = 6
)

// Margins subtracted from the terminal size when deriving board
// dimensions, leaving room for the border, status line and footer.
const (
	widthMargin  = 4
	heightMargin = 6
)

// Minimum playable board size, enforced on flag overrides and on sizes
// derived from very small terminals alike.
const (
	minWidth  = 10
	minHeight = 5
)

const microsecondsPerSecond = 1_000_000

// ErrHelp is returned by Parse when --help is requested. The caller prints
// usage and exits 0.
var ErrHelp = errors.New("help requested")

// Config is the complete game configuration. Width and Height are zero
// until set by a flag or DeriveSize.
type Config struct {
	Width          int
	Height         int
	RenderFPS      int
	MoveFPS        int
	RenderInterval int64 // microseconds between render ticks
	MoveInterval   int64 // microseconds between move ticks
	Wraparound     bool
	Emoji          bool
	Mode           game.Mode

	widthSet  bool
	heightSet bool
}

// Default returns a Config with default frequencies and no board size; call
// DeriveSize (or set Width/Height) before starting a game.
func Default() *Config {
	c := &Config{
		RenderFPS: DefaultRenderFPS,
		MoveFPS:   DefaultMoveFPS,
	}
	c.CalculateIntervals()
	return c
}

// Parse builds a Config from CLI arguments (os.Args[1:] form). The flag
// grammar follows the usage text exactly; note -h is board height, with
// --help the only help flag, so this is a hand-rolled scanner rather than
// the flag package.
func Parse(args []string) (*Config, error) {
	c := Default()

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-w":
			v, err := intValue(args, &i, arg, "width")
			if err != nil {
				return nil, err
			}
			if v < minWidth {
				return nil, fmt.Errorf("width must be at least %d", minWidth)
			}
			c.Width = v
			c.widthSet = true
		case "-h":
			v, err := intValue(args, &i, arg, "height")
			if err != nil {
				return nil, err
			}
			if v < minHeight {
				return nil, fmt.Errorf("height must be at least %d", minHeight)
			}
			c.Height = v
			c.heightSet = true
		case "-r":
			v, err := intValue(args, &i, arg, "render FPS")
			if err != nil {
				return nil, err
			}
			c.RenderFPS = v
		case "-m":
			v, err := intValue(args, &i, arg, "move FPS")
			if err != nil {
				return nil, err
			}
			c.MoveFPS = v
		case "--mode":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--mode requires a mode value")
			}
			i++
			switch args[i] {
			case "regular":
				c.Mode = game.ModeRegular
			case "greedy":
				c.Mode = game.ModeGreedy
			default:
				return nil, fmt.Errorf("unknown game mode %q, available modes: regular, greedy", args[i])
			}
		case "--wraparound":
			c.Wraparound = true
		case "--emoji":
			c.Emoji = true
		case "--help":
			return nil, ErrHelp
		default:
			return nil, fmt.Errorf("unknown option %s", arg)
		}
	}

	c.CalculateIntervals()
	return c, nil
}

// intValue consumes the positive-integer value following flag at *i.
func intValue(args []string, i *int, flag, what string) (int, error) {
	if *i+1 >= len(args) {
		return 0, fmt.Errorf("%s requires a %s value", flag, what)
	}
	*i++
	v, err := strconv.Atoi(args[*i])
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", what)
	}
	return v, nil
}

// CalculateIntervals derives the tick intervals from the frequencies,
// truncating to whole microseconds.
func (c *Config) CalculateIntervals() {
	c.RenderInterval = microsecondsPerSecond / int64(c.RenderFPS)
	c.MoveInterval = microsecondsPerSecond / int64(c.MoveFPS)
}

// DeriveSize fills in board dimensions not fixed by flags, using the
// terminal size minus margins. Emoji cells render two columns wide, so the
// derived width is halved in emoji mode. If the size query fails the
// defaults stand; a broken terminal query never aborts the game.
func (c *Config) DeriveSize(size func() (width, height int, err error)) {
	if !c.widthSet {
		c.Width = DefaultWidth
	}
	if !c.heightSet {
		c.Height = DefaultHeight
	}

	cols, rows, err := size()
	if err != nil {
		return
	}

	if !c.widthSet {
		c.Width = cols - widthMargin
		if c.Emoji {
			c.Width /= 2
		}
		if c.Width < minWidth {
			c.Width = minWidth
		}
	}
	if !c.heightSet {
		c.Height = rows - heightMargin
		if c.Height < minHeight {
			c.Height = minHeight
		}
	}
}

// Rules returns the simulation parameters for game.New.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		Width:      c.Width,
		Height:     c.Height,
		Wraparound: c.Wraparound,
		Mode:       c.Mode,
	}
}

// Usage prints the flag reference.
func Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [options]\n", program)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -w WIDTH      Set board width (default: terminal width)")
	fmt.Fprintln(w, "  -h HEIGHT     Set board height (default: terminal height)")
	fmt.Fprintln(w, "  -r FPS        Set render frequency in FPS (default: 30)")
	fmt.Fprintln(w, "  -m FPS        Set move frequency in FPS (default: 6)")
	fmt.Fprintln(w, "  --mode MODE   Set game mode: regular, greedy (default: regular)")
	fmt.Fprintln(w, "  --wraparound  Enable wraparound mode (walls teleport to opposite side)")
	fmt.Fprintln(w, "  --emoji       Enable emoji mode (use emojis for game elements)")
	fmt.Fprintln(w, "  --help        Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: For best visual experience, use a width:height ratio of approximately 2:1")
	fmt.Fprintln(w, "      (e.g., -w 40 -h 20 or -w 60 -h 30)")
	fmt.Fprintln(w, "      Higher render FPS makes input more responsive, higher move FPS makes game faster")
	fmt.Fprintln(w, "      Default mode: hitting walls causes death. Use --wraparound to pass through walls")
	fmt.Fprintln(w, "      Game modes: regular (classic snake), greedy (grows every move, find shortest path!)")
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

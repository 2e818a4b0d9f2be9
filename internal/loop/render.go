package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/slither/internal/config"
	"github.com/tomz197/slither/internal/draw"
	"github.com/tomz197/slither/internal/game"
)

// Cell contents in priority order; head beats body beats food.
const (
	cellEmpty byte = iota
	cellHead
	cellBody
	cellFood
)

// symbols is one presentation of the board cells. Emoji glyphs are double
// width, so the blank is two spaces to keep columns aligned.
type symbols struct {
	wall  string
	head  string
	body  string
	food  string
	blank string
}

var (
	asciiSymbols = symbols{wall: "#", head: "@", body: "o", food: "*", blank: " "}
	emojiSymbols = symbols{wall: "🧱", head: "🐍", body: "🟢", food: "🍎", blank: "  "}
)

// renderer draws the full board into a FrameWriter each frame. The frame
// starts with a cursor-home rather than a clear, so each redraw overwrites
// the previous one without flicker. The cell grid is preallocated and
// reused across frames.
type renderer struct {
	fw     *draw.FrameWriter
	width  int
	height int
	sym    symbols
	grid   []byte
}

func newRenderer(cfg *config.Config, w io.Writer) *renderer {
	sym := asciiSymbols
	if cfg.Emoji {
		sym = emojiSymbols
	}
	return &renderer{
		fw:     draw.NewFrameWriter(w),
		width:  cfg.Width,
		height: cfg.Height,
		sym:    sym,
		grid:   make([]byte, cfg.Width*cfg.Height),
	}
}

// frame renders the current game state and flushes it to the terminal.
func (r *renderer) frame(g *game.Game) error {
	clear(r.grid)
	food := g.Food()
	r.grid[food.Y*r.width+food.X] = cellFood
	for i, p := range g.Body() {
		kind := cellBody
		if i == 0 {
			kind = cellHead
		}
		r.grid[p.Y*r.width+p.X] = kind
	}

	draw.CursorHome(r.fw)
	if g.Paused() {
		fmt.Fprintf(r.fw, "Score: %d - PAUSED (Press SPACE to resume)", g.Score())
	} else {
		fmt.Fprintf(r.fw, "Score: %d", g.Score())
	}
	// Erase to end of line so a shrinking status (unpause) leaves no residue.
	r.fw.WriteString("\033[K\r\n\r\n")

	r.borderRow()
	for y := 0; y < r.height; y++ {
		r.fw.WriteString(r.sym.wall)
		row := r.grid[y*r.width : (y+1)*r.width]
		for _, cell := range row {
			switch cell {
			case cellHead:
				r.fw.WriteString(r.sym.head)
			case cellBody:
				r.fw.WriteString(r.sym.body)
			case cellFood:
				r.fw.WriteString(r.sym.food)
			default:
				r.fw.WriteString(r.sym.blank)
			}
		}
		r.fw.WriteString(r.sym.wall)
		r.fw.WriteString("\r\n")
	}
	r.borderRow()

	r.fw.WriteString("\r\nUse WASD or arrow keys to move, SPACE to pause, Q to quit\r\n")
	return r.fw.Flush()
}

// borderRow writes one horizontal wall spanning the board plus corners.
func (r *renderer) borderRow() {
	for i := 0; i < r.width+2; i++ {
		r.fw.WriteString(r.sym.wall)
	}
	r.fw.WriteString("\r\n")
}

// Package game implements the snake simulation: the snake body, food
// placement, scoring and the move state machine. It knows nothing about
// terminals or timing; the loop package drives it.
package game

import "math/rand"

// PointsPerFood is the score awarded for each piece of food eaten.
const PointsPerFood = 10

// foodAttemptsMultiplier bounds random food placement at
// foodAttemptsMultiplier * width * height samples before giving up.
const foodAttemptsMultiplier = 2

// Point is a board cell coordinate. The playable area is
// [0, width) x [0, height); the border drawn around it is not addressable.
type Point struct {
	X, Y int
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the per-move cell offset for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Mode selects the growth policy applied on each move.
type Mode int

const (
	// ModeRegular grows the snake only when it eats.
	ModeRegular Mode = iota
	// ModeGreedy grows the snake on every move, eaten or not.
	ModeGreedy
)

// Rules are the board parameters the simulation needs. They are fixed for
// the lifetime of a Game.
type Rules struct {
	Width      int
	Height     int
	Wraparound bool
	Mode       Mode
}

// snake is an ordered body with the head at index 0. The backing slice is
// preallocated to the maximum possible length (every board cell) so moves
// never allocate.
type snake struct {
	body   []Point
	length int
	dir    Direction
}

// Game holds all mutable simulation state. It is owned by a single loop
// and is not safe for concurrent use.
type Game struct {
	rules  Rules
	snake  snake
	food   Point
	score  int
	over   bool
	paused bool
	rng    *rand.Rand
}

// New creates a game with a three-cell snake at the board center heading
// right, and food placed on a free cell. rng is the placement randomness
// source; callers seed it once at startup.
func New(rules Rules, rng *rand.Rand) *Game {
	g := &Game{
		rules: rules,
		snake: snake{
			body: make([]Point, rules.Width*rules.Height),
			dir:  DirRight,
		},
		rng: rng,
	}

	cx := rules.Width / 2
	cy := rules.Height / 2
	g.snake.body[0] = Point{X: cx, Y: cy}
	g.snake.body[1] = Point{X: cx - 1, Y: cy}
	g.snake.body[2] = Point{X: cx - 2, Y: cy}
	g.snake.length = 3

	g.placeFood()
	return g
}

// Rules returns the board parameters the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Over reports whether the game has ended. Once true it never resets.
func (g *Game) Over() bool { return g.over }

// Paused reports whether move ticks are suspended.
func (g *Game) Paused() bool { return g.paused }

// Food returns the current food cell.
func (g *Game) Food() Point { return g.food }

// Head returns the snake's head cell.
func (g *Game) Head() Point { return g.snake.body[0] }

// Body returns the occupied snake cells, head first. The returned slice
// aliases internal state and is only valid until the next Move.
func (g *Game) Body() []Point { return g.snake.body[:g.snake.length] }

// Length returns the number of cells the snake occupies.
func (g *Game) Length() int { return g.snake.length }

// Direction returns the snake's current heading.
func (g *Game) Direction() Direction { return g.snake.dir }

// ChangeDirection requests a new heading, taking effect on the next move.
// A request for the exact opposite of the current heading is ignored, so
// the snake can never reverse into its own neck.
func (g *Game) ChangeDirection(d Direction) {
	if d == g.snake.dir.Opposite() {
		return
	}
	g.snake.dir = d
}

// TogglePause flips the paused flag. Rendering and input continue while
// paused; only move ticks are suspended.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// End terminates the game. Used for the quit command; indistinguishable
// from any other game-over as far as the loop is concerned.
func (g *Game) End() {
	g.over = true
}

// Move advances the snake by one cell in its current direction. It is a
// no-op when the game is over or paused. All failure modes (wall hit,
// self-collision, full board, greedy capacity exhaustion) end the game via
// the over flag; a rejected move mutates nothing else.
func (g *Game) Move() {
	if g.over || g.paused {
		return
	}

	head := g.snake.body[0]
	dx, dy := g.snake.dir.Delta()
	next := Point{X: head.X + dx, Y: head.Y + dy}

	if g.rules.Wraparound {
		next.X = (next.X + g.rules.Width) % g.rules.Width
		next.Y = (next.Y + g.rules.Height) % g.rules.Height
	} else if next.X < 0 || next.X >= g.rules.Width || next.Y < 0 || next.Y >= g.rules.Height {
		g.over = true
		return
	}

	// Food is checked on the prospective head before the collision scan:
	// when the food cell would also be a collision, the collision wins and
	// the food goes uneaten.
	ate := next == g.food

	for i := 1; i < g.snake.length; i++ {
		if g.snake.body[i] == next {
			g.over = true
			return
		}
	}

	switch g.rules.Mode {
	case ModeGreedy:
		if g.snake.length >= len(g.snake.body) {
			g.over = true
			return
		}
		for i := g.snake.length - 1; i >= 0; i-- {
			g.snake.body[i+1] = g.snake.body[i]
		}
		g.snake.body[0] = next
		g.snake.length++
	default:
		if ate && g.snake.length < len(g.snake.body) {
			// Growing: the old tail cell is kept, so extend the shift by one.
			g.snake.length++
		}
		for i := g.snake.length - 1; i > 0; i-- {
			g.snake.body[i] = g.snake.body[i-1]
		}
		g.snake.body[0] = next
	}

	if ate {
		g.score += PointsPerFood
		g.placeFood()
	}
}

// placeFood assigns a uniformly random free cell to the food. If the snake
// covers the whole board, or no free cell turns up within the retry bound,
// the game ends instead.
func (g *Game) placeFood() {
	total := g.rules.Width * g.rules.Height
	if g.snake.length >= total {
		g.over = true
		return
	}

	for attempts := 0; attempts < total*foodAttemptsMultiplier; attempts++ {
		p := Point{X: g.rng.Intn(g.rules.Width), Y: g.rng.Intn(g.rules.Height)}
		if !g.occupies(p) {
			g.food = p
			return
		}
	}
	g.over = true
}

// occupies reports whether any snake cell is at p.
func (g *Game) occupies(p Point) bool {
	for i := 0; i < g.snake.length; i++ {
		if g.snake.body[i] == p {
			return true
		}
	}
	return false
}

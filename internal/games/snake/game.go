package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game holds the complete state of one snake game.
// It is not safe for concurrent use; the host loop owns it.
type Game struct {
	bounds   core.Bounds
	interval time.Duration
	cellSize int
	rng      *rand.Rand
	tick     uint64

	// Snake state
	head      core.Point
	tail      []core.Point // Nearest-head first, tip last
	direction core.Direction
	pending   []core.Direction // Newest first

	food    core.Point
	elapsed time.Duration // Accumulated since the last step

	// Set once on the first terminal collision
	dead   bool
	reason Reason
}

// New creates a game for the given board configuration.
// The same seed always produces the same food sequence.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		bounds:   cfg.Bounds(),
		interval: cfg.TickInterval(),
		cellSize: cfg.CellSize,
	}
	g.Reset(seed)
	return g
}

// Reset restarts the game: head at the origin, no tail, standing still.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.head = core.Point{}
	g.tail = nil
	g.direction = core.DirNone
	g.pending = nil
	g.elapsed = 0
	g.dead = false
	g.reason = ReasonNone

	// Initial food sits halfway to the right wall on the head's row.
	g.food = core.Point{X: g.bounds.MaxX / 2, Y: 0}
	if g.food == g.head || !g.bounds.Contains(g.food) {
		g.spawnFood()
	}
}

// Bounds returns the board rectangle.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// TickInterval returns the time between steps.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// Dead reports whether the game has reached its terminal state.
func (g *Game) Dead() bool {
	return g.dead
}

// occupied reports whether p is covered by the head or any tail segment.
func (g *Game) occupied(p core.Point) bool {
	return p == g.head || g.tailContains(p)
}

func (g *Game) tailContains(p core.Point) bool {
	for _, seg := range g.tail {
		if seg == p {
			return true
		}
	}
	return false
}

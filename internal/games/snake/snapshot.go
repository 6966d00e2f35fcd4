package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning GameStateType = "running"
	StateDead    GameStateType = "dead"
)

// Snapshot is an immutable copy of the game state, used by the renderer and
// for determinism testing.
type Snapshot struct {
	Tick    uint64
	Bounds  core.Bounds
	Head    core.Point
	Tail    []core.Point // Nearest-head first
	Food    core.Point
	Dir     core.Direction
	Pending int // Queued direction changes
	State   GameStateType
	Reason  Reason
}

// Snapshot returns a copy of the current state. The tail slice is not shared
// with the game.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.dead {
		state = StateDead
	}

	tail := make([]core.Point, len(g.tail))
	copy(tail, g.tail)

	return Snapshot{
		Tick:    g.tick,
		Bounds:  g.bounds,
		Head:    g.head,
		Tail:    tail,
		Food:    g.food,
		Dir:     g.direction,
		Pending: len(g.pending),
		State:   state,
		Reason:  g.reason,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Direction: %s, Pending: %d\n", g.tick, g.direction, len(g.pending))
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d), Tail len: %d\n", g.head.X, g.head.Y, g.food.X, g.food.Y, len(g.tail))
	fmt.Fprintf(&b, "Dead: %v, Reason: %q\n", g.dead, g.reason)
	return b.String()
}

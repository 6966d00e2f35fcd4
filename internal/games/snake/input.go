package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// OnKey queues the direction bound to key. Non-movement keys, and every key
// after the game has ended, are ignored.
//
// Once the snake has a body, a direction that would reverse it is discarded
// right after being queued: reversing the current direction, or reversing the
// direction queued just before it.
func (g *Game) OnKey(key string) {
	if g.dead {
		return
	}
	dir, ok := core.DirectionForKey(key)
	if !ok {
		return
	}

	g.pending = append([]core.Direction{dir}, g.pending...)

	if len(g.tail) == 0 {
		return
	}
	if g.pending[0] == core.Opposite(g.direction) ||
		(len(g.pending) > 1 && g.pending[0] == core.Opposite(g.pending[1])) {
		g.pending = g.pending[1:]
	}
}

// nextDirection consumes the oldest queued direction. Entries that would
// reverse a snake with a body are dropped; with nothing usable queued the
// current direction is kept.
func (g *Game) nextDirection() core.Direction {
	for len(g.pending) > 0 {
		last := len(g.pending) - 1
		dir := g.pending[last]
		g.pending = g.pending[:last]
		if len(g.tail) > 0 && dir == core.Opposite(g.direction) {
			continue
		}
		return dir
	}
	return g.direction
}

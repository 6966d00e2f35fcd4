package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status tells the host whether the simulation goes on.
type Status int

const (
	StatusContinue Status = iota
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason names the terminal condition that ended a game.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonSelfCollision Reason = "self-collision"
	ReasonWallCollision Reason = "wall-collision"
	ReasonBoardFull     Reason = "board-full" // No free cell left for food
)

// Result is returned by Tick.
type Result struct {
	Status Status
	Reason Reason // Set when Status is StatusTerminated
	Moved  bool   // A step was taken on this call
	Ate    bool   // Food was eaten on this call
}

// Terminated reports whether the game has ended.
func (r Result) Terminated() bool {
	return r.Status == StatusTerminated
}

// Tick accumulates delta and advances the snake by one cell each time the
// tick interval has been reached. Once dead, Tick keeps returning the same
// terminated result without touching the state.
func (g *Game) Tick(delta time.Duration) Result {
	if g.dead {
		return Result{Status: StatusTerminated, Reason: g.reason}
	}

	g.elapsed += delta
	if g.elapsed < g.interval {
		return Result{Status: StatusContinue}
	}
	g.elapsed = 0
	g.tick++

	g.direction = g.nextDirection()

	// Shift the body: the tip cell is vacated and the old head becomes the
	// first segment. A bodiless snake vacates its head cell.
	vacated := g.head
	var neck core.Point
	hasNeck := len(g.tail) > 0
	if hasNeck {
		neck = g.tail[0]
		vacated = g.tail[len(g.tail)-1]
		copy(g.tail[1:], g.tail[:len(g.tail)-1])
		g.tail[0] = g.head
	}

	g.head = g.head.Add(g.direction.Delta())

	// Moving back onto the neck is a reversal through the body, even when
	// the neck was also the tip that just moved away.
	if g.tailContains(g.head) || (hasNeck && g.head == neck) {
		return g.terminate(ReasonSelfCollision)
	}
	if !g.bounds.Contains(g.head) {
		return g.terminate(ReasonWallCollision)
	}

	if g.head == g.food {
		// Grow into the cell the body just left so the new segment never
		// overlaps the head.
		g.tail = append(g.tail, vacated)
		if !g.spawnFood() {
			return g.terminate(ReasonBoardFull)
		}
		return Result{Status: StatusContinue, Moved: true, Ate: true}
	}

	return Result{Status: StatusContinue, Moved: true}
}

func (g *Game) terminate(reason Reason) Result {
	g.dead = true
	g.reason = reason
	return Result{Status: StatusTerminated, Reason: reason, Moved: true}
}

// spawnFood moves the food to a random cell not covered by the snake.
// Returns false when the snake covers the whole board.
func (g *Game) spawnFood() bool {
	if 1+len(g.tail) >= g.bounds.Cells() {
		return false
	}

	// Rejection sampling: retry until the candidate is free
	for {
		candidate := core.Point{
			X: g.bounds.MinX + g.rng.Intn(g.bounds.Width()),
			Y: g.bounds.MinY + g.rng.Intn(g.bounds.Height()),
		}
		if !g.occupied(candidate) {
			g.food = candidate
			return true
		}
	}
}

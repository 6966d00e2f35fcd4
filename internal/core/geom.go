// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell coordinate on the board. Y grows upwards.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four movement directions, or None for standing still.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Opposite returns the reverse of d. None is its own opposite.
func Opposite(d Direction) Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return Opposite(d)
}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	switch d {
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	case DirUp:
		return Point{Y: 1}
	case DirDown:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Bounds is an inclusive rectangle of board cells.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// CenteredBounds returns a w x h board centered on the origin.
// Odd sizes are symmetric; even sizes get the extra column/row on the positive side.
func CenteredBounds(w, h int) Bounds {
	minX := -((w - 1) / 2)
	minY := -((h - 1) / 2)
	return Bounds{
		MinX: minX,
		MaxX: minX + w - 1,
		MinY: minY,
		MaxY: minY + h - 1,
	}
}

// Width returns the number of columns.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Cells returns the total number of cells.
func (b Bounds) Cells() int {
	return b.Width() * b.Height()
}

// Contains returns true if p lies on the board.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the title line plus its separator.
const hudHeight = 2

// Glyphs used on the board.
const (
	glyphBody = '█'
	glyphTip  = '▓'
	glyphFood = '●'
	glyphDead = '✕'
)

// RequiredSize returns the smallest screen that fits the framed board plus
// the HUD.
func RequiredSize(b core.Bounds, cellSize int) (w, h int) {
	return b.Width()*cellSize + 2, b.Height() + 2 + hudHeight
}

// Fits reports whether the board can be drawn on a w x h screen.
func (g *Game) Fits(w, h int) bool {
	rw, rh := RequiredSize(g.bounds, g.cellSize)
	return w >= rw && h >= rh
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cellSize)
}

// RenderSnapshot draws a snapshot: HUD, framed checkerboard, food, tail and
// head. Overlays are left to the host.
func RenderSnapshot(dst *core.Screen, snap Snapshot, cellSize int) {
	dst.Clear()
	renderHUD(dst, snap)

	rw, rh := RequiredSize(snap.Bounds, cellSize)
	if dst.Width() < rw || dst.Height() < rh {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", rw, rh), core.ColorAlert)
		return
	}

	v := boardView{
		bounds:   snap.Bounds,
		cellSize: cellSize,
		originX:  (dst.Width()-rw)/2 + 1,
		originY:  hudHeight + 1,
	}

	dst.DrawBox(core.NewRect(v.originX-1, v.originY-1, rw, snap.Bounds.Height()+2), core.ColorDim)
	v.background(dst)
	v.fill(dst, snap.Food, glyphFood, core.ColorFood, false)

	for i, seg := range snap.Tail {
		glyph := glyphBody
		if i == len(snap.Tail)-1 {
			glyph = glyphTip
		}
		v.fill(dst, seg, glyph, core.ColorTail, true)
	}

	if snap.State == StateDead {
		v.fill(dst, snap.Head, glyphDead, core.ColorAlert, false)
	} else {
		v.fill(dst, snap.Head, glyphBody, core.ColorHead, true)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, "SNAKE", core.ColorHead)

	size := fmt.Sprintf("%dx%d", snap.Bounds.Width(), snap.Bounds.Height())
	dst.DrawText(dst.Width()-len(size)-1, 0, size, core.ColorDim)

	for x := range dst.Width() {
		dst.Set(x, 1, '─', core.ColorDim)
	}
}

// boardView maps board cells to screen positions. Board Y grows upwards,
// screen rows grow downwards.
type boardView struct {
	bounds   core.Bounds
	cellSize int
	originX  int
	originY  int
}

func (v boardView) screenPos(p core.Point) (x, y int) {
	return v.originX + (p.X-v.bounds.MinX)*v.cellSize, v.originY + (v.bounds.MaxY - p.Y)
}

func (v boardView) shade(p core.Point) core.Color {
	if (p.X+p.Y)&1 == 0 {
		return core.ColorBoardDark
	}
	return core.ColorBoardLight
}

func (v boardView) background(dst *core.Screen) {
	for y := v.bounds.MinY; y <= v.bounds.MaxY; y++ {
		for x := v.bounds.MinX; x <= v.bounds.MaxX; x++ {
			p := core.Point{X: x, Y: y}
			sx, sy := v.screenPos(p)
			for i := range v.cellSize {
				dst.SetCell(sx+i, sy, core.Cell{Rune: ' ', Bg: v.shade(p)})
			}
		}
	}
}

// fill draws glyph over a cell. Solid glyphs cover the full cell width;
// others are drawn once at the cell's first column.
func (v boardView) fill(dst *core.Screen, p core.Point, glyph rune, fg core.Color, solid bool) {
	if !v.bounds.Contains(p) {
		return
	}
	sx, sy := v.screenPos(p)
	n := 1
	if solid {
		n = v.cellSize
	}
	for i := range n {
		dst.Set(sx+i, sy, glyph, fg)
	}
}

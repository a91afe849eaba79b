package tower

import (
	"math"

	"github.com/vovakirdan/lava-tower/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Viewport maps the playfield onto the terminal grid. Playfield y grows
// upwards while screen rows grow downwards.
type Viewport struct {
	Cols, Rows int     // Cells available to the playfield
	Top        int     // First screen row of the playfield
	W, H       float64 // Playfield size in units
}

// NewViewport fits a playfield of size w x h into a screen, leaving the
// HUD rows on top.
func NewViewport(screenW, screenH int, w, h float64) Viewport {
	return Viewport{
		Cols: max(screenW, 1),
		Rows: max(screenH-hudRows, 1),
		Top:  hudRows,
		W:    w,
		H:    h,
	}
}

func (v Viewport) col(x float64) float64 { return x / v.W * float64(v.Cols) }
func (v Viewport) row(y float64) float64 { return (v.H - y) / v.H * float64(v.Rows) }

// Cell returns the screen cell containing a playfield point, clamped to the
// playfield area.
func (v Viewport) Cell(p core.Vec) (x, y int) {
	x = core.Clamp(int(math.Floor(v.col(p.X))), 0, v.Cols-1)
	y = core.Clamp(int(math.Floor(v.row(p.Y))), 0, v.Rows-1)
	return x, y + v.Top
}

// Visible reports whether a playfield point lies inside the drawn area.
func (v Viewport) Visible(p core.Vec) bool {
	return p.X >= 0 && p.X <= v.W && p.Y >= 0 && p.Y <= v.H
}

// Rect returns the smallest cell rectangle covering a box, at least one
// cell in each direction.
func (v Viewport) Rect(b core.Box) core.Rect {
	x0 := int(math.Floor(v.col(b.X)))
	x1 := int(math.Ceil(v.col(b.X + b.W)))
	y0 := int(math.Floor(v.row(b.Y + b.H)))
	y1 := int(math.Ceil(v.row(b.Y)))
	return core.NewRect(x0, y0+v.Top, max(x1-x0, 1), max(y1-y0, 1))
}

// Point returns the playfield coordinates of a cell's centre. Cells above
// the playfield map above its top edge.
func (v Viewport) Point(x, y int) core.Vec {
	return core.Vec{
		X: (float64(x) + 0.5) / float64(v.Cols) * v.W,
		Y: v.H - (float64(y-v.Top)+0.5)/float64(v.Rows)*v.H,
	}
}

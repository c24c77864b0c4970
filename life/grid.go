package life

import (
	"sort"
	"strings"
)

// Grid is a sparse snapshot of live cells. Width and Height declare the
// extent the caller cares about; live cells are deliberately not clamped to
// it. The declared extent is a sizing and rendering hint, never a
// simulation boundary, so patterns are free to walk off the original
// rectangle (and into negative coordinates) as they evolve.
type Grid struct {
	Width, Height int64

	cells map[Cell]struct{}
}

// NewGrid returns a grid with the given declared extent and initial live
// cells.
func NewGrid(w, h int64, cells ...Cell) Grid {
	g := Grid{Width: w, Height: h, cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		g.cells[c] = struct{}{}
	}
	return g
}

// Alive reports whether the cell at (x, y) is live.
func (g Grid) Alive(x, y int64) bool {
	_, ok := g.cells[Cell{X: x, Y: y}]
	return ok
}

// Set makes the cell at (x, y) live or dead.
func (g *Grid) Set(x, y int64, alive bool) {
	if g.cells == nil {
		g.cells = make(map[Cell]struct{})
	}
	if alive {
		g.cells[Cell{X: x, Y: y}] = struct{}{}
		return
	}
	delete(g.cells, Cell{X: x, Y: y})
}

// Population returns the number of live cells.
func (g Grid) Population() int { return len(g.cells) }

// Cells returns the live cells sorted row-major (Y then X), so that two
// equal grids always flatten identically.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Bounds returns the inclusive bounding box of the live cells. ok is false
// when the grid is empty.
func (g Grid) Bounds() (min, max Cell, ok bool) {
	for c := range g.cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}

// Equal reports whether two grids hold the same live set. The declared
// extents are ignored: they are presentation, not state.
func (g Grid) Equal(o Grid) bool {
	if len(g.cells) != len(o.cells) {
		return false
	}
	for c := range g.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// String renders the declared extent with 'O' for live and '.' for dead
// cells, one row per line. Cells outside the extent are not shown.
func (g Grid) String() string {
	var b strings.Builder
	for y := int64(0); y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := int64(0); x < g.Width; x++ {
			if g.Alive(x, y) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

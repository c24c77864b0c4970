// Package lifetesting provides shared test support for the life and
// hashlife packages: the catalog of well-known Life patterns, coordinate
// helpers, and deterministic random soups for equivalence testing.
package lifetesting

import (
	"math/rand"

	"github.com/lifelab/go-hashlife/life"
)

// Grid wraps a cell list in a life.Grid with the given declared extent.
func Grid(w, h int64, cells []life.Cell) life.Grid {
	return life.NewGrid(w, h, cells...)
}

// Offset translates every cell by (dx, dy).
func Offset(cells []life.Cell, dx, dy int64) []life.Cell {
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		out[i] = life.Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

// Center translates the pattern so its bounding box sits in the middle of
// a w x h extent, wherever the pattern was anchored originally.
func Center(cells []life.Cell, w, h int64) []life.Cell {
	if len(cells) == 0 {
		return nil
	}
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	dx := (w-(maxX-minX+1))/2 - minX
	dy := (h-(maxY-minY+1))/2 - minY
	return Offset(cells, dx, dy)
}

// RandomSoup returns a w x h grid where each cell is live with the given
// probability, drawn from a fixed-seed source so failures reproduce.
func RandomSoup(seed int64, w, h int64, density float64) life.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := life.NewGrid(w, h)
	for y := int64(0); y < h; y++ {
		for x := int64(0); x < w; x++ {
			if rng.Float64() < density {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

package life

// Step advances g by one generation on the unbounded plane. Only the live
// cells and their eight-neighbour fringe can change state, so the work is
// proportional to the population, not the extent.
//
// Rules with a birth-on-zero condition are evaluated over that same
// candidate set; the infinitely many isolated dead cells of the plane are
// not materialized.
func Step(g Grid, r Rule) Grid {
	counts := make(map[Cell]int, len(g.cells)*4)
	for c := range g.cells {
		for dy := int64(-1); dy <= 1; dy++ {
			for dx := int64(-1); dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[Cell{X: c.X + dx, Y: c.Y + dy}]++
			}
		}
	}

	next := Grid{Width: g.Width, Height: g.Height, cells: make(map[Cell]struct{}, len(g.cells))}
	for c, n := range counts {
		if r.Alive(g.Alive(c.X, c.Y), n) {
			next.cells[c] = struct{}{}
		}
	}
	// A live cell with no live neighbours never appears in counts.
	if r.Survive(0) {
		for c := range g.cells {
			if _, ok := counts[c]; !ok {
				next.cells[c] = struct{}{}
			}
		}
	}
	return next
}

// StepN applies Step n times. It is the direct-simulation oracle the
// hashlife engine is tested against.
func StepN(g Grid, r Rule, n uint64) Grid {
	for ; n > 0; n-- {
		g = Step(g, r)
	}
	return g
}

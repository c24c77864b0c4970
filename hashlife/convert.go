package hashlife

import (
	"math/bits"

	"github.com/lifelab/go-hashlife/life"
)

// Pattern is the opaque handle an engine hands its callers: an interned
// tree plus the world coordinate of its north-west corner, and the extent
// the pattern was imported with. Patterns are cheap values; old handles
// stay valid after Step because nodes are shared, never copied or mutated.
type Pattern struct {
	root   Ref
	ox, oy int64
	w, h   int64
}

// FromGrid imports a sparse grid, padding the live bounding box to a
// power-of-two square of at least the base-case size and interning its
// tree bottom-up. Regions holding no live cells collapse to canonical
// empty nodes without traversal.
func (e *Engine) FromGrid(g life.Grid) (Pattern, error) {
	min, max, ok := g.Bounds()
	if !ok {
		return Pattern{root: e.store.Empty(MinEvolveLevel), w: g.Width, h: g.Height}, nil
	}
	extent := max.X - min.X + 1
	if h := max.Y - min.Y + 1; h > extent {
		extent = h
	}
	level := sideLevel(uint64(extent))
	if level < MinEvolveLevel {
		level = MinEvolveLevel
	}
	root, err := e.build(g.Cells(), min.X, min.Y, level)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{root: root, ox: min.X, oy: min.Y, w: g.Width, h: g.Height}, nil
}

// build interns the tree for the square of the given level whose NW corner
// is at world (x, y), holding exactly the given live cells. The cell list
// is partitioned by quadrant on the way down, so the cost is proportional
// to population times depth, never to the area of the square.
func (e *Engine) build(cells []life.Cell, x, y int64, level uint32) (Ref, error) {
	if len(cells) == 0 {
		return e.store.Empty(level), nil
	}
	if level == 0 {
		// A non-empty level-0 region is exactly one live cell.
		return e.store.Leaf(true), nil
	}
	half := sideOf(level - 1)
	var nwc, nec, swc, sec []life.Cell
	for _, c := range cells {
		east, south := c.X >= x+half, c.Y >= y+half
		switch {
		case !east && !south:
			nwc = append(nwc, c)
		case east && !south:
			nec = append(nec, c)
		case !east && south:
			swc = append(swc, c)
		default:
			sec = append(sec, c)
		}
	}
	nw, err := e.build(nwc, x, y, level-1)
	if err != nil {
		return NoRef, err
	}
	ne, err := e.build(nec, x+half, y, level-1)
	if err != nil {
		return NoRef, err
	}
	sw, err := e.build(swc, x, y+half, level-1)
	if err != nil {
		return NoRef, err
	}
	se, err := e.build(sec, x+half, y+half, level-1)
	if err != nil {
		return NoRef, err
	}
	return e.store.Intern(level, nw, ne, sw, se)
}

// ToGrid exports the pattern as a sparse grid in the original coordinate
// space. Subtrees with zero population are pruned in O(1), so arbitrarily
// large empty padding costs nothing to skip.
func (e *Engine) ToGrid(p Pattern) (life.Grid, error) {
	if _, err := e.store.resident(p.root); err != nil {
		return life.Grid{}, err
	}
	g := life.NewGrid(p.w, p.h)
	e.flatten(p.root, p.ox, p.oy, &g)
	if _, max, ok := g.Bounds(); ok {
		if max.X+1 > g.Width {
			g.Width = max.X + 1
		}
		if max.Y+1 > g.Height {
			g.Height = max.Y + 1
		}
	}
	return g, nil
}

func (e *Engine) flatten(n Ref, x, y int64, g *life.Grid) {
	nd := e.store.at(n)
	if nd.population == 0 {
		return
	}
	if nd.level == 0 {
		g.Set(x, y, true)
		return
	}
	half := sideOf(nd.level - 1)
	e.flatten(nd.nw, x, y, g)
	e.flatten(nd.ne, x+half, y, g)
	e.flatten(nd.sw, x, y+half, g)
	e.flatten(nd.se, x+half, y+half, g)
}

// Population returns the pattern's live-cell count in O(1).
func (e *Engine) Population(p Pattern) (uint64, error) {
	return e.store.Population(p.root)
}

// Step advances the pattern by exactly gens generations, decomposing gens
// into power-of-two leaps, highest first. Each leap re-pads the tree so
// growth can never reach the discarded border (see leap). Counts of 1<<62
// and above are rejected with ErrGenerationLimit: the padding such a leap
// needs pushes side lengths past the int64 coordinate range.
func (e *Engine) Step(p Pattern, gens uint64) (Pattern, error) {
	if gens >= 1<<62 {
		return Pattern{}, ErrGenerationLimit
	}
	if _, err := e.store.resident(p.root); err != nil {
		return Pattern{}, err
	}
	for k := uint32(bits.Len64(gens)); k > 0; k-- {
		if gens&(1<<(k-1)) == 0 {
			continue
		}
		var err error
		if p, err = e.leap(p, k-1); err != nil {
			return Pattern{}, err
		}
	}
	return p, nil
}

// leap advances by 2^exp generations. Padding first: empty border rings
// are added until all population sits in the centered quarter-side block
// and the root level admits the leap. Influence spreads at most one cell
// per generation, and 2^exp never exceeds the quarter-side margin, so the
// discarded border is provably dead; truncating live cells is impossible
// by construction.
func (e *Engine) leap(p Pattern, exp uint32) (Pattern, error) {
	for {
		nd := e.store.at(p.root)
		if nd.level >= exp+3 && e.centered(nd) {
			break
		}
		var err error
		if p, err = e.expand(p); err != nil {
			return Pattern{}, err
		}
	}
	level := e.store.at(p.root).level
	root, err := e.advance(p.root, exp)
	if err != nil {
		return Pattern{}, err
	}
	quarter := sideOf(level - 2)
	return Pattern{root: root, ox: p.ox + quarter, oy: p.oy + quarter, w: p.w, h: p.h}, nil
}

// centered reports whether every live cell lies in the centered
// quarter-side block, leaving a full quarter of dead margin on every side.
// Populations make this an O(1) structural check. Requires level >= 3.
func (e *Engine) centered(nd node) bool {
	if nd.level < 3 {
		return false
	}
	nw, ne := e.store.at(nd.nw), e.store.at(nd.ne)
	sw, se := e.store.at(nd.sw), e.store.at(nd.se)
	inner := e.store.at(e.store.at(nw.se).se).population +
		e.store.at(e.store.at(ne.sw).sw).population +
		e.store.at(e.store.at(sw.ne).ne).population +
		e.store.at(e.store.at(se.nw).nw).population
	return inner == nd.population
}

// expand adds one ring of empty border: the old square becomes the center
// of a node one level up, and the origin shifts by half the old side.
func (e *Engine) expand(p Pattern) (Pattern, error) {
	nd := e.store.at(p.root)
	empty := e.store.Empty(nd.level - 1)
	nw, err := e.store.Intern(nd.level, empty, empty, empty, nd.nw)
	if err != nil {
		return Pattern{}, err
	}
	ne, err := e.store.Intern(nd.level, empty, empty, nd.ne, empty)
	if err != nil {
		return Pattern{}, err
	}
	sw, err := e.store.Intern(nd.level, empty, nd.sw, empty, empty)
	if err != nil {
		return Pattern{}, err
	}
	se, err := e.store.Intern(nd.level, nd.se, empty, empty, empty)
	if err != nil {
		return Pattern{}, err
	}
	root, err := e.store.Intern(nd.level+1, nw, ne, sw, se)
	if err != nil {
		return Pattern{}, err
	}
	half := sideOf(nd.level - 1)
	return Pattern{root: root, ox: p.ox - half, oy: p.oy - half, w: p.w, h: p.h}, nil
}

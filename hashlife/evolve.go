package hashlife

// Evolve computes the centered future of n: the canonical level-1 node
// occupying the middle of n's square after 2^(level-2) generations under
// the engine's rule.
//
// Requesting evolution below level 2 is a contract violation, not a
// recoverable condition, and returns ErrLevelTooLow.
func (e *Engine) Evolve(n Ref) (Ref, error) {
	nd, err := e.store.resident(n)
	if err != nil {
		return NoRef, err
	}
	if nd.level < MinEvolveLevel {
		return NoRef, ErrLevelTooLow
	}
	return e.evolve(n)
}

// Advance computes the centered future of n after 2^exp generations, for
// any exp up to the node's maximal implied step of level-2. It is the
// primitive Step uses to realise generation counts that are not a single
// maximal leap.
func (e *Engine) Advance(n Ref, exp uint32) (Ref, error) {
	nd, err := e.store.resident(n)
	if err != nil {
		return NoRef, err
	}
	if nd.level < MinEvolveLevel {
		return NoRef, ErrLevelTooLow
	}
	if exp > nd.level-2 {
		return NoRef, ErrBadExponent
	}
	return e.advance(n, exp)
}

// evolve is the canonical maximal step. n is resident at level >= 2.
func (e *Engine) evolve(n Ref) (Ref, error) {
	nd := e.store.at(n)

	// An all-dead region's future is itself, at any scale, unless the rule
	// births on zero neighbours. The check is O(1) and is what makes
	// sparse patterns cheap: empty quadrants never reach the base case.
	if nd.population == 0 && !e.rule.Birth(0) {
		return e.store.Empty(nd.level - 1), nil
	}

	if r, ok := e.cacheGet(n); ok {
		return r, nil
	}

	var result Ref
	var err error
	if nd.level == 2 {
		result, err = e.evolveBase(nd)
	} else {
		result, err = e.evolveComposite(nd)
	}
	if err != nil {
		return NoRef, err
	}
	e.cachePut(n, result)
	return result, nil
}

// evolveBase advances the center 2x2 of a 4x4 square one generation by
// direct neighbour counting. This is the only raw simulation in the
// engine; everything above it is composition of cached results.
func (e *Engine) evolveBase(nd node) (Ref, error) {
	e.countBase()

	// Flatten the sixteen leaves row-major. Quadrants and their children
	// are visited in the fixed NW, NE, SW, SE order.
	var cells [4][4]bool
	for qi, q := range [4]Ref{nd.nw, nd.ne, nd.sw, nd.se} {
		qd := e.store.at(q)
		qx, qy := (qi&1)*2, (qi>>1)*2
		for ci, c := range [4]Ref{qd.nw, qd.ne, qd.sw, qd.se} {
			cells[qy+ci>>1][qx+ci&1] = c == liveLeaf
		}
	}

	var next [2][2]bool
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			live := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && cells[y+dy][x+dx] {
						live++
					}
				}
			}
			next[y-1][x-1] = e.rule.Alive(cells[y][x], live)
		}
	}

	return e.store.Intern(1,
		e.store.Leaf(next[0][0]), e.store.Leaf(next[0][1]),
		e.store.Leaf(next[1][0]), e.store.Leaf(next[1][1]))
}

// evolveComposite is the maximal step for level >= 3: two recursive rounds
// of 2^(level-3) generations each, so the leap doubles with every level.
func (e *Engine) evolveComposite(nd node) (Ref, error) {
	sub, err := e.subsquares(nd)
	if err != nil {
		return NoRef, err
	}

	// Round one: the nine overlapping subsquares' futures, each a level-2
	// square advanced 2^(level-3) generations.
	var r [9]Ref
	for i, sq := range sub {
		if r[i], err = e.evolve(sq); err != nil {
			return NoRef, err
		}
	}

	// Round two: reassemble the nine futures into four overlapping level-1
	// blocks and evolve those, landing on the centered square at the full
	// 2^(level-2) generations.
	var out [4]Ref
	for i, q := range [4][4]int{
		{0, 1, 3, 4},
		{1, 2, 4, 5},
		{3, 4, 6, 7},
		{4, 5, 7, 8},
	} {
		block, err := e.store.Intern(nd.level-1, r[q[0]], r[q[1]], r[q[2]], r[q[3]])
		if err != nil {
			return NoRef, err
		}
		if out[i], err = e.evolve(block); err != nil {
			return NoRef, err
		}
	}
	return e.store.Intern(nd.level-1, out[0], out[1], out[2], out[3])
}

// advance is the sub-maximal step: the centered future after 2^exp
// generations, exp <= level-2. n is resident at level >= 2.
func (e *Engine) advance(n Ref, exp uint32) (Ref, error) {
	nd := e.store.at(n)
	if exp == nd.level-2 {
		return e.evolve(n)
	}
	if nd.population == 0 && !e.rule.Birth(0) {
		return e.store.Empty(nd.level - 1), nil
	}
	if r, ok := e.partialGet(n, exp); ok {
		return r, nil
	}

	// exp < level-2 implies level >= 3 here, so the decomposition below is
	// always available. The subsquares advance the full 2^exp themselves;
	// the reassembled blocks then contribute geometry only, via their
	// centers, with no second evolution round.
	sub, err := e.subsquares(nd)
	if err != nil {
		return NoRef, err
	}
	var r [9]Ref
	for i, sq := range sub {
		if r[i], err = e.advance(sq, exp); err != nil {
			return NoRef, err
		}
	}
	var out [4]Ref
	for i, q := range [4][4]int{
		{0, 1, 3, 4},
		{1, 2, 4, 5},
		{3, 4, 6, 7},
		{4, 5, 7, 8},
	} {
		block, err := e.store.Intern(nd.level-1, r[q[0]], r[q[1]], r[q[2]], r[q[3]])
		if err != nil {
			return NoRef, err
		}
		if out[i], err = e.center(block); err != nil {
			return NoRef, err
		}
	}
	result, err := e.store.Intern(nd.level-1, out[0], out[1], out[2], out[3])
	if err != nil {
		return NoRef, err
	}
	e.partialPut(n, exp, result)
	return result, nil
}

// subsquares returns the nine overlapping level-1 squares of nd in
// row-major NW..SE order: the four quadrants, the four edge-centered
// squares, and the centered square. The fixed ordering is what keeps
// result trees bit-reproducible across engines.
func (e *Engine) subsquares(nd node) ([9]Ref, error) {
	nw, ne := e.store.at(nd.nw), e.store.at(nd.ne)
	sw, se := e.store.at(nd.sw), e.store.at(nd.se)
	lvl := nd.level - 1

	var sub [9]Ref
	var err error
	sub[0], sub[2], sub[6], sub[8] = nd.nw, nd.ne, nd.sw, nd.se
	if sub[1], err = e.store.Intern(lvl, nw.ne, ne.nw, nw.se, ne.sw); err != nil {
		return sub, err
	}
	if sub[3], err = e.store.Intern(lvl, nw.sw, nw.se, sw.nw, sw.ne); err != nil {
		return sub, err
	}
	if sub[4], err = e.store.Intern(lvl, nw.se, ne.sw, sw.ne, se.nw); err != nil {
		return sub, err
	}
	if sub[5], err = e.store.Intern(lvl, ne.sw, ne.se, se.nw, se.ne); err != nil {
		return sub, err
	}
	if sub[7], err = e.store.Intern(lvl, sw.ne, se.nw, sw.se, se.sw); err != nil {
		return sub, err
	}
	return sub, nil
}

// center returns the centered level-1 square of a level >= 2 node.
func (e *Engine) center(n Ref) (Ref, error) {
	nd := e.store.at(n)
	nw, ne := e.store.at(nd.nw), e.store.at(nd.ne)
	sw, se := e.store.at(nd.sw), e.store.at(nd.se)
	return e.store.Intern(nd.level-1, nw.se, ne.sw, sw.ne, se.nw)
}

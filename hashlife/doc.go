package hashlife

/*

# Memoized hierarchical Life evolution (Gosper's hashlife)

This package evolves two-state cellular automata across enormous numbers of
generations in sublinear time by exploiting spatial and temporal
self-similarity.

## Representation

The plane is a quadtree. A node at level L covers a 2^L x 2^L square via
four level L-1 quadrant children, in fixed NW, NE, SW, SE order. Level 0
nodes are single cells and exactly two of them ever exist.

All nodes live in a single interning arena, the Store, and are referenced
by integer handle (Ref). The Store's lookup-or-insert is the only way a
node comes into existence, which is what enforces the canonicalization
invariant:

	two structurally identical regions are the SAME arena entry

Identity is therefore Ref equality, never deep comparison. Every node
caches its live-cell population at construction, so emptiness checks on
arbitrarily large regions are O(1).

## Evolution

For a node at level L >= 2, the Engine computes the centered level L-1
region as it stands 2^(L-2) generations in the future:

  - level 2 (a 4x4 square) is the base case: the center 2x2 advances one
    generation by direct neighbour counting against the rule. This is the
    only raw simulation in the engine.
  - level >= 3 decomposes the square into nine overlapping level L-1
    subsquares, evolves each recursively, reassembles the nine futures into
    four overlapping level L-1 blocks, and evolves those too. Each of the
    two recursive rounds contributes 2^(L-3) generations, so the leap truly
    doubles with every level.

Results are memoized per node ref. Because structurally identical regions
share one ref, the whole future of a region is computed exactly once no
matter how many times or places it occurs. A second cache, keyed by
(ref, exponent), covers the sub-maximal leaps needed to advance by
generation counts that are not powers of two.

The caches belong to an Engine instance and are valid for exactly one rule.
They are cleared only when the rule changes or the caller resets the
engine; simulation progress never invalidates them, which is the entire
point of memoization. There is no eviction: a long-lived engine grows with
the diversity of subregions it has seen, and callers needing bounded
memory call Reset, which is always safe and only ever costs recomputation.

## Boundary growth

Before every leap the engine re-pads the tree with empty border rings
until the whole population sits in the centered quarter-side block and the
root level admits the leap. Influence spreads at most one cell per
generation, so live cells can never reach the region a leap discards.
Truncation is a silent-correctness bug class this package structurally
rules out.

*/

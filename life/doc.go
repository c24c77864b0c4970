package life

/*

# Plain Life primitives

This package holds the value types shared across the module boundary and a
direct, non-memoized stepper that serves as the correctness oracle for the
hashlife engine:

  - Rule: a birth/survival predicate over live-neighbour counts, stored as
    two bitmasks. Rules are small comparable values, usable as map keys.
  - Grid: a sparse snapshot of live cells with a declared extent. The extent
    is a sizing and display hint only; the simulated plane is unbounded and
    cells may carry any int64 coordinates, including negative ones.
  - Step/StepN: one-generation-at-a-time evolution by raw neighbour
    counting over the live set and its fringe.

Nothing here is memoized or clever. The hashlife package must agree with
this one cell for cell, which is exactly what makes it useful.

*/

package hashlife

import "errors"

// Ref is a node arena index. Refs are only ever produced by a Store's
// factory methods; Ref equality is node identity.
type Ref uint32

// NoRef is the invalid ref, returned alongside a non-nil error.
const NoRef = ^Ref(0)

const (
	// deadLeaf and liveLeaf are the two canonical level-0 nodes. NewStore
	// interns them first, so their refs are fixed.
	deadLeaf Ref = 0
	liveLeaf Ref = 1
)

// MinEvolveLevel is the smallest level Evolve accepts. A 4x4 square is the
// base case; below it the centered future is undefined.
const MinEvolveLevel = 2

var (
	ErrForeignRef      = errors.New("hashlife: ref is not resident in this store")
	ErrLevelMismatch   = errors.New("hashlife: child level does not match parent level")
	ErrLevelTooLow     = errors.New("hashlife: node level below the 4x4 base case")
	ErrBadExponent     = errors.New("hashlife: step exponent exceeds level-2")
	ErrGenerationLimit = errors.New("hashlife: generation count exceeds 1<<62 - 1")
)

package life

import "errors"

// Cell identifies a single plane position. X grows rightward and Y grows
// downward, matching the usual row-by-row presentation of Life patterns.
type Cell struct {
	X, Y int64
}

// MaxNeighbors is the largest possible live-neighbour count in a Moore
// neighbourhood. Rule masks cover counts 0..MaxNeighbors inclusive.
const MaxNeighbors = 8

var (
	ErrBadNeighborCount = errors.New("life: neighbour count outside 0..8")
	ErrBadRuleString    = errors.New("life: malformed B/S rule string")
)

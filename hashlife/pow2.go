package hashlife

import "math/bits"

// sideLevel returns the smallest level whose side 2^level covers extent
// cells.
func sideLevel(extent uint64) uint32 {
	if extent <= 1 {
		return 0
	}
	return uint32(bits.Len64(extent - 1))
}

// sideOf returns the cell width of a node at the given level.
func sideOf(level uint32) int64 {
	return int64(1) << level
}

package lifetesting

import "github.com/lifelab/go-hashlife/life"

// The catalog below anchors every pattern at (0, 0) with X growing
// rightward and Y growing downward. Each function returns a fresh slice;
// callers may translate or mutate freely.

func cells(pairs ...[2]int64) []life.Cell {
	out := make([]life.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = life.Cell{X: p[0], Y: p[1]}
	}
	return out
}

// Block is the 2x2 still life.
func Block() []life.Cell {
	return cells([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{0, 1}, [2]int64{1, 1})
}

// Beehive is a six-cell still life.
func Beehive() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{2, 0}, [2]int64{0, 1}, [2]int64{3, 1},
		[2]int64{1, 2}, [2]int64{2, 2})
}

// Loaf is a seven-cell still life.
func Loaf() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{2, 0}, [2]int64{0, 1}, [2]int64{3, 1},
		[2]int64{1, 2}, [2]int64{3, 2}, [2]int64{2, 3})
}

// Boat is a five-cell still life.
func Boat() []life.Cell {
	return cells([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{0, 1}, [2]int64{2, 1},
		[2]int64{1, 2})
}

// Tub is a four-cell still life.
func Tub() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{0, 1}, [2]int64{2, 1}, [2]int64{1, 2})
}

// Blinker is the period-2 oscillator: three cells in a row.
func Blinker() []life.Cell {
	return cells([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{2, 0})
}

// Toad is a six-cell period-2 oscillator.
func Toad() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{2, 0}, [2]int64{3, 0},
		[2]int64{0, 1}, [2]int64{1, 1}, [2]int64{2, 1})
}

// Beacon is two diagonal blocks, period 2.
func Beacon() []life.Cell {
	return cells([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{0, 1}, [2]int64{1, 1},
		[2]int64{2, 2}, [2]int64{3, 2}, [2]int64{2, 3}, [2]int64{3, 3})
}

// Pulsar is the 48-cell period-3 oscillator in its symmetric phase.
func Pulsar() []life.Cell {
	runs := []int64{2, 3, 4, 8, 9, 10}
	edges := []int64{0, 5, 7, 12}
	var out []life.Cell
	for _, e := range edges {
		for _, r := range runs {
			out = append(out, life.Cell{X: r, Y: e}, life.Cell{X: e, Y: r})
		}
	}
	return out
}

// Pentadecathlon is the 12-cell period-15 oscillator.
func Pentadecathlon() []life.Cell {
	var out []life.Cell
	for x := int64(0); x < 10; x++ {
		if x == 2 || x == 7 {
			out = append(out, life.Cell{X: x, Y: 0}, life.Cell{X: x, Y: 2})
			continue
		}
		out = append(out, life.Cell{X: x, Y: 1})
	}
	return out
}

// Glider is the five-cell diagonal spaceship in the phase that translates
// by (1, 1) every four generations.
func Glider() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{2, 1}, [2]int64{0, 2}, [2]int64{1, 2}, [2]int64{2, 2})
}

// LWSS is the lightweight spaceship, period 4.
func LWSS() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{4, 0}, [2]int64{0, 1},
		[2]int64{0, 2}, [2]int64{4, 2},
		[2]int64{0, 3}, [2]int64{1, 3}, [2]int64{2, 3}, [2]int64{3, 3})
}

// MWSS is the middleweight spaceship. Like the LWSS it translates by
// (-2, 0) every four generations.
func MWSS() []life.Cell {
	return cells([2]int64{3, 0},
		[2]int64{1, 1}, [2]int64{5, 1},
		[2]int64{0, 2},
		[2]int64{0, 3}, [2]int64{5, 3},
		[2]int64{0, 4}, [2]int64{1, 4}, [2]int64{2, 4}, [2]int64{3, 4}, [2]int64{4, 4})
}

// HWSS is the heavyweight spaceship, the largest of the three standard
// orthogonal spaceships.
func HWSS() []life.Cell {
	return cells([2]int64{3, 0}, [2]int64{4, 0},
		[2]int64{1, 1}, [2]int64{6, 1},
		[2]int64{0, 2},
		[2]int64{0, 3}, [2]int64{6, 3},
		[2]int64{0, 4}, [2]int64{1, 4}, [2]int64{2, 4}, [2]int64{3, 4}, [2]int64{4, 4}, [2]int64{5, 4})
}

// RPentomino is the five-cell methuselah that runs for 1103 generations
// before stabilizing at population 116.
func RPentomino() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{2, 0}, [2]int64{0, 1}, [2]int64{1, 1}, [2]int64{1, 2})
}

// Diehard vanishes completely after 130 generations.
func Diehard() []life.Cell {
	return cells([2]int64{6, 0}, [2]int64{0, 1}, [2]int64{1, 1},
		[2]int64{1, 2}, [2]int64{5, 2}, [2]int64{6, 2}, [2]int64{7, 2})
}

// Acorn is the seven-cell methuselah.
func Acorn() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{3, 1},
		[2]int64{0, 2}, [2]int64{1, 2}, [2]int64{4, 2}, [2]int64{5, 2}, [2]int64{6, 2})
}

// GosperGliderGun emits a glider every 30 generations.
func GosperGliderGun() []life.Cell {
	return cells(
		[2]int64{24, 0},
		[2]int64{22, 1}, [2]int64{24, 1},
		[2]int64{12, 2}, [2]int64{13, 2}, [2]int64{20, 2}, [2]int64{21, 2}, [2]int64{34, 2}, [2]int64{35, 2},
		[2]int64{11, 3}, [2]int64{15, 3}, [2]int64{20, 3}, [2]int64{21, 3}, [2]int64{34, 3}, [2]int64{35, 3},
		[2]int64{0, 4}, [2]int64{1, 4}, [2]int64{10, 4}, [2]int64{16, 4}, [2]int64{20, 4}, [2]int64{21, 4},
		[2]int64{0, 5}, [2]int64{1, 5}, [2]int64{10, 5}, [2]int64{14, 5}, [2]int64{16, 5}, [2]int64{17, 5}, [2]int64{22, 5}, [2]int64{24, 5},
		[2]int64{10, 6}, [2]int64{16, 6}, [2]int64{24, 6},
		[2]int64{11, 7}, [2]int64{15, 7},
		[2]int64{12, 8}, [2]int64{13, 8},
	)
}

// SimkinGliderGun emits a glider every 120 generations from a smaller
// footprint than the Gosper gun.
func SimkinGliderGun() []life.Cell {
	return cells(
		[2]int64{0, 0}, [2]int64{1, 0}, [2]int64{7, 0}, [2]int64{8, 0},
		[2]int64{0, 1}, [2]int64{1, 1}, [2]int64{7, 1}, [2]int64{8, 1},
		[2]int64{4, 3}, [2]int64{5, 3},
		[2]int64{4, 4}, [2]int64{5, 4},
		[2]int64{22, 9}, [2]int64{23, 9}, [2]int64{25, 9}, [2]int64{26, 9},
		[2]int64{21, 10}, [2]int64{27, 10},
		[2]int64{21, 11}, [2]int64{28, 11}, [2]int64{31, 11}, [2]int64{32, 11},
		[2]int64{21, 12}, [2]int64{22, 12}, [2]int64{23, 12}, [2]int64{27, 12}, [2]int64{31, 12}, [2]int64{32, 12},
		[2]int64{26, 13},
		[2]int64{20, 17}, [2]int64{21, 17},
		[2]int64{20, 18},
		[2]int64{21, 19}, [2]int64{22, 19}, [2]int64{23, 19},
		[2]int64{23, 20},
	)
}

// PufferTrain is the classic puffer: a central engine flanked by two
// spaceship escorts, moving at c/2 and leaving ash behind.
func PufferTrain() []life.Cell {
	return cells(
		[2]int64{3, 0},
		[2]int64{4, 1},
		[2]int64{0, 2}, [2]int64{4, 2},
		[2]int64{1, 3}, [2]int64{2, 3}, [2]int64{3, 3}, [2]int64{4, 3},
		[2]int64{0, 7},
		[2]int64{2, 8},
		[2]int64{3, 9},
		[2]int64{3, 10},
		[2]int64{2, 11},
		[2]int64{3, 14},
		[2]int64{4, 15},
		[2]int64{0, 16}, [2]int64{4, 16},
		[2]int64{1, 17}, [2]int64{2, 17}, [2]int64{3, 17}, [2]int64{4, 17},
	)
}

// SwitchEngine is an eight-cell pattern whose debris grows without bound,
// the engine itself advancing diagonally at c/12.
func SwitchEngine() []life.Cell {
	return cells([2]int64{1, 0}, [2]int64{3, 0},
		[2]int64{0, 1},
		[2]int64{1, 2}, [2]int64{4, 2},
		[2]int64{3, 3}, [2]int64{4, 3}, [2]int64{5, 3})
}

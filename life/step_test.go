package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(cells ...Cell) Grid { return NewGrid(8, 8, cells...) }

func TestStepBlockIsStable(t *testing.T) {
	block := grid(Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})
	next := Step(block, Conway)
	assert.True(t, block.Equal(next))
}

func TestStepBlinkerPeriodTwo(t *testing.T) {
	h := grid(Cell{0, 1}, Cell{1, 1}, Cell{2, 1})
	v := grid(Cell{1, 0}, Cell{1, 1}, Cell{1, 2})

	one := Step(h, Conway)
	assert.True(t, v.Equal(one), "after one step:\n%s", one)
	two := Step(one, Conway)
	assert.True(t, h.Equal(two), "after two steps:\n%s", two)
}

func TestStepLoneCellDies(t *testing.T) {
	g := Step(grid(Cell{3, 3}), Conway)
	assert.Equal(t, 0, g.Population())
}

func TestStepOverpopulation(t *testing.T) {
	// A cell with all eight neighbours live dies of overpopulation.
	g := grid()
	for y := int64(0); y < 3; y++ {
		for x := int64(0); x < 3; x++ {
			g.Set(x, y, true)
		}
	}
	next := Step(g, Conway)
	assert.False(t, next.Alive(1, 1))
}

func TestStepIsUnbounded(t *testing.T) {
	// A blinker butted against the declared extent swings outside it; there
	// is no boundary to clip against.
	g := NewGrid(3, 1, Cell{0, 0}, Cell{1, 0}, Cell{2, 0})
	next := Step(g, Conway)
	assert.True(t, next.Alive(1, -1))
	assert.True(t, next.Alive(1, 0))
	assert.True(t, next.Alive(1, 1))
	assert.Equal(t, 3, next.Population())
}

func TestStepCustomBirthRule(t *testing.T) {
	// Under B1/S a lone cell dies but births all eight of its neighbours.
	r, err := ParseRule("B1/S")
	require.NoError(t, err)
	next := Step(grid(Cell{4, 4}), r)
	assert.Equal(t, 8, next.Population())
	assert.False(t, next.Alive(4, 4))
}

func TestStepSurviveOnZero(t *testing.T) {
	// A lone cell under B/S0 has no live neighbours and survives.
	r, err := ParseRule("B/S0")
	require.NoError(t, err)
	next := Step(grid(Cell{4, 4}), r)
	assert.True(t, next.Alive(4, 4))
	assert.Equal(t, 1, next.Population())
}

func TestStepNGliderTranslation(t *testing.T) {
	glider := []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	g := NewGrid(16, 16, glider...)
	after := StepN(g, Conway, 4)
	want := NewGrid(16, 16)
	for _, c := range glider {
		want.Set(c.X+1, c.Y+1, true)
	}
	assert.True(t, want.Equal(after), "glider after 4 generations:\n%s", after)
}

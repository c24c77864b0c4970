package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name    string
		birth   []int
		survive []int
		wantErr error
	}{
		{"conway", []int{3}, []int{2, 3}, nil},
		{"empty rule", nil, nil, nil},
		{"nine births", []int{9}, nil, ErrBadNeighborCount},
		{"negative survival", []int{3}, []int{-1}, ErrBadNeighborCount},
		{"eight is the ceiling", []int{8}, []int{0, 8}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(tt.birth, tt.survive)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		s       string
		want    string
		wantErr error
	}{
		{"B3/S23", "B3/S23", nil},
		{"b3/s23", "B3/S23", nil},
		{"B36/S23", "B36/S23", nil}, // highlife
		{"B/S", "B/S", nil},
		{"B3S23", "", ErrBadRuleString},
		{"3/23", "", ErrBadRuleString},
		{"B3/S29", "", ErrBadRuleString},
		{"B3/S2 3", "", ErrBadRuleString},
		{"", "", ErrBadRuleString},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			r, err := ParseRule(tt.s)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestRuleAlive(t *testing.T) {
	// Conway truth table over the interesting counts.
	for n := 0; n <= MaxNeighbors; n++ {
		wantLive := n == 2 || n == 3
		wantDead := n == 3
		assert.Equal(t, wantLive, Conway.Alive(true, n), "live cell, %d neighbours", n)
		assert.Equal(t, wantDead, Conway.Alive(false, n), "dead cell, %d neighbours", n)
	}
	// Out-of-range counts never trigger.
	assert.False(t, Conway.Alive(true, 9))
	assert.False(t, Conway.Alive(false, -1))
}

func TestRuleValueIdentity(t *testing.T) {
	a, err := NewRule([]int{3}, []int{3, 2})
	require.NoError(t, err)
	b, err := ParseRule("B3/S23")
	require.NoError(t, err)

	// Equal sets are the same value regardless of construction order, so
	// rules work as cache keys.
	require.Equal(t, a, b)
	require.Equal(t, Conway, a)

	seen := map[Rule]int{a: 1}
	seen[b]++
	require.Equal(t, 2, seen[Conway])
}

func TestRuleAccessors(t *testing.T) {
	assert.True(t, Conway.Birth(3))
	assert.False(t, Conway.Birth(2))
	assert.True(t, Conway.Survive(2))
	assert.False(t, Conway.Survive(4))
	assert.False(t, Conway.Birth(9))
	assert.False(t, Conway.Survive(-1))
}

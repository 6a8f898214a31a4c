package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestNewPairPutsLowerEntityFirst(t *testing.T) {
	p := NewPair(donburi.Entity(9), donburi.Entity(3))
	assert.Equal(t, Pair{A: 3, B: 9}, p)
	assert.Equal(t, p, NewPair(3, 9))

	assert.True(t, p.Has(3))
	assert.True(t, p.Has(9))
	assert.False(t, p.Has(4))
	assert.Equal(t, donburi.Entity(9), p.Other(3))
	assert.Equal(t, donburi.Entity(3), p.Other(9))
}

func TestSortPairsOrdersByFirstThenSecond(t *testing.T) {
	ps := []Pair{
		NewPair(5, 2),
		NewPair(1, 8),
		NewPair(2, 3),
		NewPair(1, 4),
	}
	SortPairs(ps)

	assert.Equal(t, []Pair{{1, 4}, {1, 8}, {2, 3}, {2, 5}}, ps)
}

func TestSortEntities(t *testing.T) {
	es := []donburi.Entity{7, 2, 5}
	SortEntities(es)
	assert.Equal(t, []donburi.Entity{2, 5, 7}, es)
}

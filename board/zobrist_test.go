package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobrist_Deterministic(t *testing.T) {
	a := NewZobrist(15)
	b := NewZobrist(15)
	require.Equal(t, a.posKey, b.posKey, "same size must yield the same fixed-seed table")
	require.Equal(t, a.sideKey, b.sideKey)
}

func TestZobrist_DifferentSizesDiffer(t *testing.T) {
	a := NewZobrist(15)
	b := NewZobrist(19)
	assert.NotEqual(t, a.sideKey, b.sideKey)
}

func TestZobrist_FullHashMatchesIncremental(t *testing.T) {
	z := NewZobrist(15)
	bb := NewBitboard(15)

	h := z.FullHash(&bb, Max)
	assert.Equal(t, uint64(0), h, "empty board with Max to move hashes to zero")

	bb.Place(7, 7, Max)
	h = z.UpdatePlace(h, 7, 7, Max)
	h = z.UpdateSide(h)

	assert.Equal(t, z.FullHash(&bb, Min), h)
}

func TestZobrist_PlaceIsSelfInverse(t *testing.T) {
	z := NewZobrist(15)
	h0 := uint64(0xABCD)
	h1 := z.UpdatePlace(h0, 3, 4, Min)
	h2 := z.UpdatePlace(h1, 3, 4, Min)
	assert.Equal(t, h0, h2)
}

func TestZobrist_UpdateCaptures(t *testing.T) {
	z := NewZobrist(15)
	bb := NewBitboard(15)
	bb.Place(1, 1, Min)
	bb.Place(1, 2, Min)

	h := z.FullHash(&bb, Max)
	captures := []Move{{Row: 1, Col: 1}, {Row: 1, Col: 2}}
	bb.Remove(1, 1)
	bb.Remove(1, 2)
	h = z.UpdateCaptures(h, captures, Min)

	assert.Equal(t, z.FullHash(&bb, Max), h)
}

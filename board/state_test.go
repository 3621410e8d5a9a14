package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(n, k int) *GameState {
	return NewGameState(n, k, 5, NewZobrist(n))
}

func TestGameState_FirstMoveMustBeCenter(t *testing.T) {
	s := newTestState(15, 5)
	err := s.Apply(Move{Row: 0, Col: 0})
	var illegal *IllegalMove
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, MustStartAtCenter, illegal.Kind)
}

func TestGameState_ApplyThenUndoRestoresHash(t *testing.T) {
	s := newTestState(15, 5)
	h0 := s.Hash()

	require.NoError(t, s.Apply(Move{Row: 7, Col: 7}))
	require.NoError(t, s.Apply(Move{Row: 7, Col: 8}))
	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())

	assert.Equal(t, h0, s.Hash())
	assert.Equal(t, Max, s.ToMove())
	assert.False(t, s.IsTerminal())
}

func TestGameState_UndoRestoresCaptures(t *testing.T) {
	s := newTestState(15, 5)
	require.NoError(t, s.Apply(Move{Row: 7, Col: 7})) // Max center
	require.NoError(t, s.Apply(Move{Row: 7, Col: 8}))  // Min
	require.NoError(t, s.Apply(Move{Row: 6, Col: 6}))  // Max elsewhere
	require.NoError(t, s.Apply(Move{Row: 7, Col: 9}))  // Min

	before := s.Captures(Max)
	hBefore := s.Hash()
	occBefore := s.Board().CountOccupied()

	// Max sandwiches Min,Min between (7,7) and (7,10).
	require.NoError(t, s.Apply(Move{Row: 7, Col: 10}))
	assert.Greater(t, s.Captures(Max), before)
	_, stillThere := s.Board().Get(7, 8)
	assert.False(t, stillThere)

	require.NoError(t, s.Undo())
	assert.Equal(t, before, s.Captures(Max))
	assert.Equal(t, hBefore, s.Hash())
	assert.Equal(t, occBefore, s.Board().CountOccupied())
	v, ok := s.Board().Get(7, 8)
	assert.True(t, ok)
	assert.Equal(t, Min, v)
}

func TestGameState_OccupiedCellRejected(t *testing.T) {
	s := newTestState(15, 5)
	require.NoError(t, s.Apply(Move{Row: 7, Col: 7}))
	err := s.Apply(Move{Row: 7, Col: 7})
	var illegal *IllegalMove
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, Occupied, illegal.Kind)
}

func TestGameState_OutOfBoundsRejected(t *testing.T) {
	s := newTestState(15, 5)
	err := s.Apply(Move{Row: 15, Col: 0})
	var illegal *IllegalMove
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, OutOfBounds, illegal.Kind)
}

func TestGameState_WinDetected(t *testing.T) {
	s := newTestState(15, 5)
	require.NoError(t, s.Apply(Move{Row: 7, Col: 7})) // Max
	require.NoError(t, s.Apply(Move{Row: 0, Col: 0})) // Min
	require.NoError(t, s.Apply(Move{Row: 7, Col: 8})) // Max
	require.NoError(t, s.Apply(Move{Row: 0, Col: 1})) // Min
	require.NoError(t, s.Apply(Move{Row: 7, Col: 9})) // Max
	require.NoError(t, s.Apply(Move{Row: 0, Col: 2})) // Min
	require.NoError(t, s.Apply(Move{Row: 7, Col: 6})) // Max
	require.NoError(t, s.Apply(Move{Row: 0, Col: 3})) // Min
	require.NoError(t, s.Apply(Move{Row: 7, Col: 5})) // Max wins

	winner, ok := s.Winner()
	require.True(t, ok)
	assert.Equal(t, Max, winner)
	assert.True(t, s.IsTerminal())
}

func TestGameState_HashChangesWithSideToMove(t *testing.T) {
	s1 := newTestState(15, 5)
	require.NoError(t, s1.Apply(Move{Row: 7, Col: 7}))
	hAfterMax := s1.Hash()

	s2 := s1.Clone()
	require.NoError(t, s2.Undo())
	hBeforeMax := s2.Hash()

	assert.NotEqual(t, hAfterMax, hBeforeMax)
}

func TestGameState_CloneIsIndependent(t *testing.T) {
	s := newTestState(15, 5)
	require.NoError(t, s.Apply(Move{Row: 7, Col: 7}))
	clone := s.Clone()
	require.NoError(t, clone.Apply(Move{Row: 7, Col: 8}))

	assert.NotEqual(t, s.Hash(), clone.Hash())
	_, occupied := s.Board().Get(7, 8)
	assert.False(t, occupied)
}

func TestGameState_UndoWithEmptyHistoryErrors(t *testing.T) {
	s := newTestState(15, 5)
	err := s.Undo()
	assert.Equal(t, ErrNothingToUndo{}, err)
}

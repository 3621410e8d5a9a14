package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerft_Depth1MatchesLegalMoveCount(t *testing.T) {
	s := newTestState(15, 5)
	assert.Equal(t, uint64(1), s.Perft(1), "empty board has exactly one legal move: the center")
}

func TestPerft_Depth2ExpandsCenterNeighbors(t *testing.T) {
	s := newTestState(15, 5)
	nodes := s.Perft(2)
	// after the forced center move, every empty cell within radius 2 of
	// the center is a legal reply.
	assert.Equal(t, uint64(24), nodes)
}

func TestPerft_UndoRestoresStateAcrossRecursion(t *testing.T) {
	s := newTestState(15, 5)
	hBefore := s.Hash()
	occBefore := s.Board().CountOccupied()

	s.Perft(3)

	assert.Equal(t, hBefore, s.Hash(), "perft must leave the state exactly as it found it")
	assert.Equal(t, occBefore, s.Board().CountOccupied())
	assert.Equal(t, 0, s.Ply())
}

func TestDivide_SumsToPerft(t *testing.T) {
	s := newTestState(15, 5)
	breakdown := s.Divide(3)

	var sum uint64
	for _, n := range breakdown {
		sum += n
	}
	assert.Equal(t, s.Perft(3), sum)
}

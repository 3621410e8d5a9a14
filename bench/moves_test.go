package bench

import (
	"testing"

	"gomoku/board"
)

func emptyBoardState() *board.GameState {
	return board.NewGameState(15, 5, 5, board.NewZobrist(15))
}

// BenchmarkGenerateMoves_EmptyBoard benchmarks the center-only special
// case on an empty board.
func BenchmarkGenerateMoves_EmptyBoard(b *testing.B) {
	state := emptyBoardState()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = state.LegalMoves()
	}
}

// BenchmarkGenerateMoves_MidGame benchmarks candidate generation once a
// cluster of stones is on the board, the common case during search.
func BenchmarkGenerateMoves_MidGame(b *testing.B) {
	state := emptyBoardState()
	moves := []board.Move{
		{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 8, Col: 7}, {Row: 6, Col: 8},
		{Row: 8, Col: 8}, {Row: 6, Col: 7}, {Row: 9, Col: 9}, {Row: 5, Col: 5},
	}
	for _, m := range moves {
		if err := state.Apply(m); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = state.LegalMoves()
	}
}

// BenchmarkGenerateMoves_Dense benchmarks generation once the board has
// enough stones that most cells are within adjacency radius of one.
func BenchmarkGenerateMoves_Dense(b *testing.B) {
	state := emptyBoardState()
	center := 7
	applied := 0
	for dr := -3; dr <= 3 && applied < 40; dr++ {
		for dc := -3; dc <= 3 && applied < 40; dc++ {
			r, c := center+dr, center+dc
			if !state.Board().InBounds(r, c) || !state.Board().IsEmpty(r, c) {
				continue
			}
			if err := state.Apply(board.Move{Row: r, Col: c}); err != nil {
				continue
			}
			applied++
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = state.LegalMoves()
	}
}

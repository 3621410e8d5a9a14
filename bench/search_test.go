package bench

import (
	"fmt"
	"testing"
	"time"

	"gomoku/board"
	"gomoku/engine"
)

// TestSearchDepthBenchmark measures time and node growth per depth from
// an empty board. Run with: go test ./bench -run TestSearchDepthBenchmark -v
func TestSearchDepthBenchmark(t *testing.T) {
	state := board.NewGameState(15, 5, 5, board.NewZobrist(15))
	tt := engine.NewTranspositionTable(20)

	fmt.Println("\n=== Search Depth Benchmark ===")
	fmt.Println("Position: empty 15x15 board")
	fmt.Printf("%-7s %-10s %-12s %-15s\n", "Depth", "Move", "Nodes", "Time")
	fmt.Println("----------------------------------------------")

	for depth := 1; depth <= 6; depth++ {
		start := time.Now()
		result := engine.FindBestMove(state, 5, depth, 10*time.Second, tt, 1, nil)
		elapsed := time.Since(start)

		fmt.Printf("%-7d %-10s %-12d %-15v\n", depth, result.Move, result.Nodes, elapsed)

		if elapsed > 10*time.Second {
			fmt.Println("Stopping - exceeded 10s threshold")
			break
		}
	}
}

// TestSearchTacticalBenchmark measures search on a position with an
// open-three threat already on the board, where move ordering and
// capture/threat detection matter most.
func TestSearchTacticalBenchmark(t *testing.T) {
	state := board.NewGameState(15, 5, 5, board.NewZobrist(15))
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(state.Apply(board.Move{Row: 7, Col: 7}))
	must(state.Apply(board.Move{Row: 0, Col: 0}))
	must(state.Apply(board.Move{Row: 7, Col: 8}))
	must(state.Apply(board.Move{Row: 0, Col: 1}))
	must(state.Apply(board.Move{Row: 7, Col: 9}))

	tt := engine.NewTranspositionTable(20)

	fmt.Println("\n=== Tactical Position Benchmark ===")
	fmt.Println("Position: Max has an open three on row 7")
	fmt.Printf("%-7s %-10s %-12s %-15s\n", "Depth", "Move", "Nodes", "Time")
	fmt.Println("----------------------------------------------")

	for depth := 1; depth <= 6; depth++ {
		start := time.Now()
		result := engine.FindBestMove(state, 5, depth, 10*time.Second, tt, 1, nil)
		elapsed := time.Since(start)

		fmt.Printf("%-7d %-10s %-12d %-15v\n", depth, result.Move, result.Nodes, elapsed)

		if elapsed > 10*time.Second {
			fmt.Println("Stopping - exceeded 10s threshold")
			break
		}
	}
}

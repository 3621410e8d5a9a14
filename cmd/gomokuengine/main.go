// Command gomokuengine runs one bounded search from an empty board and
// prints the move found, demonstrating the library's external interface:
// construct a state, run find_best_move, inspect the result.
package main

import (
	"fmt"
	"time"

	"gomoku/board"
	"gomoku/engine"
)

const (
	boardSize         = 15
	winLength         = 5
	capturePairsToWin = 5
)

func main() {
	state := board.NewGameState(boardSize, winLength, capturePairsToWin, board.NewZobrist(boardSize))
	tt := engine.NewTranspositionTable(20)

	logger, err := engine.NewLogger("gomokuengine.log")
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	result := engine.FindBestMove(state, winLength, 8, 3*time.Second, tt, engine.DefaultWorkerCount(), logger)

	fmt.Printf("best move: %s\n", result.Move)
	fmt.Printf("score: %d\n", result.Score)
	fmt.Printf("depth reached: %d\n", result.DepthReached)
	fmt.Printf("nodes: %d\n", result.Nodes)
	fmt.Printf("elapsed: %s\n", result.Elapsed.Round(time.Millisecond))
}

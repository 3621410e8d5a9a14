package engine

import (
	"runtime"
	"sync"
	"time"

	"gomoku/board"
)

// maxIterativeDepth bounds iterative deepening; in practice the time
// budget or a found mate ends the loop long before this is reached.
const maxIterativeDepth = 64

// SearchResult is what FindBestMove returns: the chosen move, its score
// from the root side-to-move's perspective, how deep the search got, and
// bookkeeping for diagnostics. HasMove is false for the degenerate
// inputs FindBestMove refuses to search at all (zero depth, zero time
// budget, a finished game, or no legal moves), and also when the search
// is stopped before the master worker completes its first iteration.
type SearchResult struct {
	Move         board.Move
	HasMove      bool
	Score        int
	DepthReached int
	Nodes        int64
	Elapsed      time.Duration
}

// DefaultWorkerCount returns a reasonable number of Lazy-SMP workers for
// this machine: all logical CPUs but one, so the caller's own goroutine
// isn't starved.
func DefaultWorkerCount() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		return 1
	}
	return n
}

// FindBestMove runs a time-budgeted, parallel iterative-deepening PVS
// search from 'state' and returns the move, score, and search stats.
// workers share 'tt'; only the master worker's completed iterations are
// published, so its result is reproducible across runs given the same
// state, depth cap and TT contents. Non-master workers exist solely to
// race ahead and warm the shared TT with deeper or differently-ordered
// results the master can then reuse.
func FindBestMove(state *board.GameState, winLength int, maxDepth int, timeBudget time.Duration, tt *TranspositionTable, workerCount int, logger *Logger) SearchResult {
	// The search never fails, but it also never searches: zero depth,
	// zero (or negative) time budget, and a position with no legal
	// moves all short-circuit to the zero result rather than running a
	// search that couldn't possibly report anything.
	if maxDepth <= 0 || timeBudget <= 0 || state.IsTerminal() || len(state.LegalMoves()) == 0 {
		return SearchResult{}
	}

	if workerCount < 1 {
		workerCount = DefaultWorkerCount()
	}
	if maxDepth > maxIterativeDepth {
		maxDepth = maxIterativeDepth
	}

	tt.NewSearch()
	ctx := NewSearchContext(timeBudget)

	var wg sync.WaitGroup
	var masterResult SearchResult

	for id := 0; id < workerCount; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			workerState := state.Clone()
			tables := NewWorkerTables(workerState.Board().Size())
			searcher := newPVSearcher(workerState, winLength, tt, tables, ctx)

			// Odd-ID helper workers start one ply deeper than the master
			// so their search tree diverges instead of retracing identical
			// work; even-ID helpers start at depth 1 like the master. Apart
			// from publishing, this is the only asymmetry between master
			// and helper workers.
			startDepth := 1
			if id%2 == 1 {
				startDepth = 2
			}

			for depth := startDepth; depth <= maxDepth; depth++ {
				if ctx.Stopped() {
					break
				}

				move, score := searcher.SearchRoot(depth)
				if ctx.Stopped() {
					break
				}

				if id == 0 {
					masterResult = SearchResult{
						Move:         move,
						HasMove:      true,
						Score:        score,
						DepthReached: depth,
						Nodes:        ctx.Nodes(),
						Elapsed:      ctx.Elapsed(),
					}
					logger.Log(SearchLogEntry{
						Timestamp: time.Now(),
						Move:      move.String(),
						Depth:     depth,
						Score:     score,
						Nodes:     ctx.Nodes(),
						Elapsed:   ctx.Elapsed(),
						BoardHex:  workerState.Board().Hex(),
					})
				}

				if score >= board.MateBase-board.MaxPly || score <= -(board.MateBase-board.MaxPly) {
					ctx.Stop()
					break
				}
			}
		}(id)
	}

	wg.Wait()
	masterResult.Nodes = ctx.Nodes()
	masterResult.Elapsed = ctx.Elapsed()
	return masterResult
}

package engine

import (
	"sort"

	"gomoku/board"
)

// maxPly bounds the killer-move table; searches deeper than this simply
// stop benefiting from killers rather than indexing out of range.
const maxPly = 256

// WorkerTables holds the per-worker move-ordering state: two killer
// moves per ply and a history-heuristic score per (color, cell). Each
// Lazy-SMP worker owns an independent set so that workers racing ahead
// or behind each other don't corrupt one another's ordering hints; only
// the transposition table is shared.
type WorkerTables struct {
	killers [maxPly][2]board.Move
	history [2][]int // history[color][row*size+col]
	size    int
}

// NewWorkerTables returns a fresh, empty table set for a board of the
// given side length.
func NewWorkerTables(size int) *WorkerTables {
	return &WorkerTables{
		history: [2][]int{make([]int, size*size), make([]int, size*size)},
		size:    size,
	}
}

// ClearKillers resets the killer-move table for a new search.
func (wt *WorkerTables) ClearKillers() {
	for i := range wt.killers {
		wt.killers[i] = [2]board.Move{}
	}
}

// ClearHistory resets the history heuristic for a new search.
func (wt *WorkerTables) ClearHistory() {
	for c := range wt.history {
		for i := range wt.history[c] {
			wt.history[c][i] = 0
		}
	}
}

// StoreKiller records a quiet move that caused a beta cutoff at the given
// ply, keeping the two most recent distinct killers.
func (wt *WorkerTables) StoreKiller(ply int, m board.Move) {
	if ply >= maxPly {
		return
	}
	if wt.killers[ply][0] == m {
		return
	}
	wt.killers[ply][1] = wt.killers[ply][0]
	wt.killers[ply][0] = m
}

// IsKiller reports whether m is one of the two killer moves at ply.
func (wt *WorkerTables) IsKiller(ply int, m board.Move) bool {
	if ply >= maxPly {
		return false
	}
	return wt.killers[ply][0] == m || wt.killers[ply][1] == m
}

// UpdateHistory bumps the history score of a move that caused a cutoff,
// by depth squared so cutoffs found deeper in the tree count for more.
func (wt *WorkerTables) UpdateHistory(color board.Color, m board.Move, depth int) {
	wt.history[color][m.Row*wt.size+m.Col] += depth * depth
}

func (wt *WorkerTables) historyScore(color board.Color, m board.Move) int {
	return wt.history[color][m.Row*wt.size+m.Col]
}

// Score tiers, highest first. Each tier occupies its own disjoint
// numeric band so a move's exact within-tier score never crosses into
// the next tier.
const (
	tierTT       = 9_000_000
	tierWin      = 8_000_000
	tierCapture  = 7_000_000
	tierBlockWin = 6_000_000
	tierKiller   = 5_000_000
	tierHistory  = 1_000_000 // history scores are capped below this band
	historyCap   = 900_000
	tierPattern  = 100 // per-axis bonus for extending an own three
	tierOpenTwo  = 40  // per-axis bonus for creating an open two
	tierAdjacent = 2   // per-neighbor bonus for playing next to a stone
)

// OrderMoves sorts candidate moves for search: TT/PV move first, then
// winning moves, then captures, then cells that block an opponent win
// next move, then killers, then history score, then a small
// pattern-creation and positional tiebreak. Sorting is stable so equal
// scores preserve generation order, keeping search deterministic on
// forced lines.
func OrderMoves(b *board.Bitboard, rules board.Rules, moves []board.Move, toMove board.Color, ttMove board.Move, hasTTMove bool, ply int, tables *WorkerTables) {
	opp := toMove.Opponent()
	size := b.Size()
	center := size / 2

	scoreOf := func(m board.Move) int {
		if hasTTMove && m == ttMove {
			return tierTT
		}
		if rules.WouldWin(b, m.Row, m.Col, toMove) {
			return tierWin
		}
		if captures := rules.DetectCaptures(b, m.Row, m.Col, toMove); len(captures) > 0 {
			return tierCapture + len(captures)
		}
		if rules.WouldWin(b, m.Row, m.Col, opp) {
			return tierBlockWin
		}
		if tables != nil && tables.IsKiller(ply, m) {
			return tierKiller
		}

		score := 0
		if tables != nil {
			h := tables.historyScore(toMove, m)
			if h > historyCap {
				h = historyCap
			}
			score += tierHistory - (historyCap - h)
		}
		// Pattern-creation bonus: moves that extend an own three or create
		// an open two are graded, with the stronger open-three threat
		// worth more per axis than the earlier-stage open-two.
		score += rules.FreeThreeCount(b, m.Row, m.Col, toMove) * tierPattern
		score += rules.OpenTwoCount(b, m.Row, m.Col, toMove) * tierOpenTwo

		// Positional tiebreak: Manhattan distance to center (closer is
		// better) plus adjacency count to existing stones.
		dist := absInt(m.Row-center) + absInt(m.Col-center)
		score += size - dist
		score += b.AdjacentStoneCount(m.Row, m.Col) * tierAdjacent
		return score
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return scoreOf(moves[i]) > scoreOf(moves[j])
	})
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}


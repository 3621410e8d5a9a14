package engine

import (
	"gomoku/board"
)

// Infinity is a sentinel score wider than any real evaluation, used as
// the initial alpha-beta window.
const Infinity = board.MateBase + board.MaxPly + 1

// pvSearcher runs one negamax principal-variation search over a shared
// GameState + TranspositionTable, with its own killer/history tables.
// Each Lazy-SMP worker owns one.
type pvSearcher struct {
	state     *board.GameState
	rules     board.Rules
	gen       board.MoveGenerator
	eval      board.Evaluator
	tt        *TranspositionTable
	tables    *WorkerTables
	ctx       *SearchContext
	rootColor board.Color
}

func newPVSearcher(state *board.GameState, winLength int, tt *TranspositionTable, tables *WorkerTables, ctx *SearchContext) *pvSearcher {
	rules := board.NewRules(winLength)
	return &pvSearcher{
		state:     state,
		rules:     rules,
		gen:       board.NewMoveGenerator(rules),
		eval:      board.NewEvaluator(winLength),
		tt:        tt,
		tables:    tables,
		ctx:       ctx,
		rootColor: state.ToMove(),
	}
}

// sign returns +1 when Max is the side to move and -1 when Min is. Evaluate always
// scores from Max's perspective, so negamax must flip the sign whenever
// Min is the side whose score is being asked for.
func sign(toMove board.Color) int {
	if toMove == board.Max {
		return 1
	}
	return -1
}

// mateThreshold is the score beyond which a value encodes "mate in N"
// rather than a heuristic evaluation.
const mateThreshold = board.MateBase - board.MaxPly

// valueToTT rewrites a mate score from "distance from the search root"
// (what pvs deals in) to "distance from this node" (what the TT stores),
// so the same entry still encodes the correct mate distance when probed
// again from a different ply on a later, possibly shallower, path to the
// same position.
func valueToTT(score, ply int) int {
	switch {
	case score >= mateThreshold:
		return score + ply
	case score <= -mateThreshold:
		return score - ply
	default:
		return score
	}
}

// valueFromTT is the inverse of valueToTT: it rewrites a mate score read
// back out of the TT at ply back into "distance from the search root".
func valueFromTT(score, ply int) int {
	switch {
	case score >= mateThreshold:
		return score - ply
	case score <= -mateThreshold:
		return score + ply
	default:
		return score
	}
}

// pvs is the negamax principal-variation search. ply is the distance
// from the search root (not recursion depth) and is threaded explicitly
// so mate scores can be normalized correctly regardless of how deep a TT
// cutoff short-circuits the recursion. depth is plies remaining to
// search.
func (p *pvSearcher) pvs(depth, ply int, alpha, beta int) int {
	if p.ctx.AddNode() {
		return 0
	}

	winner, hasWinner := p.state.Winner()
	if p.state.IsTerminal() {
		if hasWinner {
			score := board.MateBase - ply
			if winner != p.state.ToMove() {
				score = -score
			}
			return score
		}
		return 0 // board filled, no winner: draw
	}

	if depth <= 0 {
		return sign(p.state.ToMove()) * p.eval.Evaluate(p.state.Board(), p.state.Captures(board.Max), p.state.Captures(board.Min), 0, false)
	}

	hash := p.state.Hash()
	alphaOrig := alpha
	var ttMove board.Move
	var hasTTMove bool

	if entry, found := p.tt.Probe(hash); found {
		if entry.HasMove {
			ttMove = entry.BestMove
			hasTTMove = true
		}
		if int(entry.Depth) >= depth {
			score := valueFromTT(int(entry.Score), ply)
			switch entry.Bound {
			case BoundExact:
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	moves := p.gen.Generate(p.state.Board(), p.state.ToMove())
	if len(moves) == 0 {
		return 0
	}
	OrderMoves(p.state.Board(), p.rules, moves, p.state.ToMove(), ttMove, hasTTMove, ply, p.tables)

	bestScore := -Infinity
	bestMove := moves[0]
	toMove := p.state.ToMove()

	for i, m := range moves {
		if err := p.state.Apply(m); err != nil {
			continue
		}

		var score int
		if i == 0 {
			score = -p.pvs(depth-1, ply+1, -beta, -alpha)
		} else {
			// Null-window scout: cheap test of "does this move beat
			// alpha at all", re-searched with the full window only if
			// it does.
			score = -p.pvs(depth-1, ply+1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -p.pvs(depth-1, ply+1, -beta, -alpha)
			}
		}

		_ = p.state.Undo()

		if p.ctx.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if p.tables != nil {
				p.tables.StoreKiller(ply, m)
				p.tables.UpdateHistory(toMove, m, depth)
			}
			break
		}
	}

	if !p.ctx.Stopped() {
		var bound Bound
		switch {
		case bestScore <= alphaOrig:
			bound = BoundUpper
		case bestScore >= beta:
			bound = BoundLower
		default:
			bound = BoundExact
		}
		p.tt.Store(hash, int8(depth), int32(valueToTT(bestScore, ply)), bound, bestMove, true)
	}

	return bestScore
}

// SearchRoot runs one fixed-depth PVS search from the root and returns
// the best move and its score (from the side-to-move's perspective, i.e.
// positive means good for whoever is to move at the root).
func (p *pvSearcher) SearchRoot(depth int) (board.Move, int) {
	rootToMove := p.state.ToMove()
	moves := p.gen.Generate(p.state.Board(), rootToMove)
	if len(moves) == 0 {
		return board.Move{}, 0
	}

	var ttMove board.Move
	var hasTTMove bool
	if entry, found := p.tt.Probe(p.state.Hash()); found && entry.HasMove {
		ttMove = entry.BestMove
		hasTTMove = true
	}
	OrderMoves(p.state.Board(), p.rules, moves, rootToMove, ttMove, hasTTMove, 0, p.tables)

	alpha, beta := -Infinity, Infinity
	bestMove := moves[0]
	bestScore := -Infinity

	for i, m := range moves {
		if err := p.state.Apply(m); err != nil {
			continue
		}

		var score int
		if i == 0 {
			score = -p.pvs(depth-1, 1, -beta, -alpha)
		} else {
			score = -p.pvs(depth-1, 1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -p.pvs(depth-1, 1, -beta, -alpha)
			}
		}

		_ = p.state.Undo()

		if p.ctx.Stopped() {
			break
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	// A stop mid-loop means bestScore reflects only a subset of root moves
	// at this depth, not a complete search of the position: storing it
	// would pollute the TT with an unbounded partial result for this
	// depth, exactly what an aborted iteration must not do.
	if !p.ctx.Stopped() {
		p.tt.Store(p.state.Hash(), int8(depth), int32(valueToTT(bestScore, 0)), BoundExact, bestMove, true)
	}
	return bestMove, bestScore
}

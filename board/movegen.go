package board

// adjacencyRadius is the Chebyshev distance within which an empty cell is
// considered a candidate move: close enough to an existing stone to matter,
// far enough to admit one-gap extensions.
const adjacencyRadius = 2

// MoveGenerator enumerates legal candidate moves for a position. It holds
// no state of its own; legality depends only on the board passed in.
type MoveGenerator struct {
	rules Rules
}

// NewMoveGenerator returns a generator using the given rule set to filter
// double-three moves.
func NewMoveGenerator(rules Rules) MoveGenerator {
	return MoveGenerator{rules: rules}
}

// Generate returns every legal move for 'toMove' in the given position. On
// an empty board this is the single center cell. Otherwise it is every
// empty cell within adjacencyRadius of some stone, minus any that would
// create an illegal double free-three. Order is unspecified; MoveOrdering
// imposes the search order.
func (g MoveGenerator) Generate(b *Bitboard, toMove Color) []Move {
	size := b.Size()
	if b.CountOccupied() == 0 {
		center := size / 2
		return []Move{{Row: center, Col: center}}
	}

	moves := make([]Move, 0, size*size/4)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !b.IsEmpty(r, c) {
				continue
			}
			if !b.IsAdjacentWithinRadius(r, c, adjacencyRadius) {
				continue
			}
			if g.rules.CreatesDoubleThree(b, r, c, toMove) {
				continue
			}
			moves = append(moves, Move{Row: r, Col: c})
		}
	}
	return moves
}

// HasLegalMoves reports whether at least one legal move exists, without
// building the full candidate list.
func (g MoveGenerator) HasLegalMoves(b *Bitboard, toMove Color) bool {
	size := b.Size()
	if b.CountOccupied() == 0 {
		return true
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !b.IsEmpty(r, c) {
				continue
			}
			if !b.IsAdjacentWithinRadius(r, c, adjacencyRadius) {
				continue
			}
			if !g.rules.CreatesDoubleThree(b, r, c, toMove) {
				return true
			}
		}
	}
	return false
}

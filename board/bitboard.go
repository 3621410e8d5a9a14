// Package board implements the Gomoku search engine's state representation:
// the two-color bitboard, Zobrist hashing, game state with make/undo,
// capture and win-line rules, legal move generation and the static
// heuristic evaluator.
package board

import (
	"fmt"

	"gomoku/bitset"
)

// Bitboard holds the occupancy of an N x N Gomoku grid as two per-color bit
// vectors plus their union. Index = row*size + col.
//
// Invariants: max.And(min) is always empty, and occupied always equals
// max|min.
type Bitboard struct {
	size     int
	max      bitset.Set
	min      bitset.Set
	occupied bitset.Set
}

// NewBitboard returns an empty board of the given side length.
func NewBitboard(size int) Bitboard {
	return Bitboard{
		size:     size,
		max:      bitset.New(size * size),
		min:      bitset.New(size * size),
		occupied: bitset.New(size * size),
	}
}

// Size returns the board's side length.
func (b *Bitboard) Size() int {
	return b.size
}

func (b *Bitboard) index(r, c int) int {
	return r*b.size + c
}

// InBounds reports whether (r, c) lies on the board.
func (b *Bitboard) InBounds(r, c int) bool {
	return r >= 0 && r < b.size && c >= 0 && c < b.size
}

func (b *Bitboard) bitsFor(color Color) bitset.Set {
	if color == Max {
		return b.max
	}
	return b.min
}

// Get returns the stone color at (r, c) and whether a stone is present.
func (b *Bitboard) Get(r, c int) (Color, bool) {
	idx := b.index(r, c)
	if b.max.Test(idx) {
		return Max, true
	}
	if b.min.Test(idx) {
		return Min, true
	}
	return 0, false
}

// IsEmpty reports whether (r, c) holds no stone.
func (b *Bitboard) IsEmpty(r, c int) bool {
	return !b.occupied.Test(b.index(r, c))
}

// Place sets a stone of the given color at (r, c). The caller is
// responsible for ensuring the cell was empty.
func (b *Bitboard) Place(r, c int, color Color) {
	idx := b.index(r, c)
	b.bitsFor(color).SetBit(idx)
	b.occupied.SetBit(idx)
}

// Remove clears any stone at (r, c).
func (b *Bitboard) Remove(r, c int) {
	idx := b.index(r, c)
	b.max.ClearBit(idx)
	b.min.ClearBit(idx)
	b.occupied.ClearBit(idx)
}

// Count returns the number of stones of the given color.
func (b *Bitboard) Count(color Color) int {
	return b.bitsFor(color).PopCount()
}

// CountOccupied returns the total number of occupied cells.
func (b *Bitboard) CountOccupied() int {
	return b.occupied.PopCount()
}

// IsFull reports whether every cell on the board is occupied.
func (b *Bitboard) IsFull() bool {
	return b.occupied.PopCount() == b.size*b.size
}

// chebyshevOffsets are the eight unit directions around a cell, used by
// the adjacency tests below. Capture and win detection walk the four
// axisDirections in rules.go in both signs instead.
var chebyshevOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsAdjacentToStone reports whether any of the eight Chebyshev neighbors of
// (r, c) is occupied. Cells that fall off the board are simply skipped, so
// edge cells never claim a neighbor that doesn't exist.
func (b *Bitboard) IsAdjacentToStone(r, c int) bool {
	for _, d := range chebyshevOffsets {
		nr, nc := r+d[0], c+d[1]
		if b.InBounds(nr, nc) && !b.IsEmpty(nr, nc) {
			return true
		}
	}
	return false
}

// AdjacentStoneCount returns how many of the eight Chebyshev neighbors of
// (r, c) are occupied, regardless of color. Move ordering uses this as a
// positional bonus for moves played next to existing stones.
func (b *Bitboard) AdjacentStoneCount(r, c int) int {
	count := 0
	for _, d := range chebyshevOffsets {
		nr, nc := r+d[0], c+d[1]
		if b.InBounds(nr, nc) && !b.IsEmpty(nr, nc) {
			count++
		}
	}
	return count
}

// IsAdjacentWithinRadius reports whether some occupied cell lies within
// Chebyshev distance 'radius' of (r, c).
func (b *Bitboard) IsAdjacentWithinRadius(r, c, radius int) bool {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if b.InBounds(nr, nc) && !b.IsEmpty(nr, nc) {
				return true
			}
		}
	}
	return false
}

// checkInvariant reports whether the board's bookkeeping matches its own
// documented invariant: max and min never overlap, and occupied is
// exactly their union. Perft calls this after every Undo to catch any
// make/unmake corruption immediately, instead of only inferring it
// indirectly from a node-count mismatch several plies later.
func (b *Bitboard) checkInvariant() bool {
	if b.max.And(b.min) {
		return false
	}
	union := bitset.New(b.size * b.size)
	union.Or(b.max, b.min)
	return union.Equal(b.occupied)
}

// Hex returns a compact hex dump of the board's two stone sets, max then
// min, so a log line can be correlated back to the exact position it was
// produced from without needing to replay the whole move history.
func (b *Bitboard) Hex() string {
	return b.max.Hex() + "/" + b.min.Hex()
}

// Pretty renders the board for debugging: '.' empty, 'X' Max, 'O' Min.
func (b *Bitboard) Pretty() string {
	out := ""
	for r := b.size - 1; r >= 0; r-- {
		for c := 0; c < b.size; c++ {
			switch color, ok := b.Get(r, c); {
			case !ok:
				out += ". "
			case color == Max:
				out += "X "
			default:
				out += "O "
			}
		}
		out += fmt.Sprintf(" %d\n", r)
	}
	return out
}

// Clone returns an independent deep copy of the board.
func (b *Bitboard) Clone() Bitboard {
	n := b.size * b.size
	clone := Bitboard{size: b.size, max: bitset.New(n), min: bitset.New(n), occupied: bitset.New(n)}
	clone.max.CopyFrom(b.max)
	clone.min.CopyFrom(b.min)
	clone.occupied.CopyFrom(b.occupied)
	return clone
}

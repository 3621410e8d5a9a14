package board

import "math/rand"

// zobristSeed is fixed so hashes are reproducible across runs and across
// processes, rather than seeded from process entropy.
const zobristSeed = 0x5EED_600D_BA2D_0000

// Zobrist holds the per-(cell, color) and side-to-move keys for one board
// size. It is immutable after construction, so GameState clones may safely
// share a single *Zobrist rather than deep-copying the key tables.
type Zobrist struct {
	size    int
	posKey  [][2]uint64 // posKey[idx][Max|Min]
	sideKey uint64
}

// NewZobrist builds a fresh key table for an N x N board. Callers construct
// the table explicitly and hand it to NewGameState; there is no
// package-level singleton, so tests can construct independent,
// reproducible tables.
func NewZobrist(size int) *Zobrist {
	rng := rand.New(rand.NewSource(zobristSeed + int64(size)))
	z := &Zobrist{
		size:   size,
		posKey: make([][2]uint64, size*size),
	}
	for i := range z.posKey {
		z.posKey[i][Max] = rng.Uint64()
		z.posKey[i][Min] = rng.Uint64()
	}
	z.sideKey = rng.Uint64()
	return z
}

func (z *Zobrist) index(r, c int) int {
	return r*z.size + c
}

// FullHash recomputes the hash of a board from scratch: the XOR of every
// occupied cell's key, plus the side key when Min is to move.
func (z *Zobrist) FullHash(b *Bitboard, toMove Color) uint64 {
	var h uint64
	for r := 0; r < z.size; r++ {
		for c := 0; c < z.size; c++ {
			if color, ok := b.Get(r, c); ok {
				h ^= z.posKey[z.index(r, c)][color]
			}
		}
	}
	if toMove == Min {
		h ^= z.sideKey
	}
	return h
}

// UpdatePlace XORs in (or out, since XOR is self-inverse) the key for a
// stone of the given color at (r, c).
func (z *Zobrist) UpdatePlace(h uint64, r, c int, color Color) uint64 {
	return h ^ z.posKey[z.index(r, c)][color]
}

// UpdateCaptures XORs out the keys of a list of captured stones, all of the
// given color.
func (z *Zobrist) UpdateCaptures(h uint64, captures []Move, capturedColor Color) uint64 {
	for _, m := range captures {
		h ^= z.posKey[z.index(m.Row, m.Col)][capturedColor]
	}
	return h
}

// UpdateSide flips the side-to-move key.
func (z *Zobrist) UpdateSide(h uint64) uint64 {
	return h ^ z.sideKey
}

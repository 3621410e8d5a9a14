// Package bitset implements a generic N-bit vector backed by a slice of
// words. It is the low-level primitive the board package builds its
// two-color stone sets on top of: unlike a single machine word, it scales
// past 64 bits so it can represent the 225 or 361 cells of a 15x15 or
// 19x19 Gomoku board.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Set is a fixed-length bit vector of 'n' bits, stored as ceil(n/64) words.
type Set struct {
	n     int
	words []uint64
}

// New returns a zeroed Set able to hold n bits.
func New(n int) Set {
	return Set{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the number of addressable bits.
func (s Set) Len() int {
	return s.n
}

func (s Set) wordIndex(i int) (int, uint64) {
	return i / wordBits, uint64(1) << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (s Set) Test(i int) bool {
	w, mask := s.wordIndex(i)
	return s.words[w]&mask != 0
}

// SetBit sets bit i to 1.
func (s Set) SetBit(i int) {
	w, mask := s.wordIndex(i)
	s.words[w] |= mask
}

// ClearBit sets bit i to 0.
func (s Set) ClearBit(i int) {
	w, mask := s.wordIndex(i)
	s.words[w] &^= mask
}

// PopCount returns the number of set bits.
func (s Set) PopCount() int {
	count := 0
	for _, w := range s.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// IsZero reports whether no bit is set.
func (s Set) IsZero() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return Set{n: s.n, words: words}
}

// CopyFrom overwrites s in place with the contents of other. Both sets must
// have the same length.
func (s Set) CopyFrom(other Set) {
	copy(s.words, other.words)
}

// Or sets s to the bitwise OR of a and b. s, a and b must have the same length.
func (s Set) Or(a, b Set) {
	for i := range s.words {
		s.words[i] = a.words[i] | b.words[i]
	}
}

// And reports whether a and b share any set bit.
func (a Set) And(b Set) bool {
	for i := range a.words {
		if a.words[i]&b.words[i] != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether a and b have identical bits set.
func (a Set) Equal(b Set) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

// Pretty renders the set as a size x size grid of '.' and 'X', for debugging.
func (s Set) Pretty(size int) string {
	var sb strings.Builder
	for r := size - 1; r >= 0; r-- {
		for c := 0; c < size; c++ {
			if s.Test(r*size + c) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Hex returns the set's words as a compact hex dump, for logging.
func (s Set) Hex() string {
	var sb strings.Builder
	for i, w := range s.words {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%016x", w)
	}
	return sb.String()
}

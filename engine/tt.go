// Package engine implements the search side of the Gomoku engine: the
// shared transposition table, move ordering, principal-variation search,
// and the Lazy-SMP iterative-deepening driver that coordinates workers
// over it.
package engine

import (
	"sync"

	"gomoku/board"
)

// Bound records what kind of score an entry holds.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot.
type Entry struct {
	Key       uint64
	Depth     int8
	Score     int32
	Bound     Bound
	BestMove  board.Move
	HasMove   bool
	Age       uint8
}

// shardCount is the number of independent mutex-guarded stripes the table
// is split into. Each worker goroutine hashes to a shard by the low bits
// of its Zobrist hash, so concurrent probes/stores from different workers
// rarely contend on the same lock.
const shardCount = 64

type shard struct {
	mu      sync.Mutex
	entries []Entry
}

// TranspositionTable is a fixed-capacity, sharded hash table keyed by
// Zobrist hash. It has no global instance: callers construct one
// explicitly and pass it by reference to every worker, so tests can build
// fresh, isolated tables.
type TranspositionTable struct {
	shards   [shardCount]*shard
	slotMask uint64
	age      uint8
}

// NewTranspositionTable returns a table sized to roughly 1<<k total slots
// split evenly across the shards; k defaults to 20 (about 1M entries) if
// not positive.
func NewTranspositionTable(k int) *TranspositionTable {
	if k <= 0 {
		k = 20
	}
	total := uint64(1) << uint(k)
	perShard := total / shardCount
	if perShard == 0 {
		perShard = 1
	}

	tt := &TranspositionTable{slotMask: perShard - 1}
	for i := range tt.shards {
		tt.shards[i] = &shard{entries: make([]Entry, perShard)}
	}
	return tt
}

func (tt *TranspositionTable) locate(hash uint64) (*shard, uint64) {
	shardIdx := hash % shardCount
	slot := (hash / shardCount) & tt.slotMask
	return tt.shards[shardIdx], slot
}

// Probe looks up a position by its full hash. The stored key is compared
// in full (not just a tag) before the entry is trusted.
func (tt *TranspositionTable) Probe(hash uint64) (Entry, bool) {
	sh, slot := tt.locate(hash)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.entries[slot]
	if e.Bound == BoundNone || e.Key != hash {
		return Entry{}, false
	}
	return e, true
}

// Store writes an entry, replacing the current occupant of its slot only
// if the new entry is at least as deep, or belongs to a newer search
// generation — the two-tier replacement policy that keeps shallow,
// stale entries from pinning out useful deep ones.
func (tt *TranspositionTable) Store(hash uint64, depth int8, score int32, bound Bound, best board.Move, hasMove bool) {
	sh, slot := tt.locate(hash)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	cur := &sh.entries[slot]
	if cur.Bound != BoundNone && cur.Depth > depth && cur.Age == tt.age {
		return
	}

	*cur = Entry{
		Key:      hash,
		Depth:    depth,
		Score:    score,
		Bound:    bound,
		BestMove: best,
		HasMove:  hasMove,
		Age:      tt.age,
	}
}

// NewSearch bumps the age counter, so entries from the previous search
// lose their "same generation" replacement protection.
func (tt *TranspositionTable) NewSearch() {
	tt.age++
}

// Clear empties every slot in every shard.
func (tt *TranspositionTable) Clear() {
	for _, sh := range tt.shards {
		sh.mu.Lock()
		for i := range sh.entries {
			sh.entries[i] = Entry{}
		}
		sh.mu.Unlock()
	}
}

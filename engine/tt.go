package engine

import (
	"github.com/sixfold-origami/patch/board"
)

// TTFlag classifies what an entry's stored score actually bounds.
type TTFlag uint8

const (
	TTNone TTFlag = iota
	TTExact
	TTLowerBound
	TTUpperBound
)

// TTEntry is one transposition table slot: a cached evaluation keyed by
// zobrist hash, the move it recommends, and how deep the search that
// produced it went.
type TTEntry struct {
	Hash     uint64
	BestMove board.Move
	Score    Score
	Depth    uint8
	Flag     TTFlag
}

// TranspositionTable is a fixed-size, direct-mapped hash table keyed by
// zobrist hash modulo table size (a power of two, so the mask is cheap).
// It maps a board hash to a cached score, node type, best move and depth.
// It has no locking of its own, and the negamax search in this package
// does not probe or store into it; see the design notes on why that
// wiring is future work rather than implemented here.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTranspositionTable allocates a table sized to roughly sizeMB
// megabytes, rounded down to the nearest power-of-two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := 32 // approximate bytes per TTEntry
	count := (sizeMB * 1024 * 1024) / entrySize
	size := uint64(1)
	for size*2 <= uint64(count) {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, size),
		mask:    size - 1,
	}
}

// Probe looks up hash, reporting whether a matching entry was found.
func (t *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	e := t.entries[hash&t.mask]
	if e.Flag == TTNone || e.Hash != hash {
		return TTEntry{}, false
	}
	return e, true
}

// Store writes an entry, always replacing whatever occupied the slot
// (depth-unaware replacement, the simplest policy and sufficient since the
// table is not consulted by search yet).
func (t *TranspositionTable) Store(entry TTEntry) {
	t.entries[entry.Hash&t.mask] = entry
}

// Clear empties every slot.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
}

// Hashfull returns the permille (0-1000) of slots in use, sampling the
// first 1000 entries the way UCI's `info hashfull` expects.
func (t *TranspositionTable) Hashfull() int {
	sample := 1000
	if len(t.entries) < sample {
		sample = len(t.entries)
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].Flag != TTNone {
			used++
		}
	}
	return used * 1000 / sample
}

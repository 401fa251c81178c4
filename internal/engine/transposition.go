package engine

import "unsafe"

// TTFlag indicates how a stored score bounds the true value.
type TTFlag uint8

const (
	TTNone  TTFlag = iota // slot has never been written
	TTExact               // stored score is the true value
	TTLower               // stored score is a lower bound (failed high)
	TTUpper               // stored score is an upper bound (failed low)
)

// TTEntry is one fixed-layout transposition slot.
type TTEntry struct {
	Hash          uint64
	Score         Score
	Depth         uint16
	BestMoveIndex uint8
	Flag          TTFlag
}

// ttBits sets the table to exactly 2^23 entries (≈128 MiB at 16
// bytes/entry), a fixed capacity rather than one scaled by a size
// flag: this engine allocates a fresh table per search (see
// NewTranspositionTable) and never needs to fit a configurable memory
// budget.
const ttBits = 23
const ttSize = 1 << ttBits

// TranspositionTable is a single-slot, direct-mapped cache from
// position hash to a previously searched score bound. There is no
// ageing and no chaining: a new slot simply overwrites an old one when
// it was searched strictly deeper.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTranspositionTable allocates a fresh, empty table. Callers
// allocate one per search: reusing a table across searches would
// require a generation field this design does not have.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{
		entries: make([]TTEntry, ttSize),
		mask:    ttSize - 1,
	}
}

// TableSizeBytes reports the fixed allocation size of a fresh
// transposition table, for front ends that want to announce it.
func TableSizeBytes() int64 {
	return int64(ttSize) * int64(unsafe.Sizeof(TTEntry{}))
}

// Probe returns the slot for hash and whether its Hash field actually
// matches (a cold or collided slot reports ok=false). Callers apply
// their own depth and bound comparisons on the returned entry; Probe
// only answers "is there a usable record here at all".
func (tt *TranspositionTable) Probe(hash uint64) (entry TTEntry, ok bool) {
	slot := &tt.entries[hash&tt.mask]
	if slot.Flag == TTNone || slot.Hash != hash {
		return TTEntry{}, false
	}
	return *slot, true
}

// Store writes (hash, depth, score, bestMoveIndex, flag) into its
// slot, but only if the slot is empty or holds a shallower search:
// depth-preferred replacement, no ageing.
func (tt *TranspositionTable) Store(hash uint64, depth uint16, score Score, bestMoveIndex uint8, flag TTFlag) {
	slot := &tt.entries[hash&tt.mask]
	if slot.Flag != TTNone && slot.Depth >= depth {
		return
	}
	slot.Hash = hash
	slot.Score = score
	slot.Depth = depth
	slot.BestMoveIndex = bestMoveIndex
	slot.Flag = flag
}

// BoundFlag derives the store flag from a completed search: value at
// or below the window's original alpha failed low (Upper
// bound), value at or above beta failed high (Lower bound), otherwise
// it is the exact value.
func BoundFlag(value, originalAlpha, beta Score) TTFlag {
	switch {
	case value <= originalAlpha:
		return TTUpper
	case value >= beta:
		return TTLower
	default:
		return TTExact
	}
}

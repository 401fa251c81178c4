package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable_MissOnEmptySlot(t *testing.T) {
	tt := NewTranspositionTable()
	_, ok := tt.Probe(12345)
	assert.False(t, ok)
}

func TestTranspositionTable_StoreThenProbe(t *testing.T) {
	tt := NewTranspositionTable()
	tt.Store(777, 5, Score(123), 2, TTExact)

	entry, ok := tt.Probe(777)
	assert.True(t, ok)
	assert.Equal(t, uint64(777), entry.Hash)
	assert.Equal(t, Score(123), entry.Score)
	assert.Equal(t, uint16(5), entry.Depth)
	assert.Equal(t, uint8(2), entry.BestMoveIndex)
	assert.Equal(t, TTExact, entry.Flag)
}

func TestTranspositionTable_DepthPreferredReplacement(t *testing.T) {
	tt := NewTranspositionTable()
	tt.Store(1, 10, Score(50), 0, TTExact)

	// Shallower write must not overwrite a deeper entry.
	tt.Store(1, 4, Score(-999), 0, TTExact)
	entry, ok := tt.Probe(1)
	assert.True(t, ok)
	assert.Equal(t, Score(50), entry.Score)

	// Strictly deeper write does overwrite.
	tt.Store(1, 11, Score(77), 0, TTLower)
	entry, ok = tt.Probe(1)
	assert.True(t, ok)
	assert.Equal(t, Score(77), entry.Score)
	assert.Equal(t, uint16(11), entry.Depth)
}

func TestTranspositionTable_HashCollisionIsAMiss(t *testing.T) {
	tt := NewTranspositionTable()
	// Two hashes that collide in the low 23 bits but differ above them.
	const base = uint64(1) << 40
	tt.Store(base|0x42, 3, Score(1), 0, TTExact)

	_, ok := tt.Probe(0x42)
	assert.False(t, ok, "a different hash mapping to the same slot must not be reported as a hit")
}

func TestBoundFlag(t *testing.T) {
	assert.Equal(t, TTUpper, BoundFlag(-10, 0, 100))
	assert.Equal(t, TTLower, BoundFlag(150, 0, 100))
	assert.Equal(t, TTExact, BoundFlag(50, 0, 100))
}

package engine

import (
	"unsafe"

	"github.com/rokumon/rokumon/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota
	TTLowerBound        // failed high (beta cutoff)
	TTUpperBound        // failed low
)

// TTEntry represents an entry in the transposition table.
type TTEntry struct {
	Key      uint32
	BestMove board.Move
	Score    int16
	Depth    int8
	Flag     TTFlag
	Age      uint8
}

// TranspositionTable is an optional, Zobrist-keyed cache of search
// results, grounded on the teacher's table but reduced to the fields a
// single-threaded Rokumon search needs.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
	age     uint8
}

// NewTranspositionTable creates a table with the given size in MB.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	numEntries := roundDownToPowerOf2((uint64(sizeMB) * 1024 * 1024) / entrySize)
	if numEntries == 0 {
		numEntries = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash, returning the stored entry and whether it was found.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	idx := hash & tt.mask
	entry := tt.entries[idx]
	if entry.Key == uint32(hash>>32) && entry.Depth > 0 {
		return entry, true
	}
	return TTEntry{}, false
}

// Store saves a position's search result, replacing the existing entry
// unless it is from the current search and searched deeper.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move) {
	idx := hash & tt.mask
	entry := &tt.entries[idx]
	if entry.Age != tt.age || depth >= int(entry.Depth) {
		entry.Key = uint32(hash >> 32)
		entry.BestMove = bestMove
		entry.Score = int16(score)
		entry.Depth = int8(depth)
		entry.Flag = flag
		entry.Age = tt.age
	}
}

// NewSearch increments the table's generation counter.
func (tt *TranspositionTable) NewSearch() { tt.age++ }

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.age = 0
}

// AdjustScoreFromTT un-normalizes a mate score stored relative to the
// root ply back to the current ply.
func AdjustScoreFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT normalizes a mate score to the root ply before storage.
func AdjustScoreToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}

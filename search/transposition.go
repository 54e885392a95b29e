// Package search implements iterative-deepening negamax with alpha-beta
// pruning, quiescence search, a transposition table, and the usual move
// ordering heuristics (hash move, MVV-LVA, killers, history).
package search

import "github.com/Oliverans/gooseknight/board"

// Bound records which side of the alpha-beta window a stored score is
// exact for.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

type ttEntry struct {
	key   uint64
	depth int8
	score int
	move  board.Move
	bound Bound
	age   uint8
}

// TranspositionTable is a fixed-size, one-slot-per-index hash table keyed
// by Zobrist hash. Unlike the clustered table this was ported from, a slot
// holds exactly one entry; replacement is decided by depth and age alone.
type TranspositionTable struct {
	slots []ttEntry
	age   uint8
}

const defaultTTSizeBytes = 16 * 1024 * 1024

// NewTranspositionTable returns a table sized to hold roughly sizeMB
// megabytes of entries. sizeMB <= 0 falls back to a 16 MiB default.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	bytes := defaultTTSizeBytes
	if sizeMB > 0 {
		bytes = sizeMB * 1024 * 1024
	}
	capacity := bytes / entrySize
	if capacity < 1 {
		capacity = 1
	}
	return &TranspositionTable{slots: make([]ttEntry, capacity)}
}

// entrySize approximates the in-memory footprint of one slot, matching the
// teacher table's sizing approach of dividing a byte budget by struct size.
const entrySize = 32

func (tt *TranspositionTable) index(key uint64) uint64 { return key % uint64(len(tt.slots)) }

// Store records an entry for key, replacing the current occupant iff it is
// empty, was stored at a depth <= the new depth, or belongs to an earlier
// table age.
func (tt *TranspositionTable) Store(key uint64, depth int8, score int, move board.Move, bound Bound, ply int) {
	idx := tt.index(key)
	slot := &tt.slots[idx]

	replace := slot.key == 0 || slot.depth <= depth || slot.age != tt.age
	if !replace {
		return
	}

	slot.key = key
	slot.depth = depth
	slot.score = adjustMateScoreForStorage(score, ply)
	slot.move = move
	slot.bound = bound
	slot.age = tt.age
}

// Probe returns the entry stored for key, if any, with mate scores
// re-adjusted for the querying ply.
func (tt *TranspositionTable) Probe(key uint64, ply int) (ttEntry, bool) {
	idx := tt.index(key)
	slot := tt.slots[idx]
	if slot.key != key || slot.age != tt.age {
		return ttEntry{}, false
	}
	slot.score = adjustMateScoreForProbe(slot.score, ply)
	return slot, true
}

// Clear zeroes every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.slots {
		tt.slots[i] = ttEntry{}
	}
	tt.age = 0
}

// NewSearch bumps the table's age so stale entries from a previous search
// (or a previous game) are treated as replaceable without a full clear.
func (tt *TranspositionTable) NewSearch() { tt.age++ }

// During search, mate scores express "distance to mate from the root of the
// current search", but the table stores "distance to mate from the entry's
// own node"; adjusting on store/probe keeps a mate score correct no matter
// which ply it's retrieved at, mirroring the teacher table's ply-shift
// handling.
func adjustMateScoreForStorage(score, ply int) int {
	if score >= MateScore-maxPly {
		return score + ply
	}
	if score <= -MateScore+maxPly {
		return score - ply
	}
	return score
}

func adjustMateScoreForProbe(score, ply int) int {
	if score >= MateScore-maxPly {
		return score - ply
	}
	if score <= -MateScore+maxPly {
		return score + ply
	}
	return score
}

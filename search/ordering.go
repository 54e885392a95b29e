package search

import (
	"golang.org/x/exp/slices"

	"github.com/Oliverans/gooseknight/board"
)

const maxPly = 64

// killerSlots holds up to two killer moves per ply: quiet moves that
// caused a beta cutoff elsewhere at the same depth and are worth trying
// early in sibling nodes.
type killerSlots struct {
	moves [maxPly][2]board.Move
}

// Add records m as a killer at ply, shifting the previous primary killer
// into the secondary slot unless m is already the primary killer.
func (k *killerSlots) Add(ply int, m board.Move) {
	if ply >= maxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerSlots) at(ply int) (board.Move, board.Move) {
	if ply >= maxPly {
		return 0, 0
	}
	return k.moves[ply][0], k.moves[ply][1]
}

// historyTable scores quiet moves by how often they have caused a beta
// cutoff, indexed by colour so White and Black don't share a [from][to]
// bucket (the engine this was ported from didn't separate by colour,
// which the quiet-move ordering for one side could pollute with the
// other's history — indexing by colour avoids that).
type historyTable struct {
	scores [2][64][64]int
}

func (h *historyTable) Update(c board.Colour, m board.Move, depth int) {
	h.scores[c][m.From()][m.To()] += depth * depth
}

func (h *historyTable) Score(c board.Colour, m board.Move) int {
	return h.scores[c][m.From()][m.To()]
}

func (h *historyTable) Clear() {
	h.scores = [2][64][64]int{}
}

// mvvLvaValue gives each piece kind a weight for "most valuable victim,
// least valuable attacker" capture ordering.
var mvvLvaValue = [7]int{
	board.NoKind: 0,
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   20000,
}

func mvvLvaScore(m board.Move) int {
	return 10*mvvLvaValue[m.Captured()] - mvvLvaValue[m.Piece()]
}

const (
	hashMoveScore    = 1_000_000
	captureBaseScore = 100_000
	killerScore      = 50_000
)

// scoreMove ranks a single move for ordering: hash move first, then
// captures by MVV-LVA, then killer moves, then quiet moves by history.
func scoreMove(m board.Move, hashMove board.Move, killer1, killer2 board.Move, us board.Colour, hist *historyTable) int {
	if m == hashMove && hashMove != 0 {
		return hashMoveScore
	}
	if m.IsCapture() {
		return captureBaseScore + mvvLvaScore(m)
	}
	if m == killer1 || m == killer2 {
		return killerScore
	}
	return hist.Score(us, m)
}

// OrderMoves sorts moves in place, highest-priority first, for use at every
// alpha-beta node and in quiescence: hash move, then captures by MVV-LVA,
// then killers, then quiet moves by history score.
func OrderMoves(moves []board.Move, hashMove board.Move, killers *killerSlots, ply int, us board.Colour, hist *historyTable) {
	k1, k2 := killers.at(ply)
	slices.SortFunc(moves, func(a, b board.Move) bool {
		return scoreMove(a, hashMove, k1, k2, us, hist) > scoreMove(b, hashMove, k1, k2, us, hist)
	})
}
